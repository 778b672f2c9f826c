package tracing

import (
	"github.com/SamiKhan04/rec/datarecording"
)

type recordTableEntry struct {
	ID       int
	ParentID int
	Args     string
	Kwargs   string
	Result   string
}

// DBWriter is a RecordWriter that stores call records into a database
// through a datarecording backend. Args, kwargs, and result columns hold
// JSON-encoded values.
type DBWriter struct {
	backend   datarecording.DataRecorder
	tableName string
}

// NewDBWriter creates a DBWriter that writes into the given table of the
// backend. The table is created immediately.
func NewDBWriter(
	backend datarecording.DataRecorder,
	tableName string,
) *DBWriter {
	w := &DBWriter{
		backend:   backend,
		tableName: tableName,
	}

	w.backend.CreateTable(tableName, recordTableEntry{})

	return w
}

// Write inserts one record into the backend.
func (w *DBWriter) Write(id int, r Record) {
	w.backend.InsertData(w.tableName, recordTableEntry{
		ID:       id,
		ParentID: r.Parent,
		Args:     mustJSON(r.Args),
		Kwargs:   mustJSON(r.Kwargs),
		Result:   mustJSON(r.Result),
	})
}

// Flush flushes the backend.
func (w *DBWriter) Flush() {
	w.backend.Flush()
}
