package tracing

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

type csvRow struct {
	id     int
	record Record
}

// CSVWriter is a RecordWriter that stores call records into a CSV file.
// Args, kwargs, and result columns hold JSON-encoded values.
type CSVWriter struct {
	path string
	file *os.File

	rows       []csvRow
	bufferSize int
}

// NewCSVWriter creates a new CSVWriter. If path is empty, a unique file name
// is generated at Init time.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the CSV file. If the file already exists, it panics.
func (w *CSVWriter) Init() {
	if w.path == "" {
		w.path = "rec_trace_" + xid.New().String()
	}

	filename := w.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "ID, ParentID, Args, Kwargs, Result\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Write buffers one record for the CSV file.
func (w *CSVWriter) Write(id int, r Record) {
	w.rows = append(w.rows, csvRow{id: id, record: r})
	if len(w.rows) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes the buffered records to the CSV file.
func (w *CSVWriter) Flush() {
	for _, row := range w.rows {
		fmt.Fprintf(w.file, "%d, %d, %q, %q, %q\n",
			row.id,
			row.record.Parent,
			mustJSON(row.record.Args),
			mustJSON(row.record.Kwargs),
			mustJSON(row.record.Result),
		)
	}

	w.rows = nil
}
