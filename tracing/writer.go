package tracing

import "encoding/json"

// A RecordWriter can store finished call records outside the trace.
// RecordWriters can connect to different backends so that the records end up
// in different formats (e.g., CSV files, JSON, SQL databases).
type RecordWriter interface {
	// Write stores one record.
	Write(id int, r Record)

	// Flush forces all the buffered records out.
	Flush()
}

// ExportTrace streams every record of t into w in write order, then flushes
// w. The trace must be complete: exporting while instrumented calls are
// still open misses the records of the open calls.
func ExportTrace(t *Trace, w RecordWriter) {
	for _, id := range t.IDs() {
		w.Write(id, t.MustRecord(id))
	}

	w.Flush()
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return string(b)
}
