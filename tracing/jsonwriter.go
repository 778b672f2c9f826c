package tracing

import (
	"encoding/json"
	"io"
)

type jsonRecord struct {
	ID     int            `json:"id"`
	Parent int            `json:"parent"`
	Args   []any          `json:"args"`
	Kwargs map[string]any `json:"kwargs,omitempty"`
	Result any            `json:"result"`
}

// JSONWriter is a RecordWriter that writes call records as a JSON array.
type JSONWriter struct {
	w           io.Writer
	firstRecord bool
}

// NewJSONWriter creates a new JSONWriter, injecting a writer as dependency.
// The opening bracket of the array is written immediately; Close writes the
// closing one.
func NewJSONWriter(w io.Writer) *JSONWriter {
	t := &JSONWriter{
		w:           w,
		firstRecord: true,
	}

	_, err := w.Write([]byte("[\n"))
	if err != nil {
		panic(err)
	}

	return t
}

// Write writes one record to the underlying writer.
func (t *JSONWriter) Write(id int, r Record) {
	if t.firstRecord {
		t.firstRecord = false
	} else {
		_, err := t.w.Write([]byte(",\n"))
		if err != nil {
			panic(err)
		}
	}

	b, err := json.Marshal(jsonRecord{
		ID:     id,
		Parent: r.Parent,
		Args:   r.Args,
		Kwargs: r.Kwargs,
		Result: r.Result,
	})
	if err != nil {
		panic(err)
	}

	_, err = t.w.Write(b)
	if err != nil {
		panic(err)
	}
}

// Flush does nothing; records are written as they arrive.
func (t *JSONWriter) Flush() {
	// Do nothing
}

// Close terminates the JSON array.
func (t *JSONWriter) Close() {
	_, err := t.w.Write([]byte("\n]\n"))
	if err != nil {
		panic(err)
	}
}
