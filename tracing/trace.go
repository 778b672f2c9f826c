package tracing

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned when an ID is not a key of the trace.
var ErrRecordNotFound = errors.New("record not found")

// A Trace is the record store for one tracing session. Records are keyed by
// call ID and kept in the order they were written. A Trace only grows;
// records are never updated or removed once written.
//
// The Trace also owns the call-ID counter. Every wrapper recording into the
// same Trace draws from one sequence, so IDs are unique within the Trace
// even when several functions are instrumented independently.
type Trace struct {
	records map[int]Record
	order   []int
	nextID  int
}

// NewTrace creates an empty Trace.
func NewTrace() *Trace {
	return &Trace{
		records: make(map[int]Record),
	}
}

// NextID allocates the next call ID. IDs are handed out in strict call-start
// order and are never reused, even when the call they were allocated for
// fails and leaves no record.
func (t *Trace) NextID() int {
	id := t.nextID
	t.nextID++

	return id
}

// Add writes a record under the given ID. Writing the same ID twice is a
// programming error.
func (t *Trace) Add(id int, r Record) {
	if _, ok := t.records[id]; ok {
		panic(fmt.Sprintf("record %d is already written", id))
	}

	t.records[id] = r
	t.order = append(t.order, id)
}

// Record returns the record stored under id.
func (t *Trace) Record(id int) (Record, bool) {
	r, ok := t.records[id]
	return r, ok
}

// MustRecord returns the record stored under id and panics if it is absent.
func (t *Trace) MustRecord(id int) Record {
	r, ok := t.records[id]
	if !ok {
		panic(fmt.Sprintf("record %d is not in the trace", id))
	}

	return r
}

// IDs returns the IDs of all records in the order they were written. A call
// only writes its record after its whole subtree has unwound, so children
// always appear before their parent, and siblings appear left to right. The
// caller must not modify the returned slice.
func (t *Trace) IDs() []int {
	return t.order
}

// Len returns the number of records in the trace.
func (t *Trace) Len() int {
	return len(t.records)
}
