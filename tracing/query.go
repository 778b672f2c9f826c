package tracing

// RecordQuery is used to define the records to be queried. Selectors that
// are not enabled are ignored.
type RecordQuery struct {
	// Use ID to select a single record by its ID.
	EnableID bool
	ID       int

	// Use ParentID to select all the records that are children of a record.
	EnableParentID bool
	ParentID       int

	// RootsOnly selects only the records of top-level calls.
	RootsOnly bool

	// Filter, when set, keeps only the records it accepts.
	Filter RecordFilter
}

// A TraceReader can query the records of a recorded trace.
type TraceReader interface {
	// ListIDs returns the IDs of the records matching the query, in the
	// order the records were written.
	ListIDs(query RecordQuery) []int

	// Record returns the record stored under an ID.
	Record(id int) (Record, bool)
}

// ListIDs returns the IDs of the records matching the query, in the order
// the records were written.
func (t *Trace) ListIDs(query RecordQuery) []int {
	ids := make([]int, 0)

	for _, id := range t.order {
		r := t.records[id]

		if query.EnableID && id != query.ID {
			continue
		}

		if query.EnableParentID && r.Parent != query.ParentID {
			continue
		}

		if query.RootsOnly && r.Parent != NoParent {
			continue
		}

		if query.Filter != nil && !query.Filter(id, r) {
			continue
		}

		ids = append(ids, id)
	}

	return ids
}
