package tracing

// NoParent marks a record without a parent call, i.e., a top-level traced
// invocation.
const NoParent = -1

// A Record captures one completed invocation of an instrumented function.
type Record struct {
	// Parent is the ID of the innermost call of the same wrapper that was
	// still open when this call began, or NoParent.
	Parent int `json:"parent"`

	// Args holds the positional arguments of the invocation, in order.
	Args []any `json:"args"`

	// Kwargs holds the named arguments of the invocation.
	Kwargs map[string]any `json:"kwargs,omitempty"`

	// Result is the value the invocation returned.
	Result any `json:"result"`
}

// IsRoot returns true if the record captures a top-level invocation.
func (r Record) IsRoot() bool {
	return r.Parent == NoParent
}

// RecordFilter is a function that can filter interesting records. If this
// function returns true, the record is considered useful.
type RecordFilter func(id int, r Record) bool
