package tracing

import "fmt"

// A Visitor is called once per visited record, before any of the record's
// descendants. Depth is 0 for the node the walk started from.
type Visitor func(id int, r Record, depth int)

// A TreeBuilder holds the call hierarchy reconstructed from the flat record
// store: the parent-to-children adjacency and the ordered list of roots.
type TreeBuilder struct {
	children map[int][]int
	roots    []int
	orphans  []int
}

// BuildTree reconstructs the call tree from a trace in a single pass over
// the records in write order. Root and children lists preserve that order.
// The trace is not modified.
func BuildTree(t *Trace) *TreeBuilder {
	b := &TreeBuilder{
		children: make(map[int][]int),
	}

	for _, id := range t.IDs() {
		r := t.MustRecord(id)

		if r.Parent == NoParent {
			b.roots = append(b.roots, id)
		} else if _, ok := t.Record(r.Parent); !ok {
			b.orphans = append(b.orphans, id)
		}

		b.children[r.Parent] = append(b.children[r.Parent], id)
	}

	return b
}

// Roots returns the IDs of all top-level calls.
func (b *TreeBuilder) Roots() []int {
	return b.roots
}

// Children returns the IDs of the direct children of id.
func (b *TreeBuilder) Children(id int) []int {
	return b.children[id]
}

// Orphans returns the IDs of records whose parent is neither NoParent nor a
// key of the trace. Orphaned records are unreachable from any root and are
// skipped by every traversal; a trace built by the instrumentation wrapper
// and read only after all calls have returned has none.
func (b *TreeBuilder) Orphans() []int {
	return b.orphans
}

// Traverse walks the whole call tree in pre-order, visiting every root and
// its descendants with roots at depth 0. A nil visitor walks without
// visiting.
func Traverse(t *Trace, visit Visitor) {
	if visit == nil {
		visit = func(int, Record, int) {}
	}

	b := BuildTree(t)
	for _, root := range b.roots {
		walk(t, b, root, 0, visit)
	}
}

// TraverseFrom walks only the subtree rooted at start, with start itself at
// depth 0. It fails if start is not a key of the trace.
func TraverseFrom(t *Trace, start int, visit Visitor) error {
	if _, ok := t.Record(start); !ok {
		return fmt.Errorf("record %d: %w", start, ErrRecordNotFound)
	}

	if visit == nil {
		visit = func(int, Record, int) {}
	}

	walk(t, BuildTree(t), start, 0, visit)

	return nil
}

func walk(t *Trace, b *TreeBuilder, id, depth int, visit Visitor) {
	visit(id, t.MustRecord(id), depth)

	for _, c := range b.children[id] {
		walk(t, b, c, depth+1, visit)
	}
}
