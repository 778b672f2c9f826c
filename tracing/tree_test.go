package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type visit struct {
	id    int
	depth int
}

// buildSampleTrace writes the records of a call shaped like
//
//	0
//	├── 1
//	│   ├── 2
//	│   └── 3
//	└── 4
//
// in the order the calls would have returned.
func buildSampleTrace() *Trace {
	t := NewTrace()
	t.Add(2, Record{Parent: 1, Args: []any{2}, Result: 2})
	t.Add(3, Record{Parent: 1, Args: []any{3}, Result: 3})
	t.Add(1, Record{Parent: 0, Args: []any{1}, Result: 1})
	t.Add(4, Record{Parent: 0, Args: []any{4}, Result: 4})
	t.Add(0, Record{Parent: NoParent, Args: []any{0}, Result: 0})
	return t
}

var _ = Describe("TreeBuilder", func() {
	It("should list children in the order the calls started", func() {
		b := BuildTree(buildSampleTrace())

		Expect(b.Roots()).To(Equal([]int{0}))
		Expect(b.Children(0)).To(Equal([]int{1, 4}))
		Expect(b.Children(1)).To(Equal([]int{2, 3}))
		Expect(b.Children(2)).To(BeEmpty())
	})

	It("should mark exactly the parentless records as roots", func() {
		trace := buildSampleTrace()
		b := BuildTree(trace)

		roots := b.Roots()
		for _, id := range trace.IDs() {
			if trace.MustRecord(id).IsRoot() {
				Expect(roots).To(ContainElement(id))
			} else {
				Expect(roots).ToNot(ContainElement(id))
			}
		}
	})

	It("should be pure and idempotent", func() {
		trace := buildSampleTrace()
		idsBefore := append([]int{}, trace.IDs()...)

		b1 := BuildTree(trace)
		b2 := BuildTree(trace)

		Expect(b1.children).To(Equal(b2.children))
		Expect(b1.roots).To(Equal(b2.roots))
		Expect(trace.IDs()).To(Equal(idsBefore))
		Expect(trace.Len()).To(Equal(5))
	})

	It("should report records with a missing parent as orphans", func() {
		trace := buildSampleTrace()
		trace.Add(9, Record{Parent: 7, Args: []any{9}, Result: 9})

		b := BuildTree(trace)
		Expect(b.Orphans()).To(Equal([]int{9}))
		Expect(b.Roots()).To(Equal([]int{0}))
	})
})

var _ = Describe("Traverse", func() {
	It("should visit every node pre-order, depth-first", func() {
		var visits []visit
		Traverse(buildSampleTrace(), func(id int, _ Record, depth int) {
			visits = append(visits, visit{id, depth})
		})

		Expect(visits).To(Equal([]visit{
			{0, 0},
			{1, 1},
			{2, 2},
			{3, 2},
			{4, 1},
		}))
	})

	It("should visit all roots in call-start order", func() {
		trace := NewTrace()
		trace.Add(0, Record{Parent: NoParent, Result: "a"})
		trace.Add(1, Record{Parent: NoParent, Result: "b"})
		trace.Add(2, Record{Parent: 1, Result: "c"})

		var visits []visit
		Traverse(trace, func(id int, _ Record, depth int) {
			visits = append(visits, visit{id, depth})
		})

		Expect(visits).To(Equal([]visit{
			{0, 0},
			{1, 0},
			{2, 1},
		}))
	})

	It("should skip orphaned records", func() {
		trace := buildSampleTrace()
		trace.Add(9, Record{Parent: 7, Args: []any{9}, Result: 9})

		visited := 0
		Traverse(trace, func(int, Record, int) { visited++ })

		Expect(visited).To(Equal(5))
	})
})

var _ = Describe("TraverseFrom", func() {
	It("should visit only the subtree of the start record", func() {
		var visits []visit
		err := TraverseFrom(buildSampleTrace(), 1, func(id int, _ Record, depth int) {
			visits = append(visits, visit{id, depth})
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(visits).To(Equal([]visit{
			{1, 0},
			{2, 1},
			{3, 1},
		}))
	})

	It("should visit a single node when started from a leaf", func() {
		var visits []visit
		err := TraverseFrom(buildSampleTrace(), 4, func(id int, _ Record, depth int) {
			visits = append(visits, visit{id, depth})
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(visits).To(Equal([]visit{{4, 0}}))
	})

	It("should fail when the start record is absent", func() {
		err := TraverseFrom(buildSampleTrace(), 42, func(int, Record, int) {})

		Expect(err).To(MatchError(ErrRecordNotFound))
	})
})
