package tracing

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// A LabelFunc renders the one-line label of a record.
type LabelFunc func(id int, r Record) string

// DefaultLabel renders a record as "#<id>(<args>[, **<kwargs>]) -> <result>".
// The kwargs part appears only when the record carries named arguments.
func DefaultLabel(id int, r Record) string {
	args := make([]string, 0, len(r.Args))
	for _, a := range r.Args {
		args = append(args, fmt.Sprintf("%v", a))
	}

	if len(r.Kwargs) > 0 {
		return fmt.Sprintf("#%d(%s, **%v) -> %v",
			id, strings.Join(args, ", "), r.Kwargs, r.Result)
	}

	return fmt.Sprintf("#%d(%s) -> %v",
		id, strings.Join(args, ", "), r.Result)
}

// A TreePrinter renders a trace with box-drawing characters, one line per
// call, with a blank line between separate top-level calls.
type TreePrinter struct {
	w     io.Writer
	label LabelFunc
}

// NewTreePrinter creates a TreePrinter that writes to w using label. A nil
// writer selects os.Stdout; a nil label selects DefaultLabel.
func NewTreePrinter(w io.Writer, label LabelFunc) *TreePrinter {
	p := &TreePrinter{
		w:     w,
		label: label,
	}

	if p.w == nil {
		p.w = os.Stdout
	}

	if p.label == nil {
		p.label = DefaultLabel
	}

	return p
}

// Print renders the whole trace, one subtree per top-level call.
func (p *TreePrinter) Print(t *Trace) {
	b := BuildTree(t)
	roots := b.Roots()

	for i, root := range roots {
		p.printRoot(t, b, root)

		if i != len(roots)-1 {
			fmt.Fprintln(p.w)
		}
	}
}

// PrintFrom renders only the subtree rooted at start. It fails if start is
// not a key of the trace.
func (p *TreePrinter) PrintFrom(t *Trace, start int) error {
	if _, ok := t.Record(start); !ok {
		return fmt.Errorf("record %d: %w", start, ErrRecordNotFound)
	}

	p.printRoot(t, BuildTree(t), start)

	return nil
}

func (p *TreePrinter) printRoot(t *Trace, b *TreeBuilder, root int) {
	fmt.Fprintln(p.w, p.label(root, t.MustRecord(root)))

	kids := b.Children(root)
	for i, c := range kids {
		p.printSubtree(t, b, c, "", i == len(kids)-1)
	}
}

func (p *TreePrinter) printSubtree(
	t *Trace,
	b *TreeBuilder,
	id int,
	prefix string,
	isLast bool,
) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintln(p.w, prefix+connector+p.label(id, t.MustRecord(id)))

	kids := b.Children(id)
	for i, c := range kids {
		p.printSubtree(t, b, c, childPrefix, i == len(kids)-1)
	}
}

// An IndentPrinter renders a trace with plain fixed-width indentation, one
// line per call, indented by call depth.
type IndentPrinter struct {
	w      io.Writer
	label  LabelFunc
	indent string
}

// NewIndentPrinter creates an IndentPrinter that writes to w using label. A
// nil writer selects os.Stdout; a nil label selects DefaultLabel. Each level
// is indented by two spaces.
func NewIndentPrinter(w io.Writer, label LabelFunc) *IndentPrinter {
	p := &IndentPrinter{
		w:      w,
		label:  label,
		indent: "  ",
	}

	if p.w == nil {
		p.w = os.Stdout
	}

	if p.label == nil {
		p.label = DefaultLabel
	}

	return p
}

// Print renders the whole trace.
func (p *IndentPrinter) Print(t *Trace) {
	Traverse(t, p.printLine)
}

// PrintFrom renders only the subtree rooted at start. It fails if start is
// not a key of the trace.
func (p *IndentPrinter) PrintFrom(t *Trace, start int) error {
	return TraverseFrom(t, start, p.printLine)
}

func (p *IndentPrinter) printLine(id int, r Record, depth int) {
	fmt.Fprintln(p.w, strings.Repeat(p.indent, depth)+p.label(id, r))
}
