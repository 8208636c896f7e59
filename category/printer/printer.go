// Package printer renders category trees as indented, tree-drawing-style
// text for diagnostics. The exact output format is not a compatibility
// contract.
package printer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/categorykit/categorykit/category"
)

// Options controls rendering behavior.
type Options struct {
	// ShowElements includes each category's elements in the output.
	// Default: true
	ShowElements bool

	// SortChildren renders sibling subtrees in collated name order
	// instead of insertion order. The tree itself is not modified.
	// Default: false
	SortChildren bool

	// MaxDepth limits how many levels below the root are rendered
	// (0 = unlimited). With MaxDepth 1, the root and its direct
	// children appear.
	// Default: 0 (unlimited)
	MaxDepth int
}

// DefaultOptions returns sensible defaults for rendering.
func DefaultOptions() Options {
	return Options{
		ShowElements: true,
		SortChildren: false,
		MaxDepth:     0,
	}
}

// Printer renders category trees to a writer.
type Printer[T comparable] struct {
	opts   Options
	writer io.Writer
	coll   *collate.Collator
}

// New creates a Printer writing to w with the given options.
func New[T comparable](w io.Writer, opts Options) *Printer[T] {
	p := &Printer[T]{
		opts:   opts,
		writer: w,
	}
	if opts.SortChildren {
		p.coll = collate.New(language.Und)
	}
	return p
}

// Print renders the tree rooted at c. Output looks like:
//
//	Root
//	|-element0
//	|-element1
//	+-ChildA
//	| |-element2
//	+-ChildB
//
// where each category line below the root is prefixed with "+-", elements
// with "|-", and non-final branches stay connected with "| " rails.
func (p *Printer[T]) Print(c *category.Category[T]) error {
	return p.print(c, "", 0)
}

func (p *Printer[T]) print(c *category.Category[T], indent string, depth int) error {
	head := indent
	if len(indent) >= 2 {
		head = indent[:len(indent)-2] + "+-"
	}
	if err := writeLine(p.writer, head, c.Name()); err != nil {
		return err
	}
	if p.opts.ShowElements {
		for _, element := range c.Elements() {
			if err := writeLine(p.writer, indent+"|-", element); err != nil {
				return err
			}
		}
	}
	if p.opts.MaxDepth > 0 && depth+1 > p.opts.MaxDepth {
		return nil
	}
	children := c.Children()
	if p.coll != nil {
		slices.SortStableFunc(children, func(a, b *category.Category[T]) int {
			return p.coll.CompareString(a.Name(), b.Name())
		})
	}
	for i, child := range children {
		childIndent := indent + "| "
		if i == len(children)-1 {
			childIndent = indent + "  "
		}
		if err := p.print(child, childIndent, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// writeLine writes one output line: prefix, the value's default format,
// and a newline.
func writeLine(w io.Writer, prefix string, v any) error {
	_, err := fmt.Fprintf(w, "%s%v\n", prefix, v)
	return err
}

// Fprint renders the tree rooted at c to w with the given options.
func Fprint[T comparable](w io.Writer, c *category.Category[T], opts Options) error {
	return New[T](w, opts).Print(c)
}

// String renders the tree rooted at c with default options.
func String[T comparable](c *category.Category[T]) string {
	var sb strings.Builder
	// strings.Builder writes never fail.
	_ = Fprint(&sb, c, DefaultOptions())
	return sb.String()
}
