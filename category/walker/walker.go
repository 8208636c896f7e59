// Package walker provides generic traversal over category trees: visiting,
// element collection, bottom-up pruning, and subtree statistics. All
// functions operate on any Category through its public contract.
package walker

import (
	"github.com/categorykit/categorykit/category"
)

// VisitFunc is called by Walk for each category, depth-first pre-order.
// depth is 0 for the root Walk was called on. Returning false skips the
// category's subtree (its children are not visited); the walk itself
// continues with the next sibling.
type VisitFunc[T comparable] func(depth int, c *category.Category[T]) bool

// Walk traverses the tree rooted at c depth-first, parents before
// children, siblings in insertion order. Children are snapshotted before
// descending, so visit may mutate the category it is given.
func Walk[T comparable](c *category.Category[T], visit VisitFunc[T]) {
	walk(c, 0, visit)
}

func walk[T comparable](c *category.Category[T], depth int, visit VisitFunc[T]) {
	if !visit(depth, c) {
		return
	}
	for _, child := range c.Children() {
		walk(child, depth+1, visit)
	}
}

// AllElements returns the union of the elements of c and all of its
// descendants, de-duplicated, in first-encounter order (a category's own
// elements before its children's).
func AllElements[T comparable](c *category.Category[T]) []T {
	seen := make(map[T]struct{})
	var all []T
	Walk(c, func(_ int, c *category.Category[T]) bool {
		for _, e := range c.Elements() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			all = append(all, e)
		}
		return true
	})
	return all
}

// RemoveEmpty prunes, bottom-up, every descendant of c that has no
// children and no elements. Children are processed before their parent,
// so a category whose only content was empty subtrees is itself removed.
// The root c is never removed, even when empty. Each removal fires the
// usual ChildRemoved event.
func RemoveEmpty[T comparable](c *category.Category[T]) {
	children := c.Children()
	for _, child := range children {
		RemoveEmpty(child)
	}
	for _, child := range children {
		if len(child.Children()) == 0 && len(child.Elements()) == 0 {
			c.RemoveChild(child.Name())
		}
	}
}
