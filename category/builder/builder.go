// Package builder provides a fluent, path-style facade for assembling
// category trees. Intermediate categories are created on demand, so a
// whole branch can be populated in one chained expression.
package builder

import (
	"github.com/categorykit/categorykit/category"
	"github.com/categorykit/categorykit/category/merge"
	"github.com/categorykit/categorykit/category/walker"
)

// Builder assembles a category tree rooted at a named category.
//
// Every Builder wraps a live category: child builders returned by Get
// share the tree with their parent, and all mutations delegate to the
// category's normal mutators, firing the usual events.
//
// Example usage:
//
//	root := builder.New[string]("Root").
//	    AddAll([]string{"a", "b"}).
//	    Get("Child").Add("c").
//	    Build()
//
// Note that Get returns the child's builder; Build on any builder in the
// chain returns that builder's own category.
type Builder[T comparable] struct {
	category *category.Category[T]
}

// New creates a builder rooted at a new empty category with the given
// name. It panics with category.ErrEmptyName when name is empty.
func New[T comparable](name string) *Builder[T] {
	return &Builder[T]{category: category.New[T](name)}
}

// wrap creates a builder around an existing category.
func wrap[T comparable](c *category.Category[T]) *Builder[T] {
	return &Builder[T]{category: c}
}

// Add adds one element to this builder's category and returns the
// builder.
func (b *Builder[T]) Add(element T) *Builder[T] {
	b.category.AddElements([]T{element})
	return b
}

// AddAll adds the given elements to this builder's category and returns
// the builder. A nil slice is a no-op.
func (b *Builder[T]) AddAll(elements []T) *Builder[T] {
	b.category.AddElements(elements)
	return b
}

// Get returns a builder for the child with the given name, creating the
// child when it does not yet exist. It panics with category.ErrEmptyName
// when name is empty.
func (b *Builder[T]) Get(name string) *Builder[T] {
	return wrap(b.category.AddChild(name))
}

// AddIfUncategorized adds each candidate to the child with the given name
// unless the candidate is already present anywhere in the tree built so
// far. The child is created only when at least one candidate remains. It
// panics with category.ErrEmptyName when name is empty.
func (b *Builder[T]) AddIfUncategorized(name string, candidates []T) *Builder[T] {
	if name == "" {
		panic(category.ErrEmptyName)
	}

	present := make(map[T]struct{})
	for _, e := range walker.AllElements(b.category) {
		present[e] = struct{}{}
	}
	for _, candidate := range candidates {
		if _, ok := present[candidate]; ok {
			continue
		}
		present[candidate] = struct{}{}
		b.Get(name).Add(candidate)
	}
	return b
}

// MergeRecursively copies the given tree's name-aligned structure and
// elements into this builder's tree, creating children as needed, and
// returns the builder. The other tree is not modified.
func (b *Builder[T]) MergeRecursively(other *category.Category[T]) *Builder[T] {
	merge.Merge(b.category, other)
	return b
}

// Build returns the built category.
func (b *Builder[T]) Build() *category.Category[T] {
	return b.category
}
