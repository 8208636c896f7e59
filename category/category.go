package category

import (
	"errors"
	"slices"
)

// ErrEmptyName is the value carried by the panic raised when a category
// name is empty. Names identify nodes and must be non-empty everywhere
// one is required: New, AddChild, Child, and the builder's Get.
var ErrEmptyName = errors.New("category: name must not be empty")

// Category is a named, mutable tree node holding an ordered set of
// elements and an ordered list of uniquely-named children.
//
// Elements are de-duplicated at the add/remove boundary (value equality
// via the comparable constraint) but keep list-like insertion order.
// Children keep insertion order and are unique by name.
//
// Category instances are not safe for concurrent mutation; see the
// package documentation for the exact guarantees around listener
// registration during notification.
type Category[T comparable] struct {
	name     string
	elements []T
	children []*Category[T]

	// listeners is copy-on-write: notify iterates whatever slice header
	// it loaded, and AddListener/RemoveListener always install a fresh
	// slice, so registry mutation during notification is safe.
	listeners []Listener[T]

	// forward is registered on every current child, and only on current
	// children.
	forward *forwarder[T]
}

// New creates a category with the given name and no elements, children,
// or listeners. It panics with ErrEmptyName when name is empty.
func New[T comparable](name string) *Category[T] {
	mustName(name)
	c := &Category[T]{name: name}
	c.forward = &forwarder[T]{owner: c}
	return c
}

// Name returns the name of this category. It is fixed at construction.
func (c *Category[T]) Name() string {
	return c.name
}

// Children returns a snapshot of this category's children, in insertion
// order. Mutating the returned slice does not affect the tree.
func (c *Category[T]) Children() []*Category[T] {
	return slices.Clone(c.children)
}

// Child returns the child with the given name, or nil if there is no
// such child. It panics with ErrEmptyName when name is empty.
func (c *Category[T]) Child(name string) *Category[T] {
	mustName(name)
	return c.childByName(name)
}

// AddChild returns the child with the given name, creating and attaching
// a new empty child if none exists. Attaching registers this category's
// forwarding listener on the child and fires a ChildAdded event; when the
// child already exists the call is a no-op and fires nothing. It panics
// with ErrEmptyName when name is empty.
func (c *Category[T]) AddChild(name string) *Category[T] {
	mustName(name)
	if present := c.childByName(name); present != nil {
		return present
	}
	child := New[T](name)
	c.attach(child)
	c.fire(newChildEvent(ChildAdded, c, child))
	return child
}

// RemoveChild detaches and returns the child with the given name, firing
// a ChildRemoved event. It returns nil, firing nothing, when there is no
// such child. The removed child remains usable standalone, but changes
// made to it after removal no longer propagate to this category's
// listeners.
func (c *Category[T]) RemoveChild(name string) *Category[T] {
	removed := c.childByName(name)
	if removed == nil {
		return nil
	}
	i := slices.Index(c.children, removed)
	c.children = slices.Delete(c.children, i, i+1)
	removed.RemoveListener(c.forward)
	c.fire(newChildEvent(ChildRemoved, c, removed))
	return removed
}

// RemoveAllChildren detaches every child, in order, firing one
// ChildRemoved event per child. Elements are not touched.
func (c *Category[T]) RemoveAllChildren() {
	for _, child := range c.Children() {
		c.RemoveChild(child.Name())
	}
}

// Elements returns a snapshot of this category's elements, in insertion
// order. Mutating the returned slice does not affect the tree.
func (c *Category[T]) Elements() []T {
	return slices.Clone(c.elements)
}

// ContainsElement reports whether the given element is present in this
// category (not its descendants).
func (c *Category[T]) ContainsElement(element T) bool {
	return slices.Contains(c.elements, element)
}

// AddElements appends each given item that is not already present,
// preserving input order, and reports whether at least one item was newly
// added. When anything changed, exactly one ElementsAdded event fires,
// carrying the de-duplicated input batch (including items that were
// already present). A nil or empty items slice is a no-op returning
// false.
func (c *Category[T]) AddElements(items []T) bool {
	changed := false
	for _, item := range items {
		if slices.Contains(c.elements, item) {
			continue
		}
		c.elements = append(c.elements, item)
		changed = true
	}
	if changed {
		c.fire(newElementsEvent(ElementsAdded, c, items))
	}
	return changed
}

// RemoveElements removes each given item that is present and reports
// whether at least one was. When anything changed, exactly one
// ElementsRemoved event fires, carrying the de-duplicated input batch. A
// nil or empty items slice is a no-op returning false.
func (c *Category[T]) RemoveElements(items []T) bool {
	changed := false
	for _, item := range items {
		i := slices.Index(c.elements, item)
		if i < 0 {
			continue
		}
		c.elements = slices.Delete(c.elements, i, i+1)
		changed = true
	}
	if changed {
		c.fire(newElementsEvent(ElementsRemoved, c, items))
	}
	return changed
}

// RemoveAllElements removes every element, firing at most one
// ElementsRemoved event. Children are not touched.
func (c *Category[T]) RemoveAllElements() {
	c.RemoveElements(c.Elements())
}

// AddListener registers a listener on this category. The listener
// receives every event whose source is this category or any of its
// current descendants. The registry is a set with stable registration
// order: adding an already-registered listener (interface equality) is a
// no-op.
func (c *Category[T]) AddListener(l Listener[T]) {
	if slices.Contains(c.listeners, l) {
		return
	}
	next := make([]Listener[T], len(c.listeners), len(c.listeners)+1)
	copy(next, c.listeners)
	c.listeners = append(next, l)
}

// RemoveListener unregisters the first registered listener equal to l
// (interface equality, so listeners are typically registered and removed
// as pointers). Removing an unregistered listener is a no-op.
func (c *Category[T]) RemoveListener(l Listener[T]) {
	for i, registered := range c.listeners {
		if registered == l {
			c.listeners = slices.Delete(slices.Clone(c.listeners), i, i+1)
			return
		}
	}
}

// Equal reports whether this category and other have equal names, equal
// elements (order-sensitive), and recursively equal children
// (order-sensitive). Attached listeners do not participate in equality.
func (c *Category[T]) Equal(other *Category[T]) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	if c.name != other.name {
		return false
	}
	if !slices.Equal(c.elements, other.elements) {
		return false
	}
	if len(c.children) != len(other.children) {
		return false
	}
	for i := range c.children {
		if !c.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns the category name.
func (c *Category[T]) String() string {
	return c.name
}

// attach appends child and installs the forwarding registration that
// makes the child's events visible to this category's listeners.
func (c *Category[T]) attach(child *Category[T]) {
	c.children = append(c.children, child)
	child.AddListener(c.forward)
}

// childByName is Child without name validation, for internal callers
// that tolerate any string.
func (c *Category[T]) childByName(name string) *Category[T] {
	for _, child := range c.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// fire delivers an event to this category's listeners, if any.
func (c *Category[T]) fire(e Event[T]) {
	if len(c.listeners) == 0 {
		return
	}
	c.notify(e)
}

// notify delivers an event to a snapshot of the listener registry. The
// snapshot is the slice header itself: the registry is copy-on-write, so
// callbacks may add or remove listeners mid-notification without
// disturbing this iteration.
func (c *Category[T]) notify(e Event[T]) {
	for _, l := range c.listeners {
		deliver(l, e)
	}
}

// mustName panics with ErrEmptyName when name is empty.
func mustName(name string) {
	if name == "" {
		panic(ErrEmptyName)
	}
}
