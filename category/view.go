package category

// View is a read-only wrapper over a Category. It exposes accessors and
// listener registration but no mutators, for handing a tree to consumers
// that must be prevented from changing it. A View observes the live tree:
// changes made through the underlying Category are visible through the
// View.
//
// The zero View is invalid; obtain one with Category.AsView.
type View[T comparable] struct {
	c *Category[T]
}

// AsView returns a read-only view of this category.
func (c *Category[T]) AsView() View[T] {
	return View[T]{c: c}
}

// Name returns the name of the viewed category.
func (v View[T]) Name() string {
	return v.c.Name()
}

// Elements returns a snapshot of the viewed category's elements.
func (v View[T]) Elements() []T {
	return v.c.Elements()
}

// Children returns read-only views of the viewed category's children, in
// insertion order.
func (v View[T]) Children() []View[T] {
	children := v.c.Children()
	views := make([]View[T], len(children))
	for i, child := range children {
		views[i] = child.AsView()
	}
	return views
}

// Child returns a view of the child with the given name. The second
// return value reports whether such a child exists. It panics with
// ErrEmptyName when name is empty.
func (v View[T]) Child(name string) (View[T], bool) {
	child := v.c.Child(name)
	if child == nil {
		return View[T]{}, false
	}
	return child.AsView(), true
}

// AddListener registers a listener on the viewed category.
func (v View[T]) AddListener(l Listener[T]) {
	v.c.AddListener(l)
}

// RemoveListener unregisters a listener from the viewed category.
func (v View[T]) RemoveListener(l Listener[T]) {
	v.c.RemoveListener(l)
}
