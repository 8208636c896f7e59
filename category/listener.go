package category

// Listener is implemented by code that wants to be informed about changes
// in a Category.
//
// A listener added to a category receives events for changes in that
// category and in any of its current descendants. The Event passed to the
// callback identifies the category where the change took place via
// Event.Source; this is not necessarily the category the listener was
// added to.
//
// Callbacks are invoked synchronously on the mutating goroutine and are
// assumed not to panic. A callback that panics aborts the remaining
// notifications for that event; no recovery policy is applied.
type Listener[T comparable] interface {
	// ElementsAdded is called when elements have been added to a category.
	ElementsAdded(event Event[T])

	// ElementsRemoved is called when elements have been removed from a
	// category.
	ElementsRemoved(event Event[T])

	// ChildAdded is called when a child was attached to a category.
	ChildAdded(event Event[T])

	// ChildRemoved is called when a child was detached from a category.
	ChildRemoved(event Event[T])
}

// deliver routes an event to the listener callback matching its kind.
func deliver[T comparable](l Listener[T], e Event[T]) {
	switch e.Kind {
	case ElementsAdded:
		l.ElementsAdded(e)
	case ElementsRemoved:
		l.ElementsRemoved(e)
	case ChildAdded:
		l.ChildAdded(e)
	case ChildRemoved:
		l.ChildRemoved(e)
	}
}

// forwarder is the internal listener a category registers on each of its
// children. It re-delivers every incoming event, unmodified, to the owning
// category's listeners, so events bubble from any depth to all ancestors.
type forwarder[T comparable] struct {
	owner *Category[T]
}

func (f *forwarder[T]) ElementsAdded(e Event[T])   { f.owner.notify(e) }
func (f *forwarder[T]) ElementsRemoved(e Event[T]) { f.owner.notify(e) }
func (f *forwarder[T]) ChildAdded(e Event[T])      { f.owner.notify(e) }
func (f *forwarder[T]) ChildRemoved(e Event[T])    { f.owner.notify(e) }
