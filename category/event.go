package category

import "fmt"

// Kind identifies which change an Event describes.
type Kind int

const (
	// ElementsAdded reports that elements were added to a category.
	ElementsAdded Kind = iota

	// ElementsRemoved reports that elements were removed from a category.
	ElementsRemoved

	// ChildAdded reports that a child category was attached.
	ChildAdded

	// ChildRemoved reports that a child category was detached.
	ChildRemoved
)

// String returns the name of the event kind.
func (k Kind) String() string {
	switch k {
	case ElementsAdded:
		return "ElementsAdded"
	case ElementsRemoved:
		return "ElementsRemoved"
	case ChildAdded:
		return "ChildAdded"
	case ChildRemoved:
		return "ChildRemoved"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event describes one change in a Category.
//
// Source is always the category where the mutation physically occurred,
// which is not necessarily the category a listener was registered on.
//
// Exactly one payload field is populated, determined by Kind: element
// events carry Elements (the de-duplicated input batch of the triggering
// call, in input order — including inputs that were already present or
// already absent), and child events carry Child. Events are values; the
// Elements slice must not be modified by receivers.
type Event[T comparable] struct {
	// Kind identifies the change.
	Kind Kind

	// Source is the category in which the change occurred.
	Source *Category[T]

	// Elements holds the elements that have been added or removed.
	// Empty for child events.
	Elements []T

	// Child is the child category that was attached or detached.
	// Nil for element events.
	Child *Category[T]
}

// String returns a short diagnostic description of the event.
func (e Event[T]) String() string {
	if e.Child != nil {
		return fmt.Sprintf("Event[%s source=%s child=%s]",
			e.Kind, e.Source.Name(), e.Child.Name())
	}
	return fmt.Sprintf("Event[%s source=%s elements=%v]",
		e.Kind, e.Source.Name(), e.Elements)
}

// newElementsEvent builds an element event carrying the de-duplicated
// input batch in first-occurrence order.
func newElementsEvent[T comparable](kind Kind, source *Category[T], items []T) Event[T] {
	return Event[T]{
		Kind:     kind,
		Source:   source,
		Elements: dedup(items),
	}
}

// newChildEvent builds a child attach/detach event.
func newChildEvent[T comparable](kind Kind, source, child *Category[T]) Event[T] {
	return Event[T]{
		Kind:   kind,
		Source: source,
		Child:  child,
	}
}

// dedup copies items, dropping repeated values while preserving the order
// of first occurrence.
func dedup[T comparable](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
