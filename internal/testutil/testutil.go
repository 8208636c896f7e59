// Package testutil provides shared fixtures for category tree tests.
package testutil

import (
	"github.com/categorykit/categorykit/category"
)

// RecordingListener collects every event it receives, bucketed by kind,
// for later assertions. The zero value is ready to use.
type RecordingListener[T comparable] struct {
	ElementsAddedEvents   []category.Event[T]
	ElementsRemovedEvents []category.Event[T]
	ChildAddedEvents      []category.Event[T]
	ChildRemovedEvents    []category.Event[T]
}

// NewRecordingListener creates an empty recording listener.
func NewRecordingListener[T comparable]() *RecordingListener[T] {
	return &RecordingListener[T]{}
}

func (l *RecordingListener[T]) ElementsAdded(e category.Event[T]) {
	l.ElementsAddedEvents = append(l.ElementsAddedEvents, e)
}

func (l *RecordingListener[T]) ElementsRemoved(e category.Event[T]) {
	l.ElementsRemovedEvents = append(l.ElementsRemovedEvents, e)
}

func (l *RecordingListener[T]) ChildAdded(e category.Event[T]) {
	l.ChildAddedEvents = append(l.ChildAddedEvents, e)
}

func (l *RecordingListener[T]) ChildRemoved(e category.Event[T]) {
	l.ChildRemovedEvents = append(l.ChildRemovedEvents, e)
}

// Total returns the number of events recorded across all kinds.
func (l *RecordingListener[T]) Total() int {
	return len(l.ElementsAddedEvents) + len(l.ElementsRemovedEvents) +
		len(l.ChildAddedEvents) + len(l.ChildRemovedEvents)
}

// Reset discards all recorded events.
func (l *RecordingListener[T]) Reset() {
	l.ElementsAddedEvents = nil
	l.ElementsRemovedEvents = nil
	l.ChildAddedEvents = nil
	l.ChildRemovedEvents = nil
}

// SampleTree builds a small fixture tree:
//
//	Root [0 1 2]
//	+-ChildA [10 11]
//	| +-ChildA0 [100]
//	+-ChildB []
func SampleTree() *category.Category[int] {
	root := category.New[int]("Root")
	root.AddElements([]int{0, 1, 2})
	childA := root.AddChild("ChildA")
	childA.AddElements([]int{10, 11})
	childA.AddChild("ChildA0").AddElements([]int{100})
	root.AddChild("ChildB")
	return root
}
