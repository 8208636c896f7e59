// Package category provides an observable, hierarchical grouping structure
// for arbitrary typed elements.
//
// # Overview
//
// A Category is a named, mutable tree node: it holds an ordered set of
// elements, an ordered list of uniquely-named child categories, and a
// registry of listeners. Every structural or content change fires an Event,
// and events bubble transparently from any descendant to every ancestor's
// listeners, so observing a node means observing its whole subtree.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Category: the mutable tree node holding name, elements, and children
//   - Event: an immutable, tagged description of one change
//   - Listener: the capability implemented by code observing a Category
//   - View: a read-only wrapper over a Category
//
// # Building a Tree
//
// Categories can be assembled directly:
//
//	root := category.New[string]("Root")
//	root.AddElements([]string{"a", "b"})
//	child := root.AddChild("Child")
//	child.AddElements([]string{"c"})
//
// or through the fluent facade in the builder package. The merge, walker,
// and printer packages operate generically on any Category.
//
// # Event Propagation
//
// Each Category owns one internal forwarding listener. When a node adopts
// a child, it registers that forwarding listener on the child; the
// forwarding listener re-delivers every incoming event, unmodified, to the
// node's own listeners. Because the registration is installed wherever the
// node is itself a child, an event originating at any depth reaches every
// ancestor in one forwarding hop per level. Event.Source always names the
// node where the mutation physically occurred, which is not necessarily
// the node a listener was registered on. Removing a child removes the
// forwarding registration, so a detached subtree's later changes no longer
// propagate to its former ancestors.
//
// Events fire only for observable changes: adding an already-present
// element, removing an absent one, or re-adding an existing child is a
// no-op and fires nothing.
//
// # Thread Safety
//
// Category instances are not safe for concurrent mutation from multiple
// goroutines; callers needing that must serialize access externally. The
// listener registry, however, is safe to mutate from within a listener
// callback: notification always iterates a point-in-time snapshot, so a
// callback may add or remove listeners (including itself) without skipping
// or double-invoking unrelated entries.
//
// # Related Packages
//
//   - github.com/categorykit/categorykit/category/builder: fluent construction
//   - github.com/categorykit/categorykit/category/merge: recursive tree merging
//   - github.com/categorykit/categorykit/category/walker: traversal and pruning
//   - github.com/categorykit/categorykit/category/printer: diagnostic rendering
package category
