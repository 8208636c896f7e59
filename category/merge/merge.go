// Package merge copies one category tree into another, aligning subtrees
// by child name.
package merge

import (
	"fmt"

	"github.com/categorykit/categorykit/category"
)

// Stats reports what a merge changed in the destination tree.
type Stats struct {
	// CategoriesCreated is the number of categories created in the
	// destination because they existed only in the source.
	CategoriesCreated int

	// ElementsAdded is the number of elements newly added to destination
	// categories. Source elements already present in the name-aligned
	// destination category are not counted.
	ElementsAdded int
}

// Add returns the element-wise sum of two Stats.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		CategoriesCreated: s.CategoriesCreated + other.CategoriesCreated,
		ElementsAdded:     s.ElementsAdded + other.ElementsAdded,
	}
}

// String returns a human-readable summary of the merge statistics.
func (s Stats) String() string {
	return fmt.Sprintf("CategoriesCreated: %d, ElementsAdded: %d",
		s.CategoriesCreated, s.ElementsAdded)
}

// Merge recursively copies src's structure and elements into dst: src's
// elements are added to dst, and each child of src is merged into the
// dst child with the same name, which is created when missing. Subtrees
// present only in dst are left untouched, as is src itself.
//
// All changes flow through dst's normal mutators, so dst's listeners
// observe the merge as ordinary element and child events. The zero-value
// Stats is returned when src added nothing.
//
// The names of dst and src themselves are not required to match; only
// children are aligned by name.
func Merge[T comparable](dst, src *category.Category[T]) Stats {
	var stats Stats

	srcElements := src.Elements()
	if len(srcElements) > 0 {
		before := len(dst.Elements())
		dst.AddElements(srcElements)
		stats.ElementsAdded = len(dst.Elements()) - before
	}

	for _, srcChild := range src.Children() {
		dstChild := dst.Child(srcChild.Name())
		if dstChild == nil {
			dstChild = dst.AddChild(srcChild.Name())
			stats.CategoriesCreated++
		}
		stats = stats.Add(Merge(dstChild, srcChild))
	}

	return stats
}
