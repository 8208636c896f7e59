package walker

import (
	"fmt"

	"github.com/categorykit/categorykit/category"
)

// TreeStats contains statistics about a category tree.
type TreeStats struct {
	// Categories is the number of categories in the tree, root included.
	Categories int

	// Elements is the total element count across all categories. Elements
	// appearing in several categories are counted once per category; use
	// AllElements for the unique set.
	Elements int

	// MaxDepth is the depth of the deepest category, with the root at 0.
	MaxDepth int
}

// Count traverses the tree rooted at c and returns statistics about it.
//
// Example:
//
//	stats := walker.Count(root)
//	fmt.Printf("Categories: %d\n", stats.Categories)
//	fmt.Printf("Elements: %d\n", stats.Elements)
func Count[T comparable](c *category.Category[T]) TreeStats {
	var stats TreeStats
	Walk(c, func(depth int, c *category.Category[T]) bool {
		stats.Categories++
		stats.Elements += len(c.Elements())
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return true
	})
	return stats
}

// String returns a human-readable summary of the tree statistics.
func (s TreeStats) String() string {
	return fmt.Sprintf("Categories: %d, Elements: %d, MaxDepth: %d",
		s.Categories, s.Elements, s.MaxDepth)
}
