package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/categorykit/categorykit/category"
	"github.com/categorykit/categorykit/category/builder"
	"github.com/categorykit/categorykit/category/walker"
	"github.com/categorykit/categorykit/internal/testutil"
)

func TestBuilder_Chained(t *testing.T) {
	root := builder.New[string]("Root").
		Add("a").
		AddAll([]string{"b", "c"}).
		Build()

	require.Equal(t, "Root", root.Name())
	require.Equal(t, []string{"a", "b", "c"}, root.Elements())
}

func TestBuilder_EmptyNamePanics(t *testing.T) {
	require.PanicsWithValue(t, category.ErrEmptyName, func() {
		builder.New[int]("")
	})
	b := builder.New[int]("Root")
	require.PanicsWithValue(t, category.ErrEmptyName, func() {
		b.Get("")
	})
	require.PanicsWithValue(t, category.ErrEmptyName, func() {
		b.AddIfUncategorized("", []int{1})
	})
}

func TestBuilder_GetCreatesIntermediateCategories(t *testing.T) {
	b := builder.New[int]("Root")
	b.Get("A").Get("B").Add(1)

	root := b.Build()
	childA := root.Child("A")
	require.NotNil(t, childA)
	childB := childA.Child("B")
	require.NotNil(t, childB)
	require.Equal(t, []int{1}, childB.Elements())
}

func TestBuilder_GetReturnsExistingChild(t *testing.T) {
	b := builder.New[int]("Root")
	b.Get("A").Add(1)
	b.Get("A").Add(2)

	root := b.Build()
	require.Len(t, root.Children(), 1)
	require.Equal(t, []int{1, 2}, root.Child("A").Elements())
}

func TestBuilder_BuildReturnsOwnCategory(t *testing.T) {
	b := builder.New[int]("Root")
	child := b.Get("Child").Add(1).Build()
	require.Equal(t, "Child", child.Name())
	require.Same(t, b.Build().Child("Child"), child)
}

func TestBuilder_AddAllNilTolerated(t *testing.T) {
	root := builder.New[int]("Root").AddAll(nil).Build()
	require.Empty(t, root.Elements())
}

func TestBuilder_AddIfUncategorized(t *testing.T) {
	b := builder.New[string]("Root")
	b.Add("a")
	b.Get("Tagged").Add("b")

	// "a" and "b" are categorized somewhere in the tree; only "c" and
	// "d" land in Misc.
	b.AddIfUncategorized("Misc", []string{"a", "b", "c", "d"})

	root := b.Build()
	misc := root.Child("Misc")
	require.NotNil(t, misc)
	require.Equal(t, []string{"c", "d"}, misc.Elements())
}

func TestBuilder_AddIfUncategorized_NoLeftoversNoChild(t *testing.T) {
	b := builder.New[string]("Root")
	b.Add("a")

	b.AddIfUncategorized("Misc", []string{"a"})
	require.Nil(t, b.Build().Child("Misc"))
}

func TestBuilder_AddIfUncategorized_DeduplicatesCandidates(t *testing.T) {
	b := builder.New[string]("Root")
	b.AddIfUncategorized("Misc", []string{"x", "x", "y"})
	require.Equal(t, []string{"x", "y"}, b.Build().Child("Misc").Elements())
}

func TestBuilder_MergeRecursively(t *testing.T) {
	other := testutil.SampleTree()

	root := builder.New[int]("Root").
		Add(7).
		MergeRecursively(other).
		Build()

	require.Equal(t, []int{7, 0, 1, 2}, root.Elements())
	require.NotNil(t, root.Child("ChildA"))
	require.Equal(t, []int{10, 11}, root.Child("ChildA").Elements())
	require.NotNil(t, root.Child("ChildA").Child("ChildA0"))
	require.NotNil(t, root.Child("ChildB"))
}

func TestBuilder_BuiltTreeIsLive(t *testing.T) {
	b := builder.New[int]("Root")
	root := b.Build()

	listener := testutil.NewRecordingListener[int]()
	root.AddListener(listener)

	// the builder wraps the same live tree the caller observes
	b.Get("Child").Add(1)
	require.Len(t, listener.ChildAddedEvents, 1)
	require.Len(t, listener.ElementsAddedEvents, 1)
}

func TestBuilder_WholeTreeDedupUsesAllElements(t *testing.T) {
	b := builder.New[int]("Root")
	b.Get("Deep").Get("Deeper").Add(5)

	b.AddIfUncategorized("Misc", []int{5, 6})

	root := b.Build()
	require.Equal(t, []int{6}, root.Child("Misc").Elements())
	assert.Equal(t, []int{5, 6}, walker.AllElements(root))
}
