package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/categorykit/categorykit/category"
	"github.com/categorykit/categorykit/category/printer"
	"github.com/categorykit/categorykit/internal/testutil"
)

func TestString_SampleTree(t *testing.T) {
	root := testutil.SampleTree()

	want := strings.Join([]string{
		"Root",
		"|-0",
		"|-1",
		"|-2",
		"+-ChildA",
		"| |-10",
		"| |-11",
		"| +-ChildA0",
		"|   |-100",
		"+-ChildB",
		"",
	}, "\n")
	assert.Equal(t, want, printer.String(root))
}

func TestString_SingleCategory(t *testing.T) {
	root := category.New[int]("Root")
	assert.Equal(t, "Root\n", printer.String(root))
}

func TestFprint_HideElements(t *testing.T) {
	root := testutil.SampleTree()

	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.ShowElements = false
	require.NoError(t, printer.Fprint(&sb, root, opts))

	want := strings.Join([]string{
		"Root",
		"+-ChildA",
		"| +-ChildA0",
		"+-ChildB",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestFprint_MaxDepth(t *testing.T) {
	root := testutil.SampleTree()

	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.MaxDepth = 1
	require.NoError(t, printer.Fprint(&sb, root, opts))

	out := sb.String()
	assert.Contains(t, out, "ChildA")
	assert.Contains(t, out, "ChildB")
	assert.NotContains(t, out, "ChildA0")
}

func TestFprint_SortChildren(t *testing.T) {
	root := category.New[int]("Root")
	root.AddChild("Bravo")
	root.AddChild("alpha")
	root.AddChild("Charlie")

	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.SortChildren = true
	require.NoError(t, printer.Fprint(&sb, root, opts))

	want := strings.Join([]string{
		"Root",
		"+-alpha",
		"+-Bravo",
		"+-Charlie",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())

	// insertion order in the tree itself is untouched
	children := root.Children()
	require.Equal(t, "Bravo", children[0].Name())
}

func TestFprint_WriteErrorPropagates(t *testing.T) {
	root := testutil.SampleTree()
	err := printer.Fprint(failWriter{}, root, printer.DefaultOptions())
	require.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
