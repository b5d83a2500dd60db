package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parentRef(id int64) *int64 {
	return &id
}

func cat(id int64, name string, parent *int64) *Category {
	return &Category{ID: id, Name: name, ParentID: parent}
}

func TestBuildForest_NestsChildrenUnderParents(t *testing.T) {
	flat := []*Category{
		cat(1, "Clothing", nil),
		cat(2, "Shoes", nil),
		cat(3, "Men", parentRef(1)),
		cat(4, "Women", parentRef(1)),
		cat(5, "Sneakers", parentRef(2)),
	}

	forest := BuildForest(flat)

	require.Len(t, forest, 2)
	assert.Equal(t, "Clothing", forest[0].Name)
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "Men", forest[0].Children[0].Name)
	assert.Equal(t, "Women", forest[0].Children[1].Name)
	require.Len(t, forest[1].Children, 1)
	assert.Equal(t, "Sneakers", forest[1].Children[0].Name)
}

func TestBuildForest_FlattenedOutputPreservesIDSet(t *testing.T) {
	flat := []*Category{
		cat(10, "a", nil),
		cat(11, "b", parentRef(10)),
		cat(12, "c", parentRef(11)),
		cat(13, "d", parentRef(10)),
		cat(14, "e", nil),
		cat(15, "f", parentRef(99)), // dangling parent
	}

	flattened := FlattenForest(BuildForest(flat))

	require.Len(t, flattened, len(flat))
	seen := make(map[int64]int, len(flat))
	for _, node := range flattened {
		seen[node.ID]++
	}
	for _, in := range flat {
		assert.Equal(t, 1, seen[in.ID], "id %d must appear exactly once", in.ID)
	}
}

func TestBuildForest_MissingParentBecomesRoot(t *testing.T) {
	flat := []*Category{
		cat(1, "kept", nil),
		cat(2, "orphan", parentRef(42)),
	}

	forest := BuildForest(flat)

	require.Len(t, forest, 2)
	assert.Equal(t, "orphan", forest[1].Name)
	assert.Empty(t, forest[1].Children)
}

func TestBuildForest_SiblingOrderMatchesInputOrder(t *testing.T) {
	flat := []*Category{
		cat(1, "root", nil),
		cat(5, "third", parentRef(1)),
		cat(3, "first", parentRef(1)),
		cat(4, "second", parentRef(1)),
	}
	// Reorder so the encounter order differs from id order.
	flat[1], flat[2] = flat[2], flat[1]

	forest := BuildForest(flat)

	require.Len(t, forest, 1)
	names := make([]string, 0, len(forest[0].Children))
	for _, child := range forest[0].Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"first", "third", "second"}, names)
}

func TestBuildForest_DoesNotMutateInput(t *testing.T) {
	child := cat(2, "child", parentRef(1))
	flat := []*Category{cat(1, "root", nil), child}

	forest := BuildForest(flat)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Nil(t, child.Children, "input records must stay untouched")
	assert.NotSame(t, child, forest[0].Children[0])
}

func TestBuildForest_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildForest(nil))
	assert.Empty(t, BuildForest([]*Category{}))
}
