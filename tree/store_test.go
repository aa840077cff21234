package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/tree"
)

func TestStoreNestingByIndex(t *testing.T) {
	root := element.New().WithID("root")
	s := tree.NewStore(root)
	require.Equal(t, 1, s.Len())
	require.False(t, s.Nodes[s.Root()].HasParent)

	a := element.New().WithID("a")
	aIdx := s.Open(a)
	require.Equal(t, 1, aIdx)
	assert.True(t, s.Nodes[aIdx].HasParent)
	assert.Equal(t, 0, s.Nodes[aIdx].ParentIdx)

	b := element.New().WithID("b")
	bIdx := s.Open(b)
	assert.Equal(t, aIdx, s.Nodes[bIdx].ParentIdx)
	s.Close() // close b

	c := element.New().WithID("c")
	cIdx := s.Open(c)
	assert.Equal(t, aIdx, s.Nodes[cIdx].ParentIdx)
	s.Close() // close c
	s.Close() // close a

	assert.Equal(t, []int{bIdx, cIdx}, s.Nodes[aIdx].Children)
	assert.Equal(t, []int{aIdx}, s.Nodes[s.Root()].Children)
}

func TestStoreCloseBeyondRootIsAbsorbed(t *testing.T) {
	s := tree.NewStore(element.New())
	assert.NotPanics(t, func() {
		s.Close()
		s.Close()
	})
	// a container is still open (the root), so Open still succeeds
	idx := s.Open(element.New())
	assert.Equal(t, 0, s.Nodes[idx].ParentIdx)
}
