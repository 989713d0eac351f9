/*
   Copyright 2024 Arbor Labs

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborlabs/arbor/tree"
	"github.com/arborlabs/arbor/tree/binary"
)

func TestEmptyInvariant(t *testing.T) {

	bt := binary.NewLinkedBinaryTree()
	require.True(t, tree.IsEmpty(bt))
	require.Nil(t, bt.Root())

	root, err := bt.AddRoot("world")
	require.NoError(t, err)
	require.False(t, tree.IsEmpty(bt))
	require.NotNil(t, bt.Root())

	_, err = bt.Delete(root)
	require.NoError(t, err)
	require.True(t, tree.IsEmpty(bt))
	require.Nil(t, bt.Root())
}

func TestIsRootIsLeaf(t *testing.T) {

	bt, pos := buildWorldTree(t)

	require.True(t, tree.IsRoot(bt, pos["world"]))
	require.False(t, tree.IsRoot(bt, pos["earth"]))

	leaf, err := tree.IsLeaf(bt, pos["mars"])
	require.NoError(t, err)
	require.True(t, leaf)

	leaf, err = tree.IsLeaf(bt, pos["earth"])
	require.NoError(t, err)
	require.False(t, leaf)
}

func TestDepth(t *testing.T) {

	bt, pos := buildWorldTree(t)

	testCases := []struct {
		name  string
		depth int
	}{
		{"world", 0},
		{"mars", 1},
		{"earth", 1},
		{"africa", 2},
		{"west europe", 3},
	}

	for i, c := range testCases {
		d, err := tree.Depth(bt, pos[c.name])
		require.NoError(t, err)
		require.Equalf(t, c.depth, d, "unexpected depth of %q in test case %d", c.name, i)
	}
}

func TestHeight(t *testing.T) {

	bt, pos := buildWorldTree(t)

	h, err := tree.Height(bt, nil)
	require.NoError(t, err)
	require.Equal(t, 3, h)

	h, err = tree.Height(bt, pos["earth"])
	require.NoError(t, err)
	require.Equal(t, 2, h)

	h, err = tree.Height(bt, pos["mars"])
	require.NoError(t, err)
	require.Equal(t, 0, h, "a leaf has height 0")
}

func TestHeightOfSingleNodeTree(t *testing.T) {

	bt := binary.NewLinkedBinaryTree()
	bt.AddRoot("alone")

	h, err := tree.Height(bt, nil)
	require.NoError(t, err)
	require.Equal(t, 0, h)
}

func TestHeightOfThreeLevelTree(t *testing.T) {

	bt := binary.NewLinkedBinaryTree()
	root, _ := bt.AddRoot("r")
	l, _ := bt.AddLeft(root, "l")
	r, _ := bt.AddRight(root, "r2")
	bt.AddLeft(l, "lc")
	bt.AddRight(r, "rc")

	h, err := tree.Height(bt, nil)
	require.NoError(t, err)
	require.Equal(t, 2, h)
}

func TestHeightOfEmptyTreeIsUndefined(t *testing.T) {

	bt := binary.NewLinkedBinaryTree()

	_, err := tree.Height(bt, nil)
	require.ErrorIs(t, err, tree.ErrEmptyTree)
}

func TestAlgorithmsRejectStalePositions(t *testing.T) {

	bt := binary.NewLinkedBinaryTree()
	root, _ := bt.AddRoot("a")
	b, _ := bt.AddLeft(root, "b")

	_, err := bt.Delete(b)
	require.NoError(t, err)

	_, err = tree.Depth(bt, b)
	require.ErrorIs(t, err, tree.ErrInvalidPosition)

	_, err = tree.Height(bt, b)
	require.ErrorIs(t, err, tree.ErrInvalidPosition)

	_, err = tree.IsLeaf(bt, b)
	require.ErrorIs(t, err, tree.ErrInvalidPosition)
}
