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

	"github.com/arborlabs/arbor/queue"
	"github.com/arborlabs/arbor/tree"
	"github.com/arborlabs/arbor/tree/binary"
)

// buildWorldTree assembles the partial model of the universe used
// across the traversal tests:
//
//	world
//	├── mars
//	└── earth
//	    ├── africa (west africa, east africa)
//	    └── europe (south europe, west europe)
func buildWorldTree(t *testing.T) (*binary.LinkedBinaryTree, map[string]tree.Position) {
	t.Helper()

	bt := binary.NewLinkedBinaryTree()
	pos := make(map[string]tree.Position)

	add := func(name string, p tree.Position, side string) tree.Position {
		var child tree.Position
		var err error
		switch side {
		case "root":
			child, err = bt.AddRoot(name)
		case "left":
			child, err = bt.AddLeft(p, name)
		case "right":
			child, err = bt.AddRight(p, name)
		}
		require.NoError(t, err)
		pos[name] = child
		return child
	}

	root := add("world", nil, "root")
	add("mars", root, "left")
	earth := add("earth", root, "right")
	africa := add("africa", earth, "left")
	europe := add("europe", earth, "right")
	add("west africa", africa, "left")
	add("east africa", africa, "right")
	add("south europe", europe, "left")
	add("west europe", europe, "right")

	return bt, pos
}

func drain(it *tree.Iterator) []interface{} {
	var elems []interface{}
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		elems = append(elems, p.Element())
	}
	return elems
}

func TestPreOrder(t *testing.T) {

	bt, _ := buildWorldTree(t)

	require.Equal(t, []interface{}{
		"world", "mars", "earth",
		"africa", "west africa", "east africa",
		"europe", "south europe", "west europe",
	}, drain(tree.PreOrder(bt)))
}

func TestPostOrder(t *testing.T) {

	bt, _ := buildWorldTree(t)

	require.Equal(t, []interface{}{
		"mars", "west africa", "east africa", "africa",
		"south europe", "west europe", "europe",
		"earth", "world",
	}, drain(tree.PostOrder(bt)))
}

func TestBreadthFirst(t *testing.T) {

	bt, _ := buildWorldTree(t)

	require.Equal(t, []interface{}{
		"world", "mars", "earth",
		"africa", "europe",
		"west africa", "east africa", "south europe", "west europe",
	}, drain(tree.BreadthFirst(bt)))
}

func TestBreadthFirstThreeLevels(t *testing.T) {

	// root with two children, each with one child
	bt := binary.NewLinkedBinaryTree()
	root, _ := bt.AddRoot("r")
	l, _ := bt.AddLeft(root, "l")
	r, _ := bt.AddRight(root, "r2")
	bt.AddRight(l, "lc")
	bt.AddLeft(r, "rc")

	require.Equal(t, []interface{}{"r", "l", "r2", "lc", "rc"}, drain(tree.BreadthFirst(bt)))
}

func TestBreadthFirstWithFringe(t *testing.T) {

	bt, _ := buildWorldTree(t)

	fringe := queue.NewArrayQueue()
	elems := drain(tree.BreadthFirstWith(bt, fringe))
	require.Len(t, elems, bt.Len())
	require.True(t, fringe.IsEmpty())
}

func TestInorderIsTheBinaryDefault(t *testing.T) {

	bt, _ := buildWorldTree(t)

	require.Equal(t, []interface{}{
		"mars", "world",
		"west africa", "africa", "east africa",
		"earth",
		"south europe", "europe", "west europe",
	}, drain(tree.Positions(bt)))

	require.Equal(t, drain(bt.InOrder()), tree.Elements(bt))
}

func TestTraversalsOfEmptyTree(t *testing.T) {

	bt := binary.NewLinkedBinaryTree()

	for i, it := range []*tree.Iterator{
		tree.PreOrder(bt), tree.PostOrder(bt), tree.BreadthFirst(bt), tree.Positions(bt),
	} {
		_, ok := it.Next()
		require.Falsef(t, ok, "traversal %d of an empty tree should be exhausted", i)
	}
}

func TestEarlyTermination(t *testing.T) {

	bt, _ := buildWorldTree(t)

	// consuming a prefix and dropping the iterator needs no cleanup
	it := tree.PreOrder(bt)
	p, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "world", p.Element())

	p, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, "mars", p.Element())
}

func TestIteratorIsNotRestartable(t *testing.T) {

	bt, _ := buildWorldTree(t)

	it := tree.PreOrder(bt)
	first := drain(it)
	require.Len(t, first, bt.Len())

	_, ok := it.Next()
	require.False(t, ok, "a drained iterator stays exhausted")

	// a fresh call restarts from the root
	require.Equal(t, first, drain(tree.PreOrder(bt)))
}
