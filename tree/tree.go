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

// Package tree defines the abstract contract shared by all tree
// structures, built around the concept of a Position: an external
// handle for a single node, independent of how the node is stored.
// The package also provides the algorithms that only need that
// contract, such as depth, height and the traversal iterators.
package tree

import (
	"github.com/pkg/errors"
)

// Error kinds returned by tree operations. Implementations wrap these
// with context, so callers should match with errors.Is.
var (
	// ErrInvalidPosition means a position belongs to another tree or
	// references a node that has been removed.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrStructuralConflict means the requested mutation would break
	// the shape of the tree: occupied slot, existing root, a delete on
	// a node with two children, or an attach on a non-leaf.
	ErrStructuralConflict = errors.New("structural conflict")

	// ErrEmptyTree means the operation is undefined on a tree with no
	// root.
	ErrEmptyTree = errors.New("empty tree")
)

// Position is the location of a single element within a tree.
// Implementations must be comparable value types so that two
// positions are equal, under ==, exactly when they reference the
// identical node, regardless of the element stored there.
type Position interface {
	// Element returns the element stored at this position.
	Element() interface{}
}

// Tree is the accessor contract a tree structure must satisfy for the
// generic algorithms in this package to work. Operations taking a
// Position fail with ErrInvalidPosition when the position does not
// belong to the tree or its node has been removed.
type Tree interface {
	// Root returns the root position, or nil if the tree is empty.
	Root() Position

	// Parent returns the parent of p, or nil if p is the root.
	Parent(p Position) (Position, error)

	// Children returns the children of p, ordered left to right.
	Children(p Position) ([]Position, error)

	// NumChildren returns how many children p has.
	NumChildren(p Position) (int, error)

	// Len returns the total number of elements in the tree.
	Len() int
}

// IsEmpty returns true if t holds no elements.
func IsEmpty(t Tree) bool {
	return t.Len() == 0
}

// IsRoot returns true if p represents the root of t.
func IsRoot(t Tree, p Position) bool {
	return t.Root() == p
}

// IsLeaf returns true if p has no children.
func IsLeaf(t Tree, p Position) (bool, error) {
	n, err := t.NumChildren(p)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Depth returns the number of levels separating p from the root. The
// root has depth 0.
func Depth(t Tree, p Position) (int, error) {
	if IsRoot(t, p) {
		return 0, nil
	}
	parent, err := t.Parent(p)
	if err != nil {
		return 0, err
	}
	d, err := Depth(t, parent)
	if err != nil {
		return 0, err
	}
	return 1 + d, nil
}

// Height returns the height of the subtree rooted at p. A leaf has
// height 0. If p is nil, the height of the entire tree is computed,
// which is undefined on an empty tree and fails with ErrEmptyTree.
func Height(t Tree, p Position) (int, error) {
	if p == nil {
		p = t.Root()
		if p == nil {
			return 0, errors.Wrap(ErrEmptyTree, "height is undefined")
		}
	}
	return subtreeHeight(t, p)
}

// subtreeHeight computes height in time linear in the subtree size.
func subtreeHeight(t Tree, p Position) (int, error) {
	children, err := t.Children(p)
	if err != nil {
		return 0, err
	}
	if len(children) == 0 {
		return 0, nil
	}
	max := 0
	for _, c := range children {
		h, err := subtreeHeight(t, c)
		if err != nil {
			return 0, err
		}
		if h > max {
			max = h
		}
	}
	return 1 + max, nil
}
