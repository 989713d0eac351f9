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

package binary

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/arborlabs/arbor/tree"
)

// Position is the handle for a single node of a LinkedBinaryTree. It
// is a comparable value: two positions are equal under == exactly
// when they reference the identical node of the identical tree,
// regardless of the element stored there.
//
// A position stays usable only while its tree still considers the
// node reachable. Deleting the node, or attaching it into another
// tree, invalidates every outstanding position for it; the tree
// rejects such positions with tree.ErrInvalidPosition on any
// subsequent call.
type Position struct {
	container *LinkedBinaryTree
	node      *node
}

// Element returns the element stored at this position. Element does
// not validate the position: reading through a stale handle returns
// whatever the node last held, exactly as the node stored it.
func (p Position) Element() interface{} {
	return p.node.element
}

func (p Position) String() string {
	return fmt.Sprintf("position(%v)", p.node.element)
}

// position wraps a node in a Position for this tree, or nil for the
// absence of a node.
func (t *LinkedBinaryTree) position(n *node) tree.Position {
	if n == nil {
		return nil
	}
	return Position{container: t, node: n}
}

// validate returns the node associated with p if p is a live position
// of this tree.
func (t *LinkedBinaryTree) validate(p tree.Position) (*node, error) {
	pos, ok := p.(Position)
	if !ok {
		return nil, errors.Wrapf(tree.ErrInvalidPosition, "tree %s: %T is not a linked binary tree position", t.id, p)
	}
	if pos.container != t {
		return nil, errors.Wrapf(tree.ErrInvalidPosition, "tree %s: position belongs to another container", t.id)
	}
	if t.root == nil {
		// an empty tree considers no node reachable; this covers
		// positions left over after this tree was spliced into
		// another one by Attach
		return nil, errors.Wrapf(tree.ErrInvalidPosition, "tree %s: tree is empty", t.id)
	}
	if pos.node.deprecated() {
		return nil, errors.Wrapf(tree.ErrInvalidPosition, "tree %s: position is no longer valid", t.id)
	}
	return pos.node, nil
}
