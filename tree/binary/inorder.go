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
	"github.com/arborlabs/arbor/metrics"
	"github.com/arborlabs/arbor/tree"
)

// InOrder returns an iteration that visits the left subtree of each
// position, then the position itself, then its right subtree. The
// traversal is lazy and driven by an explicit stack of the pending
// left spine.
func (t *LinkedBinaryTree) InOrder() *tree.Iterator {
	metrics.ArborTraversalsStartedTotal.Inc()

	var stack []*node
	descend := func(n *node) {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
	}
	descend(t.root)

	return tree.NewIterator(func() (tree.Position, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		descend(n.right)
		return t.position(n), true
	})
}

// Positions makes inorder the default iteration order for binary
// trees, overriding the preorder default of the generic contract.
func (t *LinkedBinaryTree) Positions() *tree.Iterator {
	return t.InOrder()
}
