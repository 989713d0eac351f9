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

// node is the lightweight store for a single element and its links.
// A node belongs to exactly one tree at a time; the Attach operation
// is the only way links cross tree instances, and it transfers
// ownership wholly. Link integrity invariant: whenever left or right
// is set, that child's parent points back at this node.
type node struct {
	element interface{}
	parent  *node
	left    *node
	right   *node
}

// deprecate marks the node as removed from its tree. The convention
// for deprecated nodes is a self-referential parent link, which any
// surviving position will trip over during validation.
func (n *node) deprecate() {
	n.parent = n
}

func (n *node) deprecated() bool {
	return n.parent == n
}

func (n *node) numChildren() int {
	count := 0
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}
	return count
}
