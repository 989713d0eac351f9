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

package tree

import (
	"github.com/arborlabs/arbor/metrics"
	"github.com/arborlabs/arbor/queue"
)

// Iterator is a lazy, pull-based traversal over the positions of a
// tree. Each position is produced exactly once; abandoning an
// iterator midway carries no cleanup obligation. Iterators are not
// restartable: obtain a fresh one to traverse again.
//
// Structural mutation of the tree while an iterator is being advanced
// is undefined and must be avoided by the caller.
type Iterator struct {
	next func() (Position, bool)
}

// Next returns the next position in the traversal, or false when the
// traversal is exhausted.
func (it *Iterator) Next() (Position, bool) {
	return it.next()
}

// NewIterator builds an Iterator from a pull function. It is intended
// for tree implementations that define their own orders, like the
// inorder traversal of the linked binary tree.
func NewIterator(next func() (Position, bool)) *Iterator {
	return &Iterator{next: next}
}

// Fringe is the FIFO contract the breadth-first traversal requires
// from its worklist container.
type Fringe interface {
	Enqueue(e interface{})
	Dequeue() (interface{}, error)
	IsEmpty() bool
}

// Orderer is implemented by trees that define their own default
// iteration order. Positions falls back to preorder otherwise.
type Orderer interface {
	Positions() *Iterator
}

// Positions returns an iteration of the positions of t in its default
// order: the tree's own order if it implements Orderer, preorder
// otherwise.
func Positions(t Tree) *Iterator {
	if o, ok := t.(Orderer); ok {
		return o.Positions()
	}
	return PreOrder(t)
}

// Elements drains the default iteration order of t and returns the
// stored elements.
func Elements(t Tree) []interface{} {
	var elems []interface{}
	it := Positions(t)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		elems = append(elems, p.Element())
	}
	return elems
}

// PreOrder returns an iteration that visits each position before the
// positions of its subtrees, children taken left to right.
func PreOrder(t Tree) *Iterator {
	metrics.ArborTraversalsStartedTotal.Inc()

	var stack []Position
	if r := t.Root(); r != nil {
		stack = append(stack, r)
	}
	return &Iterator{next: func() (Position, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children, err := t.Children(p)
		if err != nil {
			stack = nil
			return nil, false
		}
		// push right to left so the leftmost child pops first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
		return p, true
	}}
}

// postFrame tracks one position whose subtrees are still being
// traversed.
type postFrame struct {
	pos      Position
	children []Position
	visited  int
}

// PostOrder returns an iteration that visits the positions of each
// subtree before the position itself, children taken left to right.
func PostOrder(t Tree) *Iterator {
	metrics.ArborTraversalsStartedTotal.Inc()

	var stack []*postFrame
	push := func(p Position) error {
		children, err := t.Children(p)
		if err != nil {
			return err
		}
		stack = append(stack, &postFrame{pos: p, children: children})
		return nil
	}
	if r := t.Root(); r != nil {
		if err := push(r); err != nil {
			stack = nil
		}
	}
	return &Iterator{next: func() (Position, bool) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.visited < len(top.children) {
				c := top.children[top.visited]
				top.visited++
				if err := push(c); err != nil {
					stack = nil
					return nil, false
				}
				continue
			}
			stack = stack[:len(stack)-1]
			return top.pos, true
		}
		return nil, false
	}}
}

// BreadthFirst returns a level-order iteration of the positions of t
// using an ArrayQueue as fringe.
func BreadthFirst(t Tree) *Iterator {
	return BreadthFirstWith(t, queue.NewArrayQueue())
}

// BreadthFirstWith is like BreadthFirst but runs over the supplied
// fringe, which must be empty.
func BreadthFirstWith(t Tree, fringe Fringe) *Iterator {
	metrics.ArborTraversalsStartedTotal.Inc()

	if r := t.Root(); r != nil {
		fringe.Enqueue(r)
	}
	return &Iterator{next: func() (Position, bool) {
		if fringe.IsEmpty() {
			return nil, false
		}
		e, err := fringe.Dequeue()
		if err != nil {
			return nil, false
		}
		p := e.(Position)
		children, err := t.Children(p)
		if err != nil {
			return nil, false
		}
		for _, c := range children {
			fringe.Enqueue(c)
		}
		return p, true
	}}
}
