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

// Package queue implements a FIFO queue over a circular array. It is
// the fringe container used by the breadth-first traversal in the
// tree package, but has no dependency on it and can be used alone.
package queue

import (
	"errors"
)

// DefaultCapacity is the initial length of the backing array.
const DefaultCapacity = 10

// ErrEmpty is returned when attempting to access an element from an
// empty container.
var ErrEmpty = errors.New("queue is empty")

// ArrayQueue is a FIFO queue backed by a circular array. The backing
// array doubles when full and shrinks to half once occupancy drops
// below a quarter of its length.
type ArrayQueue struct {
	data  []interface{}
	front int
	size  int
}

// NewArrayQueue returns an empty queue with DefaultCapacity slots.
func NewArrayQueue() *ArrayQueue {
	return &ArrayQueue{data: make([]interface{}, DefaultCapacity)}
}

// Len returns the number of elements in the queue.
func (q *ArrayQueue) Len() int {
	return q.size
}

// IsEmpty returns true if the queue holds no elements.
func (q *ArrayQueue) IsEmpty() bool {
	return q.size == 0
}

// First returns, without removing, the element at the front of the
// queue. It returns ErrEmpty if the queue is empty.
func (q *ArrayQueue) First() (interface{}, error) {
	if q.IsEmpty() {
		return nil, ErrEmpty
	}
	return q.data[q.front], nil
}

// Enqueue adds an element to the back of the queue.
func (q *ArrayQueue) Enqueue(e interface{}) {
	if q.size == len(q.data) {
		q.resize(2 * len(q.data))
	}
	avail := (q.front + q.size) % len(q.data)
	q.data[avail] = e
	q.size++
}

// Dequeue removes and returns the element at the front of the queue.
// It returns ErrEmpty if the queue is empty.
func (q *ArrayQueue) Dequeue() (interface{}, error) {
	if q.IsEmpty() {
		return nil, ErrEmpty
	}
	answer := q.data[q.front]
	q.data[q.front] = nil // release the slot
	q.front = (q.front + 1) % len(q.data)
	q.size--

	if 0 < q.size && q.size < len(q.data)/4 {
		q.resize(len(q.data) / 2)
	}
	return answer, nil
}

// resize replaces the backing array with one of the given capacity,
// realigning the front to index 0.
func (q *ArrayQueue) resize(capacity int) {
	old := q.data
	q.data = make([]interface{}, capacity)
	walk := q.front
	for k := 0; k < q.size; k++ {
		q.data[k] = old[walk]
		walk = (1 + walk) % len(old)
	}
	q.front = 0
}
