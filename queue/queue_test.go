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

package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnqueueDequeueOrder(t *testing.T) {

	q := NewArrayQueue()

	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 5, q.Len())

	first, err := q.First()
	require.NoError(t, err)
	require.Equal(t, 0, first)
	require.Equal(t, 5, q.Len(), "peeking should not remove elements")

	for i := 0; i < 5; i++ {
		e, err := q.Dequeue()
		require.NoErrorf(t, err, "dequeue %d should not fail", i)
		require.Equalf(t, i, e, "elements should come out in FIFO order at step %d", i)
	}
	require.True(t, q.IsEmpty())
}

func TestEmptyQueue(t *testing.T) {

	q := NewArrayQueue()

	_, err := q.Dequeue()
	require.ErrorIs(t, err, ErrEmpty)

	_, err = q.First()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestWraparound(t *testing.T) {

	q := NewArrayQueue()

	// force the front index to walk around the backing array
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
		e, err := q.Dequeue()
		require.NoError(t, err)
		require.Equalf(t, i, e, "wrapped element mismatch at step %d", i)
	}
	require.True(t, q.IsEmpty())
}

func TestGrowAndShrink(t *testing.T) {

	q := NewArrayQueue()

	n := 4 * DefaultCapacity
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, n, q.Len())

	for i := 0; i < n-1; i++ {
		e, err := q.Dequeue()
		require.NoError(t, err)
		require.Equalf(t, i, e, "order should survive resizes at step %d", i)
	}

	last, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, n-1, last)
	require.Equal(t, 0, q.Len())
}
