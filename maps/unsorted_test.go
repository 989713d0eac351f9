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

package maps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnsortedTableMap(t *testing.T) {

	m := NewUnsortedTableMap()
	require.Equal(t, 0, m.Len())

	m.Set("k1", 1)
	m.Set("k2", 2)
	require.Equal(t, 2, m.Len())

	v, err := m.Get("k1")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	// overwrite keeps a single item per key
	m.Set("k1", 10)
	require.Equal(t, 2, m.Len())
	v, err = m.Get("k1")
	require.NoError(t, err)
	require.Equal(t, 10, v)

	require.ElementsMatch(t, []string{"k1", "k2"}, m.Keys())

	require.NoError(t, m.Delete("k1"))
	require.Equal(t, 1, m.Len())

	_, err = m.Get("k1")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.ErrorIs(t, m.Delete("k1"), ErrKeyNotFound)
}

func TestUnsortedTableMapMissingKey(t *testing.T) {

	m := NewUnsortedTableMap()

	_, err := m.Get("absent")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.ErrorIs(t, m.Delete("absent"), ErrKeyNotFound)
}
