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
	"math/rand"

	"github.com/pkg/errors"

	"github.com/arborlabs/arbor/hashing"
)

const (
	// initialSlots is the starting table length.
	initialSlots = 11

	// madPrime is the prime of the multiply-add-divide compression
	// function.
	madPrime = 109345121
)

// available marks slots vacated by a deletion, so probe chains keep
// walking past them during lookups.
var available = &item{}

// ProbeHashMap is a hash map resolving collisions with open
// addressing and linear probing. Hash codes come from a
// hashing.Hasher and are compressed into slot indices with a MAD
// function whose parameters are drawn per instance. The table doubles
// whenever the load factor would exceed one half, so probe chains
// stay short.
type ProbeHashMap struct {
	table  []*item
	n      int
	hasher hashing.Hasher
	scale  uint64
	shift  uint64
}

var _ Map = (*ProbeHashMap)(nil)

// NewProbeHashMap creates an empty map hashing keys with xxHash64.
func NewProbeHashMap() *ProbeHashMap {
	return NewProbeHashMapWith(hashing.NewXxHasher(0))
}

// NewProbeHashMapWith creates an empty map using the given hasher.
func NewProbeHashMapWith(hasher hashing.Hasher) *ProbeHashMap {
	return &ProbeHashMap{
		table:  make([]*item, initialSlots),
		hasher: hasher,
		scale:  uint64(rand.Int63n(madPrime-1) + 1),
		shift:  uint64(rand.Int63n(madPrime)),
	}
}

// slot compresses the hash code of key into an index of the current
// table.
func (m *ProbeHashMap) slot(key string) int {
	code := m.hasher.Do([]byte(key))
	return int(((code*m.scale + m.shift) % madPrime) % uint64(len(m.table)))
}

func (m *ProbeHashMap) isAvailable(j int) bool {
	return m.table[j] == nil || m.table[j] == available
}

// findSlot searches for key starting at slot j. When a match is found
// it returns (true, index of the match); otherwise (false, index of
// the first available slot of the probe chain).
func (m *ProbeHashMap) findSlot(j int, key string) (bool, int) {
	firstAvail := -1
	for {
		if m.isAvailable(j) {
			if firstAvail < 0 {
				firstAvail = j
			}
			if m.table[j] == nil {
				return false, firstAvail
			}
		} else if m.table[j].key == key {
			return true, j
		}
		j = (j + 1) % len(m.table)
	}
}

func (m *ProbeHashMap) Get(key string) (interface{}, error) {
	found, s := m.findSlot(m.slot(key), key)
	if !found {
		return nil, errors.Wrapf(ErrKeyNotFound, "key %q", key)
	}
	return m.table[s].value, nil
}

func (m *ProbeHashMap) Set(key string, value interface{}) {
	found, s := m.findSlot(m.slot(key), key)
	if found {
		m.table[s].value = value
		return
	}
	m.table[s] = &item{key: key, value: value}
	m.n++
	if m.n > len(m.table)/2 {
		m.resize(2*len(m.table) - 1)
	}
}

func (m *ProbeHashMap) Delete(key string) error {
	found, s := m.findSlot(m.slot(key), key)
	if !found {
		return errors.Wrapf(ErrKeyNotFound, "key %q", key)
	}
	m.table[s] = available
	m.n--
	return nil
}

func (m *ProbeHashMap) Len() int {
	return m.n
}

// Keys returns the keys in table scan order.
func (m *ProbeHashMap) Keys() []string {
	keys := make([]string, 0, m.n)
	for j := range m.table {
		if !m.isAvailable(j) {
			keys = append(keys, m.table[j].key)
		}
	}
	return keys
}

// resize rehashes every live item into a table of the given length,
// dropping deletion markers along the way.
func (m *ProbeHashMap) resize(capacity int) {
	old := m.table
	m.table = make([]*item, capacity)
	m.n = 0
	for _, it := range old {
		if it != nil && it != available {
			m.Set(it.key, it.value)
		}
	}
}
