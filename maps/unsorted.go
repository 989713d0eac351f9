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
	"github.com/pkg/errors"
)

// UnsortedTableMap is a map over an unordered slice of items. Every
// operation scans linearly, which is fine for the small incidental
// tables it is meant for.
type UnsortedTableMap struct {
	table []item
}

var _ Map = (*UnsortedTableMap)(nil)

// NewUnsortedTableMap creates an empty map.
func NewUnsortedTableMap() *UnsortedTableMap {
	return &UnsortedTableMap{}
}

func (m *UnsortedTableMap) Get(key string) (interface{}, error) {
	for _, it := range m.table {
		if it.key == key {
			return it.value, nil
		}
	}
	return nil, errors.Wrapf(ErrKeyNotFound, "key %q", key)
}

func (m *UnsortedTableMap) Set(key string, value interface{}) {
	for i := range m.table {
		if m.table[i].key == key {
			m.table[i].value = value
			return
		}
	}
	m.table = append(m.table, item{key: key, value: value})
}

func (m *UnsortedTableMap) Delete(key string) error {
	for i := range m.table {
		if m.table[i].key == key {
			m.table = append(m.table[:i], m.table[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrKeyNotFound, "key %q", key)
}

func (m *UnsortedTableMap) Len() int {
	return len(m.table)
}

func (m *UnsortedTableMap) Keys() []string {
	keys := make([]string, 0, len(m.table))
	for _, it := range m.table {
		keys = append(keys, it.key)
	}
	return keys
}
