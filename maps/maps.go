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

// Package maps provides the supporting map containers: an unsorted
// table map backed by a plain slice and a hash map using linear
// probing for collision resolution.
package maps

import (
	"errors"
)

// ErrKeyNotFound is returned by lookups and deletions for keys the
// map does not hold.
var ErrKeyNotFound = errors.New("key not found")

// Map is the contract shared by the map containers in this package.
type Map interface {
	// Get returns the value associated with key, or ErrKeyNotFound.
	Get(key string) (interface{}, error)

	// Set assigns value to key, overwriting any existing value.
	Set(key string, value interface{})

	// Delete removes the item associated with key, or returns
	// ErrKeyNotFound.
	Delete(key string) error

	// Len returns the number of items in the map.
	Len() int

	// Keys returns the keys of the map in iteration order.
	Keys() []string
}

// item is a composite holding one key/value pair.
type item struct {
	key   string
	value interface{}
}
