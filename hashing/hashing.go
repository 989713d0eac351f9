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

// Package hashing provides the hash functions used by the map
// implementations to derive bucket indices from keys.
package hashing

import (
	"github.com/OneOfOne/xxhash"
)

// Hasher maps an arbitrary byte string to a 64-bit code. The code is
// compressed into a table index by the map implementations, so a
// Hasher only needs good bit dispersion, not cryptographic strength.
type Hasher interface {
	Do(data []byte) uint64
}

// XxHasher computes xxHash64 checksums. The zero value uses seed 0.
type XxHasher struct {
	seed uint64
}

// NewXxHasher returns an XxHasher with the given seed. Two hashers
// built with the same seed produce identical codes.
func NewXxHasher(seed uint64) *XxHasher {
	return &XxHasher{seed: seed}
}

func (h *XxHasher) Do(data []byte) uint64 {
	return xxhash.Checksum64S(data, h.seed)
}

// FakeModHasher sums the bytes of the input modulo Mod. It yields
// abundant, predictable collisions and exists only to exercise
// probing paths in tests.
type FakeModHasher struct {
	Mod uint64
}

func (h FakeModHasher) Do(data []byte) uint64 {
	var sum uint64
	for _, b := range data {
		sum += uint64(b)
	}
	return sum % h.Mod
}
