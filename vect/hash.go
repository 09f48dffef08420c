// Copyright 2025 go-vect Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vect

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash64 returns an xxhash of the raw bit pattern of each component, in
// X, Y order.
//
// Structurally equal vectors always hash identically. Because the hash is
// taken over bit patterns rather than numeric values, +0.0 and -0.0 hash
// differently even though they compare equal under IEEE 754 semantics.
// That asymmetry is an accepted property of the contract, kept so that
// every representable bit pattern (NaNs included) hashes deterministically.
func (v Vect2) Hash64() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	return xxhash.Sum64(buf[:])
}

// Hash64 returns an xxhash of the raw bit pattern of each component, in
// X, Y, Z order. See the Vect2 variant for the +0/-0 caveat.
func (v Vect3) Hash64() uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Z))
	return xxhash.Sum64(buf[:])
}
