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

// Package vect provides fixed-dimension float32 vector primitives for
// geometry, physics, and graphics code.
//
// Two independent value types are exported:
//   - Vect2 - a 2-component vector with plane-specific operations
//     (signed scalar cross product, Rotate, signed Angle)
//   - Vect3 - a 3-component vector with a vector-valued cross product
//
// Both types are plain comparable structs with no hidden state; the zero
// value is the zero vector. Operations take and return values, so instances
// can be copied and shared across goroutines freely.
//
// # Error policy
//
// The package has two error tiers that are never mixed:
//
// Development-time guards. Every geometric query and every Checked*
// arithmetic variant verifies that its result is finite. The guards are
// compiled in only with the vectcheck build tag:
//
//	go test -tags vectcheck ./...
//
// A non-finite result (or a zero divisor in CheckedDiv) panics with a
// message naming the operation. Without the tag the guards cost nothing and
// the checked variants behave exactly like their unguarded counterparts,
// following IEEE 754 overflow and NaN propagation rules.
//
// Recoverable errors. Only the fallible slice conversions
// (Vect2FromSlice, Vect2FromIntSlice, Vect3FromSlice, Vect3FromIntSlice)
// return an error, when the slice length does not match the vector
// dimensionality. Everything else either succeeds or, for out-of-range
// component indices, panics unconditionally in every build mode.
//
// # Degenerate inputs
//
// Zero-length vectors are a defined case, not an error: Normalize returns
// the zero vector unchanged, Project onto a zero target returns the zero
// vector, and AngleBetween involving a zero vector (or two equal vectors)
// returns 0.
package vect
