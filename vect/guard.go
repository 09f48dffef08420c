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

import "math"

// Epsilon is the float32 machine epsilon, the difference between 1.0 and
// the next representable float32. It is the tolerance used by IsNormalized,
// IsParallel, and the near-unit cosine snap in AngleBetween.
const Epsilon float32 = 0x1p-23

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}

// abs32 is a float32 absolute value without the float64 round trip.
func abs32(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ (1 << 31))
}

// assertFinite panics with msg when guards are enabled and f is NaN or
// infinite. With guards disabled (the default build) the call is a no-op
// and is eliminated entirely.
func assertFinite(f float32, msg string) {
	if guardsEnabled && !isFinite(f) {
		panic(msg)
	}
}

func assertFinite2(x, y float32, msg string) {
	if guardsEnabled && !(isFinite(x) && isFinite(y)) {
		panic(msg)
	}
}

func assertFinite3(x, y, z float32, msg string) {
	if guardsEnabled && !(isFinite(x) && isFinite(y) && isFinite(z)) {
		panic(msg)
	}
}

// assertNonZeroDivisor guards the checked division variants.
func assertNonZeroDivisor(s float32, msg string) {
	if guardsEnabled && s == 0 {
		panic(msg)
	}
}
