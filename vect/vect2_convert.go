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

import "fmt"

// Vect2FromArray converts a fixed-size float32 array, mapping components
// one to one. It cannot fail.
func Vect2FromArray(arr [2]float32) Vect2 {
	return Vect2{X: arr[0], Y: arr[1]}
}

// Vect2FromIntArray converts a fixed-size int32 array, widening each
// component to float32. It cannot fail.
func Vect2FromIntArray(arr [2]int32) Vect2 {
	return Vect2{X: float32(arr[0]), Y: float32(arr[1])}
}

// Vect2FromSlice converts a float32 slice. It fails unless the slice has
// exactly 2 elements; this is the recoverable error tier, meant for data
// that arrives with a length only known at runtime.
//
// Example:
//
//	v, err := vect.Vect2FromSlice([]float32{3, 4})
//	if err != nil {
//		// handle the length mismatch
//	}
func Vect2FromSlice(s []float32) (Vect2, error) {
	if len(s) != 2 {
		return Vect2{}, fmt.Errorf("vect: expected float32 slice of length 2 for Vect2, got length %d", len(s))
	}
	return Vect2{X: s[0], Y: s[1]}, nil
}

// Vect2FromIntSlice converts an int32 slice, widening each element to
// float32. It fails unless the slice has exactly 2 elements.
func Vect2FromIntSlice(s []int32) (Vect2, error) {
	if len(s) != 2 {
		return Vect2{}, fmt.Errorf("vect: expected int32 slice of length 2 for Vect2, got length %d", len(s))
	}
	return Vect2{X: float32(s[0]), Y: float32(s[1])}, nil
}

// Array returns the components as a fixed-size array, the inverse of
// Vect2FromArray.
func (v Vect2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
