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

// Vect3FromArray converts a fixed-size float32 array, mapping components
// one to one. It cannot fail.
func Vect3FromArray(arr [3]float32) Vect3 {
	return Vect3{X: arr[0], Y: arr[1], Z: arr[2]}
}

// Vect3FromIntArray converts a fixed-size int32 array, widening each
// component to float32. It cannot fail.
func Vect3FromIntArray(arr [3]int32) Vect3 {
	return Vect3{X: float32(arr[0]), Y: float32(arr[1]), Z: float32(arr[2])}
}

// Vect3FromSlice converts a float32 slice. It fails unless the slice has
// exactly 3 elements; this is the recoverable error tier, meant for data
// that arrives with a length only known at runtime.
func Vect3FromSlice(s []float32) (Vect3, error) {
	if len(s) != 3 {
		return Vect3{}, fmt.Errorf("vect: expected float32 slice of length 3 for Vect3, got length %d", len(s))
	}
	return Vect3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Vect3FromIntSlice converts an int32 slice, widening each element to
// float32. It fails unless the slice has exactly 3 elements.
func Vect3FromIntSlice(s []int32) (Vect3, error) {
	if len(s) != 3 {
		return Vect3{}, fmt.Errorf("vect: expected int32 slice of length 3 for Vect3, got length %d", len(s))
	}
	return Vect3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])}, nil
}

// Array returns the components as a fixed-size array, the inverse of
// Vect3FromArray.
func (v Vect3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
