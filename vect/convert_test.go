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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVect2FromArray(t *testing.T) {
	v := Vect2FromArray([2]float32{1.5, -2.5})
	assert.Equal(t, New2(1.5, -2.5), v)
}

func TestVect2FromIntArray(t *testing.T) {
	v := Vect2FromIntArray([2]int32{3, -4})
	assert.Equal(t, New2(3, -4), v)
}

func TestVect2ArrayRoundTrip(t *testing.T) {
	arr := [2]float32{0.1, -2.75}
	assert.Equal(t, arr, Vect2FromArray(arr).Array())
}

func TestVect2FromSlice(t *testing.T) {
	v, err := Vect2FromSlice([]float32{3, 4})
	require.NoError(t, err)
	assert.Equal(t, New2(3, 4), v)
}

func TestVect2FromSliceWrongLength(t *testing.T) {
	for _, s := range [][]float32{nil, {}, {1}, {1, 2, 3}} {
		v, err := Vect2FromSlice(s)
		require.Errorf(t, err, "length %d should be rejected", len(s))
		assert.ErrorContains(t, err, "length 2")
		assert.ErrorContains(t, err, "float32")
		assert.Equal(t, Vect2{}, v)
	}
}

func TestVect2FromIntSlice(t *testing.T) {
	v, err := Vect2FromIntSlice([]int32{-7, 9})
	require.NoError(t, err)
	assert.Equal(t, New2(-7, 9), v)

	_, err = Vect2FromIntSlice([]int32{1, 2, 3})
	require.Error(t, err)
	assert.ErrorContains(t, err, "int32")
}

// Converted values must behave exactly like constructed ones.
func TestVect2ConvertedArithmetic(t *testing.T) {
	a := Vect2FromArray([2]float32{1, 2})
	b, err := Vect2FromIntSlice([]int32{3, 4})
	require.NoError(t, err)

	assert.Equal(t, New2(4, 6), a.Add(b))
	assert.Equal(t, float32(11), a.Dot(b))
	assert.Equal(t, float32(-2), a.Cross(b))
	assert.Equal(t, New2(-3, -4), b.Neg())
	assert.Equal(t, New2(6, 8), Vect2FromIntArray([2]int32{3, 4}).Scale(2))
}

func TestVect3FromArray(t *testing.T) {
	v := Vect3FromArray([3]float32{1.5, -2.5, 3})
	assert.Equal(t, New3(1.5, -2.5, 3), v)
}

func TestVect3FromIntArray(t *testing.T) {
	v := Vect3FromIntArray([3]int32{3, -4, 5})
	assert.Equal(t, New3(3, -4, 5), v)
}

func TestVect3ArrayRoundTrip(t *testing.T) {
	arr := [3]float32{0.1, -2.75, 42}
	assert.Equal(t, arr, Vect3FromArray(arr).Array())
}

func TestVect3FromSlice(t *testing.T) {
	v, err := Vect3FromSlice([]float32{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, New3(3, 4, 5), v)
}

func TestVect3FromSliceWrongLength(t *testing.T) {
	for _, s := range [][]float32{nil, {}, {1, 2}, {1, 2, 3, 4}} {
		v, err := Vect3FromSlice(s)
		require.Errorf(t, err, "length %d should be rejected", len(s))
		assert.ErrorContains(t, err, "length 3")
		assert.ErrorContains(t, err, "float32")
		assert.Equal(t, Vect3{}, v)
	}
}

func TestVect3FromIntSlice(t *testing.T) {
	v, err := Vect3FromIntSlice([]int32{-7, 9, 11})
	require.NoError(t, err)
	assert.Equal(t, New3(-7, 9, 11), v)

	_, err = Vect3FromIntSlice([]int32{1, 2})
	require.Error(t, err)
	assert.ErrorContains(t, err, "int32")
}

func TestVect3ConvertedArithmetic(t *testing.T) {
	a, err := Vect3FromSlice([]float32{1, 0, 0})
	require.NoError(t, err)
	b := Vect3FromIntArray([3]int32{0, 1, 0})

	assert.Equal(t, New3(0, 0, 1), a.Cross(b))
	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, New3(-1, 0, 0), a.Neg())
}
