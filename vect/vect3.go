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
	"fmt"
	"math"
)

// Vect3 is a 3-component float32 vector. It is a plain comparable value
// type; the zero value is the zero vector.
type Vect3 struct {
	X, Y, Z float32
}

// New3 returns a Vect3 with the given components.
func New3(x, y, z float32) Vect3 {
	return Vect3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum v + other.
//
// The result is not guarded: overflow to infinity or NaN passes through
// silently. Use CheckedAdd to detect overflow in vectcheck builds.
func (v Vect3) Add(other Vect3) Vect3 {
	return Vect3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the componentwise difference v - other.
func (v Vect3) Sub(other Vect3) Vect3 {
	return Vect3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Neg returns the componentwise negation of v.
func (v Vect3) Neg() Vect3 {
	return Vect3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vect3) Scale(s float32) Vect3 {
	return Vect3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// InvScale returns v with every component divided by s. Division by zero
// follows IEEE 754 rules; use CheckedDiv to catch it in vectcheck builds.
func (v Vect3) InvScale(s float32) Vect3 {
	return Vect3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// AddAssign adds other to v in place.
func (v *Vect3) AddAssign(other Vect3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SubAssign subtracts other from v in place.
func (v *Vect3) SubAssign(other Vect3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// ScaleAssign multiplies v by s in place.
func (v *Vect3) ScaleAssign(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// InvScaleAssign divides v by s in place.
func (v *Vect3) InvScaleAssign(s float32) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// CheckedAdd is Add plus a development-time overflow guard. In vectcheck
// builds a non-finite component in the result panics; otherwise it is
// identical to Add.
func (v Vect3) CheckedAdd(other Vect3) Vect3 {
	result := v.Add(other)
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3 overflow in Add")
	return result
}

// CheckedSub is Sub plus a development-time overflow guard.
func (v Vect3) CheckedSub(other Vect3) Vect3 {
	result := v.Sub(other)
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3 overflow in Sub")
	return result
}

// CheckedMul is Scale plus a development-time overflow guard.
func (v Vect3) CheckedMul(s float32) Vect3 {
	result := v.Scale(s)
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3 overflow in Mul")
	return result
}

// CheckedDiv is InvScale plus development-time guards for a zero divisor
// and a non-finite result.
func (v Vect3) CheckedDiv(s float32) Vect3 {
	result := v.InvScale(s)
	assertNonZeroDivisor(s, "vect: Vect3 division by zero")
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3 overflow in Div")
	return result
}

// LengthSquared returns x² + y² + z². Cheaper than Length when only
// relative magnitudes matter.
func (v Vect3) LengthSquared() float32 {
	result := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	assertFinite(result, "vect: Vect3.LengthSquared produced NaN or infinity")
	return result
}

// Length returns the Euclidean length of v.
func (v Vect3) Length() float32 {
	result := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
	assertFinite(result, "vect: Vect3.Length produced NaN or infinity")
	return result
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged; a degenerate input is a defined case, not an error.
func (v Vect3) Normalize() Vect3 {
	length := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
	assertFinite(length, "vect: Vect3.Normalize produced non-finite result")
	if length == 0 {
		return v
	}
	result := v.InvScale(length)
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3.Normalize produced non-finite result")
	return result
}

// Dot returns the inner product v · other.
func (v Vect3) Dot(other Vect3) float32 {
	result := v.X*other.X + v.Y*other.Y + v.Z*other.Z
	assertFinite(result, "vect: Vect3.Dot produced NaN or infinity")
	return result
}

// Cross returns the vector cross product v × other, perpendicular to both
// inputs with the right-hand orientation.
//
// Example:
//
//	vect.New3(1, 0, 0).Cross(vect.New3(0, 1, 0)) // (0, 0, 1)
func (v Vect3) Cross(other Vect3) Vect3 {
	x := v.Y*other.Z - v.Z*other.Y
	y := v.Z*other.X - v.X*other.Z
	z := v.X*other.Y - v.Y*other.X
	assertFinite3(x, y, z, "vect: Vect3.Cross produced non-finite result")
	return Vect3{X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance between v and other treated as
// points.
func (v Vect3) Distance(other Vect3) float32 {
	result := v.Sub(other).Length()
	assertFinite(result, "vect: Vect3.Distance produced NaN or infinity")
	return result
}

// DistanceSquared returns the squared Euclidean distance between v and
// other treated as points.
func (v Vect3) DistanceSquared(other Vect3) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	result := dx*dx + dy*dy + dz*dz
	assertFinite(result, "vect: Vect3.DistanceSquared produced NaN or infinity")
	return result
}

// AngleBetween returns the unsigned angle between v and other in radians,
// in [0, π].
//
// Degenerate inputs are defined, not errors: structurally equal vectors and
// zero-length vectors on either side yield 0. The cosine is clamped to
// [-1, 1] and snapped to exactly 1 when within Epsilon of it, so rounding
// drift near parallel vectors cannot push acos out of its domain.
func (v Vect3) AngleBetween(other Vect3) float32 {
	if v == other {
		return 0
	}
	denom := v.Length() * other.Length()
	if denom == 0 {
		return 0
	}
	cos := v.Dot(other) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	if abs32(cos-1) < Epsilon {
		return 0
	}
	result := float32(math.Acos(float64(cos)))
	assertFinite(result, "vect: Vect3.AngleBetween produced NaN or infinity")
	return result
}

// Lerp returns the componentwise linear interpolation v + (other-v)*t.
// t is not clamped; values outside [0, 1] extrapolate.
func (v Vect3) Lerp(other Vect3, t float32) Vect3 {
	x := v.X + (other.X-v.X)*t
	y := v.Y + (other.Y-v.Y)*t
	z := v.Z + (other.Z-v.Z)*t
	assertFinite3(x, y, z, "vect: Vect3.Lerp produced non-finite result")
	return Vect3{X: x, Y: y, Z: z}
}

// Reflect returns v reflected about the given normal, v - 2(v·n̂)n̂. The
// normal is normalized internally, so its magnitude does not matter.
//
// Example:
//
//	vect.New3(1, -1, 0).Reflect(vect.New3(0, 1, 0)) // (1, 1, 0)
func (v Vect3) Reflect(normal Vect3) Vect3 {
	n := normal.Normalize()
	result := v.Sub(n.Scale(2 * v.Dot(n)))
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3.Reflect produced non-finite result")
	return result
}

// Project returns the projection of v onto other, (v·other / |other|²) ·
// other. Projecting onto the zero vector returns the zero vector.
func (v Vect3) Project(other Vect3) Vect3 {
	lenSq := other.LengthSquared()
	if lenSq == 0 {
		return Vect3{}
	}
	result := other.Scale(v.Dot(other) / lenSq)
	assertFinite3(result.X, result.Y, result.Z, "vect: Vect3.Project produced non-finite result")
	return result
}

// IsZero reports whether every component is exactly zero. No epsilon is
// applied.
func (v Vect3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsNormalized reports whether the squared length is within Epsilon of 1.
func (v Vect3) IsNormalized() bool {
	return abs32(v.LengthSquared()-1) < Epsilon
}

// IsParallel reports whether v and other are parallel, i.e. the squared
// length of their cross product is within Epsilon of zero.
func (v Vect3) IsParallel(other Vect3) bool {
	return v.Cross(other).LengthSquared() < Epsilon
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z). Any other
// index panics in every build mode; bounds are a programming contract, not
// part of the vectcheck guard tier.
func (v Vect3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("vect: index %d out of range for Vect3", i))
	}
}

// Set assigns the component at index i (0 = X, 1 = Y, 2 = Z). Any other
// index panics in every build mode.
func (v *Vect3) Set(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		panic(fmt.Sprintf("vect: index %d out of range for Vect3", i))
	}
}

// String returns the canonical text form "(x, y, z)".
func (v Vect3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
