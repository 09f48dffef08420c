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

// Vect2 is a 2-component float32 vector. It is a plain comparable value
// type; the zero value is the zero vector.
type Vect2 struct {
	X, Y float32
}

// New2 returns a Vect2 with the given components.
func New2(x, y float32) Vect2 {
	return Vect2{X: x, Y: y}
}

// Add returns the componentwise sum v + other.
//
// The result is not guarded: overflow to infinity or NaN passes through
// silently. Use CheckedAdd to detect overflow in vectcheck builds.
func (v Vect2) Add(other Vect2) Vect2 {
	return Vect2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the componentwise difference v - other.
func (v Vect2) Sub(other Vect2) Vect2 {
	return Vect2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Neg returns the componentwise negation of v.
func (v Vect2) Neg() Vect2 {
	return Vect2{X: -v.X, Y: -v.Y}
}

// Scale returns v with every component multiplied by s.
func (v Vect2) Scale(s float32) Vect2 {
	return Vect2{X: v.X * s, Y: v.Y * s}
}

// InvScale returns v with every component divided by s. Division by zero
// follows IEEE 754 rules; use CheckedDiv to catch it in vectcheck builds.
func (v Vect2) InvScale(s float32) Vect2 {
	return Vect2{X: v.X / s, Y: v.Y / s}
}

// AddAssign adds other to v in place.
func (v *Vect2) AddAssign(other Vect2) {
	v.X += other.X
	v.Y += other.Y
}

// SubAssign subtracts other from v in place.
func (v *Vect2) SubAssign(other Vect2) {
	v.X -= other.X
	v.Y -= other.Y
}

// ScaleAssign multiplies v by s in place.
func (v *Vect2) ScaleAssign(s float32) {
	v.X *= s
	v.Y *= s
}

// InvScaleAssign divides v by s in place.
func (v *Vect2) InvScaleAssign(s float32) {
	v.X /= s
	v.Y /= s
}

// CheckedAdd is Add plus a development-time overflow guard. In vectcheck
// builds a non-finite component in the result panics; otherwise it is
// identical to Add.
//
// Example:
//
//	a := vect.New2(math.MaxFloat32, 0)
//	a.Add(a)        // (+Inf, 0), silently
//	a.CheckedAdd(a) // panics under -tags vectcheck
func (v Vect2) CheckedAdd(other Vect2) Vect2 {
	result := v.Add(other)
	assertFinite2(result.X, result.Y, "vect: Vect2 overflow in Add")
	return result
}

// CheckedSub is Sub plus a development-time overflow guard.
func (v Vect2) CheckedSub(other Vect2) Vect2 {
	result := v.Sub(other)
	assertFinite2(result.X, result.Y, "vect: Vect2 overflow in Sub")
	return result
}

// CheckedMul is Scale plus a development-time overflow guard.
func (v Vect2) CheckedMul(s float32) Vect2 {
	result := v.Scale(s)
	assertFinite2(result.X, result.Y, "vect: Vect2 overflow in Mul")
	return result
}

// CheckedDiv is InvScale plus development-time guards for a zero divisor
// and a non-finite result.
func (v Vect2) CheckedDiv(s float32) Vect2 {
	result := v.InvScale(s)
	assertNonZeroDivisor(s, "vect: Vect2 division by zero")
	assertFinite2(result.X, result.Y, "vect: Vect2 overflow in Div")
	return result
}

// LengthSquared returns x² + y². Cheaper than Length when only relative
// magnitudes matter.
func (v Vect2) LengthSquared() float32 {
	result := v.X*v.X + v.Y*v.Y
	assertFinite(result, "vect: Vect2.LengthSquared produced NaN or infinity")
	return result
}

// Length returns the Euclidean length of v.
func (v Vect2) Length() float32 {
	result := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
	assertFinite(result, "vect: Vect2.Length produced NaN or infinity")
	return result
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged; a degenerate input is a defined case, not an error.
func (v Vect2) Normalize() Vect2 {
	// Guard the squared length before the sqrt so an overflow is reported
	// here rather than surfacing as a NaN component downstream.
	sq := v.X*v.X + v.Y*v.Y
	assertFinite(sq, "vect: Vect2.Normalize produced non-finite result")

	length := float32(math.Sqrt(float64(sq)))
	if length == 0 {
		return v
	}
	result := v.InvScale(length)
	assertFinite2(result.X, result.Y, "vect: Vect2.Normalize produced non-finite result")
	return result
}

// Dot returns the inner product v · other.
//
// Example:
//
//	vect.New2(1, 0).Dot(vect.New2(0, 1)) // 0, perpendicular
func (v Vect2) Dot(other Vect2) float32 {
	result := v.X*other.X + v.Y*other.Y
	assertFinite(result, "vect: Vect2.Dot produced NaN or infinity")
	return result
}

// Cross returns the signed scalar cross product x1*y2 - y1*x2. It is
// positive when other lies counterclockwise of v.
//
// Example:
//
//	vect.New2(1, 0).Cross(vect.New2(0, 1)) // 1
func (v Vect2) Cross(other Vect2) float32 {
	result := v.X*other.Y - v.Y*other.X
	assertFinite(result, "vect: Vect2.Cross produced NaN or infinity")
	return result
}

// Rotate returns v rotated counterclockwise by angle radians.
func (v Vect2) Rotate(angle float32) Vect2 {
	sin, cos := math.Sincos(float64(angle))
	x := v.X*float32(cos) - v.Y*float32(sin)
	y := v.X*float32(sin) + v.Y*float32(cos)
	assertFinite2(x, y, "vect: Vect2.Rotate produced non-finite result")
	return Vect2{X: x, Y: y}
}

// Distance returns the Euclidean distance between v and other treated as
// points.
func (v Vect2) Distance(other Vect2) float32 {
	result := v.Sub(other).Length()
	assertFinite(result, "vect: Vect2.Distance produced NaN or infinity")
	return result
}

// DistanceSquared returns the squared Euclidean distance between v and
// other treated as points.
func (v Vect2) DistanceSquared(other Vect2) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	result := dx*dx + dy*dy
	assertFinite(result, "vect: Vect2.DistanceSquared produced NaN or infinity")
	return result
}

// Angle returns the signed angle from v to other in radians, in (-π, π],
// computed as atan2(cross, dot). Positive means other is counterclockwise
// of v.
func (v Vect2) Angle(other Vect2) float32 {
	dot := v.Dot(other)
	cross := v.Cross(other)
	result := float32(math.Atan2(float64(cross), float64(dot)))
	assertFinite(result, "vect: Vect2.Angle produced NaN or infinity")
	return result
}

// AngleBetween returns the unsigned angle between v and other in radians,
// in [0, π].
//
// Degenerate inputs are defined, not errors: structurally equal vectors and
// zero-length vectors on either side yield 0. The cosine is clamped to
// [-1, 1] and snapped to exactly 1 when within Epsilon of it, so rounding
// drift near parallel vectors cannot push acos out of its domain.
func (v Vect2) AngleBetween(other Vect2) float32 {
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
	assertFinite(result, "vect: Vect2.AngleBetween produced NaN or infinity")
	return result
}

// Lerp returns the componentwise linear interpolation v + (other-v)*t.
// t is not clamped; values outside [0, 1] extrapolate.
func (v Vect2) Lerp(other Vect2, t float32) Vect2 {
	x := v.X + (other.X-v.X)*t
	y := v.Y + (other.Y-v.Y)*t
	assertFinite2(x, y, "vect: Vect2.Lerp produced non-finite result")
	return Vect2{X: x, Y: y}
}

// Reflect returns v reflected about the given normal, v - 2(v·n̂)n̂. The
// normal is normalized internally, so its magnitude does not matter.
//
// Example:
//
//	vect.New2(1, -1).Reflect(vect.New2(0, 1)) // (1, 1)
func (v Vect2) Reflect(normal Vect2) Vect2 {
	n := normal.Normalize()
	result := v.Sub(n.Scale(2 * v.Dot(n)))
	assertFinite2(result.X, result.Y, "vect: Vect2.Reflect produced non-finite result")
	return result
}

// Project returns the projection of v onto other, (v·other / |other|²) ·
// other. Projecting onto the zero vector returns the zero vector.
func (v Vect2) Project(other Vect2) Vect2 {
	lenSq := other.LengthSquared()
	if lenSq == 0 {
		return Vect2{}
	}
	result := other.Scale(v.Dot(other) / lenSq)
	assertFinite2(result.X, result.Y, "vect: Vect2.Project produced non-finite result")
	return result
}

// IsZero reports whether every component is exactly zero. No epsilon is
// applied.
func (v Vect2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsNormalized reports whether the squared length is within Epsilon of 1.
func (v Vect2) IsNormalized() bool {
	return abs32(v.LengthSquared()-1) < Epsilon
}

// IsParallel reports whether v and other are parallel, i.e. the magnitude
// of their cross product is within Epsilon of zero.
func (v Vect2) IsParallel(other Vect2) bool {
	return abs32(v.Cross(other)) < Epsilon
}

// At returns the component at index i (0 = X, 1 = Y). Any other index
// panics in every build mode; bounds are a programming contract, not part
// of the vectcheck guard tier.
func (v Vect2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("vect: index %d out of range for Vect2", i))
	}
}

// Set assigns the component at index i (0 = X, 1 = Y). Any other index
// panics in every build mode.
func (v *Vect2) Set(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		panic(fmt.Sprintf("vect: index %d out of range for Vect2", i))
	}
}

// String returns the canonical text form "(x, y)".
func (v Vect2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
