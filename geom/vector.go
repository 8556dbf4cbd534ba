// geom is a small subpackage with 2D vector and rectangle types built
// on [efix.Fixed64], for simulations that need their positions and
// bounding boxes to be deterministic too.
//
// The types only compose efix operations; all arithmetic saturates
// like the underlying values.
package geom

import "image"

import "github.com/tinne26/efix"

// A pair of [efix.Fixed64] coordinates.
type Vector2 struct {
	X efix.Fixed64
	Y efix.Fixed64
}

// Creates a vector from a pair of ints.
func IntsToVector(x, y int) Vector2 {
	return Vector2{ X: efix.Fixed64FromInt(x), Y: efix.Fixed64FromInt(y) }
}

// Creates a vector from a pair of float64s, truncating toward zero.
func FloatsToVector(x, y float64) Vector2 {
	return Vector2{ X: efix.Fixed64FromFloat(x), Y: efix.Fixed64FromFloat(y) }
}

func (self Vector2) Add(other Vector2) Vector2 {
	return Vector2{ X: self.X.Add(other.X), Y: self.Y.Add(other.Y) }
}

func (self Vector2) Sub(other Vector2) Vector2 {
	return Vector2{ X: self.X.Sub(other.X), Y: self.Y.Sub(other.Y) }
}

func (self Vector2) Neg() Vector2 {
	return Vector2{ X: self.X.Neg(), Y: self.Y.Neg() }
}

// Returns the vector with both coordinates multiplied by factor.
func (self Vector2) Scale(factor efix.Fixed64) Vector2 {
	return Vector2{ X: self.X.Mul(factor), Y: self.Y.Mul(factor) }
}

func (self Vector2) Dot(other Vector2) efix.Fixed64 {
	return self.X.Mul(other.X).Add(self.Y.Mul(other.Y))
}

// Returns the z component of the 3D cross product, which is positive
// when other is counter-clockwise from self (with y pointing up).
func (self Vector2) Cross(other Vector2) efix.Fixed64 {
	return self.X.Mul(other.Y).Sub(self.Y.Mul(other.X))
}

func (self Vector2) LengthSquared() efix.Fixed64 {
	return self.Dot(self)
}

func (self Vector2) Length() efix.Fixed64 {
	length, _ := self.LengthSquared().Sqrt() // never negative
	return length
}

// Returns the vector scaled to length 1. The zero vector is returned
// unchanged.
func (self Vector2) Normalize() Vector2 {
	length := self.Length()
	if length.IsZero() { return self }
	x, _ := self.X.Div(length)
	y, _ := self.Y.Div(length)
	return Vector2{ X: x, Y: y }
}

func (self Vector2) Distance(other Vector2) efix.Fixed64 {
	return self.Sub(other).Length()
}

// Returns the angle of the vector in radians, in [-Pi, Pi].
func (self Vector2) Angle() efix.Fixed64 {
	return self.Y.Atan2(self.X)
}

// Returns whether the vector is inside the given [Rect].
func (self Vector2) In(rect Rect) bool {
	return rect.Min.X.LessOrEqual(self.X) && self.X.Less(rect.Max.X) &&
	       rect.Min.Y.LessOrEqual(self.Y) && self.Y.Less(rect.Max.Y)
}

// Converts the coordinates to ints, rounding them to the closest
// values, and returns them as an [image.Point].
func (self Vector2) ImagePoint() image.Point {
	return image.Pt(self.X.Round().Int(), self.Y.Round().Int())
}

// Returns the coordinates as a pair of float64s.
func (self Vector2) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns a textual representation of the vector (e.g.: "(2.5, -4)").
func (self Vector2) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}
