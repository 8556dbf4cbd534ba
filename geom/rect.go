package geom

import "image"

import "github.com/tinne26/efix"

// A pair of [Vector2] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle. The behavior for malformed rectangles
// is undefined.
type Rect struct {
	Min Vector2
	Max Vector2
}

// Creates a rect from a set of four integers.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return Rect{ Min: IntsToVector(minX, minY), Max: IntsToVector(maxX, maxY) }
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return IntsToRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// Converts the rect coordinates to ints and returns them as an
// [image.Rectangle]. The returned rectangle always contains the
// original one.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.Floor().Int(), self.Min.Y.Floor().Int(),
		self.Max.X.Ceil().Int(), self.Max.Y.Ceil().Int(),
	)
}

func (self Rect) Width() efix.Fixed64 { return self.Max.X.Sub(self.Min.X) }
func (self Rect) Height() efix.Fixed64 { return self.Max.Y.Sub(self.Min.Y) }

// Utility method equivalent to ([Rect.Width](), [Rect.Height]()).
func (self Rect) Size() (width, height efix.Fixed64) {
	return self.Width(), self.Height()
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return !self.Min.X.Less(self.Max.X) || !self.Min.Y.Less(self.Max.Y)
}

// Returns whether the rect contains the given point or not.
//
// Remember that point == Rect.Min is included, but point == Rect.Max
// is not.
func (self Rect) Contains(point Vector2) bool {
	return point.In(self)
}

// Returns the largest rect contained by both self and other. If the
// two rects don't overlap, the zero rect is returned.
func (self Rect) Intersect(other Rect) Rect {
	result := Rect{
		Min: Vector2{ X: efix.Max(self.Min.X, other.Min.X), Y: efix.Max(self.Min.Y, other.Min.Y) },
		Max: Vector2{ X: efix.Min(self.Max.X, other.Max.X), Y: efix.Min(self.Max.Y, other.Max.Y) },
	}
	if result.Empty() { return Rect{} }
	return result
}

// Returns the smallest rect containing both self and other. Empty
// rects are ignored.
func (self Rect) Union(other Rect) Rect {
	if self.Empty() { return other }
	if other.Empty() { return self }
	return Rect{
		Min: Vector2{ X: efix.Min(self.Min.X, other.Min.X), Y: efix.Min(self.Min.Y, other.Min.Y) },
		Max: Vector2{ X: efix.Max(self.Max.X, other.Max.X), Y: efix.Max(self.Max.Y, other.Max.Y) },
	}
}

// Returns the result of applying the given paddings to each
// side of the rect. In other words, the rect's width after the
// padding is increased by horzPad*2 (likewise for the height
// with vertPad*2).
func (self Rect) Pad(horzPad, vertPad efix.Fixed64) Rect {
	pad := Vector2{ X: horzPad, Y: vertPad }
	return Rect{ Min: self.Min.Sub(pad), Max: self.Max.Add(pad) }
}

// Returns the result of translating the rect by the given offset.
func (self Rect) Translate(offset Vector2) Rect {
	return Rect{ Min: self.Min.Add(offset), Max: self.Max.Add(offset) }
}

// Returns the center point of the rect.
func (self Rect) Center() Vector2 {
	return Vector2{
		X: self.Min.X.Add(self.Width().Mul(efix.Fixed64Half)),
		Y: self.Min.Y.Add(self.Height().Mul(efix.Fixed64Half)),
	}
}

// Returns the result of translating the rect so its center
// becomes aligned to the given point.
func (self Rect) CenteredAt(point Vector2) Rect {
	return self.Translate(point.Sub(self.Center()))
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
