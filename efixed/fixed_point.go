// efixed is a utility subpackage containing conversions between the
// efix types and the fixed point types of [golang.org/x/image/math/fixed],
// which are used by font rasterizers and vector graphics packages.
//
// Conversions toward coarser types round to the closest value, with
// ties rounded up. Conversions that can't fit the value in the result
// panic, like the other helpers for x/image fixed values usually do.
package efixed

import "strconv"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/efix"
import "github.com/tinne26/efix/geom"

// Converts a Fixed32 to the closest fixed.Int26_6, rounding half up.
// All Fixed32 values are in range.
func ToInt26_6(value efix.Fixed32) fixed.Int26_6 {
	return fixed.Int26_6((int64(value.Raw()) + 512) >> 10)
}

// Converts a fixed.Int26_6 to Fixed32. The conversion is exact, but the
// function will panic if the value is out of the Fixed32 range.
func FromInt26_6(value fixed.Int26_6) efix.Fixed32 {
	if value > 0x1FFFFF || value < -0x200000 {
		given := strconv.FormatFloat(float64(value)/64.0, 'f', -1, 64)
		panic("can't convert " + given + " to efix.Fixed32, the representable range is [-32768, 32768)")
	}
	return efix.Fixed32FromRaw(int32(value) << 10)
}

// Converts a Fixed64 to the closest fixed.Int52_12, rounding half up.
// All Fixed64 values are in range.
func ToInt52_12(value efix.Fixed64) fixed.Int52_12 {
	raw := value.Raw()
	return fixed.Int52_12((raw >> 20) + ((raw >> 19) & 1))
}

// Converts a fixed.Int52_12 to Fixed64. The conversion is exact, but the
// function will panic if the value is out of the Fixed64 range.
func FromInt52_12(value fixed.Int52_12) efix.Fixed64 {
	if value > 0x7FFFFFFFFFF || value < -0x80000000000 {
		given := strconv.FormatFloat(float64(value)/4096.0, 'f', -1, 64)
		panic("can't convert " + given + " to efix.Fixed64, the representable range is [-2147483648, 2147483648)")
	}
	return efix.Fixed64FromRaw(int64(value) << 20)
}

// Converts a Fixed64 to the closest fixed.Int26_6, rounding half up.
// The function will panic if the value is out of the fixed.Int26_6
// range.
func Fixed64ToInt26_6(value efix.Fixed64) fixed.Int26_6 {
	raw := value.Raw()
	rounded := (raw >> 26) + ((raw >> 25) & 1)
	if rounded > 0x7FFFFFFF || rounded < -0x80000000 {
		panic("can't convert " + value.String() + " to fixed.Int26_6, the representable range is [-33554432, 33554432)")
	}
	return fixed.Int26_6(rounded)
}

func ToPoint52_12(vector geom.Vector2) fixed.Point52_12 {
	return fixed.Point52_12{ X: ToInt52_12(vector.X), Y: ToInt52_12(vector.Y) }
}

func FromPoint52_12(point fixed.Point52_12) geom.Vector2 {
	return geom.Vector2{ X: FromInt52_12(point.X), Y: FromInt52_12(point.Y) }
}

func ToPoint26_6(vector geom.Vector2) fixed.Point26_6 {
	return fixed.Point26_6{ X: Fixed64ToInt26_6(vector.X), Y: Fixed64ToInt26_6(vector.Y) }
}

func ToRectangle52_12(rect geom.Rect) fixed.Rectangle52_12 {
	return fixed.Rectangle52_12{ Min: ToPoint52_12(rect.Min), Max: ToPoint52_12(rect.Max) }
}

func FromRectangle52_12(rect fixed.Rectangle52_12) geom.Rect {
	return geom.Rect{ Min: FromPoint52_12(rect.Min), Max: FromPoint52_12(rect.Max) }
}
