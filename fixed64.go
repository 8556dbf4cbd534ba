package efix

import "math"
import "math/big"

import "golang.org/x/exp/constraints"

import "github.com/tinne26/efix/internal/kernel"
import "github.com/tinne26/efix/internal/word"

// Fixed64 is a 32.32 fixed point value: 32 bits for the integer part,
// including the sign, and 32 bits for the fractional part. The
// represented value is raw/2^32.
//
// The zero value is 0. Values can be compared with == and used as map
// keys. Use [Fixed64.Cmp] or [Fixed64.Less] for ordering.
type Fixed64 struct {
	raw int64
}

var std = kernel.Standard

func (self Fixed64) w() word.U64 { return word.U64(self.raw) }
func f64(w word.U64) Fixed64 { return Fixed64{ int64(w) } }

// Fixed64FromRaw creates a Fixed64 from its raw representation.
func Fixed64FromRaw(raw int64) Fixed64 { return Fixed64{ raw } }

// Fixed64FromInt converts an integer to Fixed64. If the value is out of
// the representable integer range ([-2^31, 2^31 - 1]) it wraps around.
func Fixed64FromInt[I constraints.Integer](n I) Fixed64 {
	return Fixed64{ int64(n) << 32 }
}

// Fixed64FromFloat converts a float to Fixed64, rounding toward zero.
// NaNs, infinities and overflows are not accounted for.
func Fixed64FromFloat[F constraints.Float](f F) Fixed64 {
	return Fixed64{ int64(math.Ldexp(float64(f), 32)) }
}

// ParseFixed64 parses a decimal string like "-12.375". See [ErrSyntax].
func ParseFixed64(text string) (Fixed64, error) {
	w, err := kernel.Parse(std, text)
	return f64(w), err
}

// TryParseFixed64 is like [ParseFixed64], but reports failure with a
// boolean and a zero value instead of an error.
func TryParseFixed64(text string) (Fixed64, bool) {
	w, err := kernel.Parse(std, text)
	if err != nil { return Fixed64{}, false }
	return f64(w), true
}

// Returns the raw representation of the value.
func (self Fixed64) Raw() int64 { return self.raw }

// Returns the raw bits of the value as an unsigned integer.
func (self Fixed64) Bits() uint64 { return uint64(self.raw) }

func (self Fixed64) IsZero() bool { return self.raw == 0 }

// Returns -1, 0 or +1 depending on the sign of the value.
func (self Fixed64) Sign() int { return kernel.Sign(self.w()) }

// Returns -1 if self < other, 0 if self == other and +1 if self > other.
func (self Fixed64) Cmp(other Fixed64) int { return kernel.Cmp(self.w(), other.w()) }
func (self Fixed64) Less(other Fixed64) bool { return self.raw < other.raw }
func (self Fixed64) LessOrEqual(other Fixed64) bool { return self.raw <= other.raw }

// Saturating addition.
func (self Fixed64) Add(other Fixed64) Fixed64 { return f64(kernel.Add(std, self.w(), other.w())) }

// Saturating subtraction.
func (self Fixed64) Sub(other Fixed64) Fixed64 { return f64(kernel.Sub(std, self.w(), other.w())) }

// Saturating multiplication. The result is truncated toward negative
// infinity.
func (self Fixed64) Mul(other Fixed64) Fixed64 { return f64(kernel.Mul(std, self.w(), other.w())) }

// Saturating division, rounded to nearest. Dividing by zero returns
// [ErrDivisionByZero].
func (self Fixed64) Div(other Fixed64) (Fixed64, error) {
	w, err := kernel.Div(std, self.w(), other.w())
	return f64(w), err
}

// Returns -self. The negation of [Fixed64Min] is [Fixed64Max].
func (self Fixed64) Neg() Fixed64 { return f64(kernel.Neg(std, self.w())) }

// Returns |self|. The absolute value of [Fixed64Min] is [Fixed64Max].
func (self Fixed64) Abs() Fixed64 { return f64(kernel.Abs(std, self.w())) }

func (self Fixed64) Floor() Fixed64 { return f64(kernel.Floor(std, self.w())) }
func (self Fixed64) Ceil() Fixed64 { return f64(kernel.Ceil(std, self.w())) }

// Rounds to the closest integer, with ties to even.
func (self Fixed64) Round() Fixed64 { return f64(kernel.Round(std, self.w())) }

// Returns self - self.Floor(), which is never negative.
func (self Fixed64) Fract() Fixed64 { return Fixed64{ self.raw & 0xFFFFFFFF } }

func (self Fixed64) Sqrt() (Fixed64, error) {
	w, err := kernel.Sqrt(std, self.w())
	return f64(w), err
}

func (self Fixed64) Log2() (Fixed64, error) {
	w, err := kernel.Log2(std, self.w())
	return f64(w), err
}

func (self Fixed64) Ln() (Fixed64, error) {
	w, err := kernel.Ln(std, self.w())
	return f64(w), err
}

// Returns 2^self.
func (self Fixed64) Exp2() Fixed64 { return f64(kernel.Pow2(std, self.w())) }

// Returns e^self.
func (self Fixed64) Exp() Fixed64 { return f64(kernel.Exp(std, self.w())) }

// Returns self^exponent. Negative bases with non-integer exponents
// return zero.
func (self Fixed64) Pow(exponent Fixed64) (Fixed64, error) {
	w, err := kernel.Pow(std, self.w(), exponent.w())
	return f64(w), err
}

func (self Fixed64) Sin() Fixed64 { return f64(kernel.Sin(std, self.w())) }
func (self Fixed64) Cos() Fixed64 { return f64(kernel.Cos(std, self.w())) }
func (self Fixed64) Tan() Fixed64 { return f64(kernel.Tan(std, self.w())) }

func (self Fixed64) SinCos() (sin, cos Fixed64) {
	s, c := kernel.SinCos(std, self.w())
	return f64(s), f64(c)
}

func (self Fixed64) Atan() Fixed64 { return f64(kernel.Atan(std, self.w())) }

// Returns the angle of (x, y), with self as y. The approximation error
// is up to about 0.005 radians.
func (self Fixed64) Atan2(x Fixed64) Fixed64 { return f64(kernel.Atan2(std, self.w(), x.w())) }

func (self Fixed64) Acos() (Fixed64, error) {
	w, err := kernel.Acos(std, self.w())
	return f64(w), err
}

// Formats the value in decimal notation, with up to 10 fractional
// digits. The digits are truncated, not rounded.
func (self Fixed64) String() string { return kernel.Format(std, self.w()) }

func (self Fixed64) ToFloat64() float64 { return float64(self.raw)/(1 << 32) }
func (self Fixed64) ToFloat32() float32 { return float32(self.ToFloat64()) }

// Returns the floor of the value as an integer.
func (self Fixed64) Int() int { return int(self.raw >> 32) }

// Returns the exact value as a rational number.
func (self Fixed64) Rat() *big.Rat { return big.NewRat(self.raw, 1 << 32) }

// Truncates the value to 16 fraction bits. The integer part wraps
// around if it doesn't fit in 16 bits.
func (self Fixed64) To32() Fixed32 { return Fixed32{ int32(self.raw >> 16) } }

// Widens the value to Fixed128. The conversion is exact.
func (self Fixed64) To128() Fixed128 {
	return f128(word.U128{}.FromInt64(self.raw).Lsh(32))
}
