package efix

import "math"
import "math/big"

import "golang.org/x/exp/constraints"

import "github.com/tinne26/efix/internal/kernel"
import "github.com/tinne26/efix/internal/word"

// Fixed32 is a 16.16 fixed point value: 16 bits for the integer part,
// including the sign, and 16 bits for the fractional part. The
// represented value is raw/2^16.
//
// Fixed32 has the same layout as the classic 16.16 format used by font
// and graphics libraries, but its operations saturate instead of
// wrapping around.
type Fixed32 struct {
	raw int32
}

var narrow = kernel.Narrow

func (self Fixed32) w() word.U32 { return word.U32(self.raw) }
func f32(w word.U32) Fixed32 { return Fixed32{ int32(w) } }

// Fixed32FromRaw creates a Fixed32 from its raw representation.
func Fixed32FromRaw(raw int32) Fixed32 { return Fixed32{ raw } }

// Fixed32FromInt converts an integer to Fixed32. If the value is out of
// the representable integer range ([-32768, 32767]) it wraps around.
func Fixed32FromInt[I constraints.Integer](n I) Fixed32 {
	return Fixed32{ int32(n) << 16 }
}

// Fixed32FromFloat converts a float to Fixed32, rounding toward zero.
// NaNs, infinities and overflows are not accounted for.
func Fixed32FromFloat[F constraints.Float](f F) Fixed32 {
	return Fixed32{ int32(math.Ldexp(float64(f), 16)) }
}

// ParseFixed32 parses a decimal string like "-12.375". See [ErrSyntax].
func ParseFixed32(text string) (Fixed32, error) {
	w, err := kernel.Parse(narrow, text)
	return f32(w), err
}

// TryParseFixed32 is like [ParseFixed32], but reports failure with a
// boolean and a zero value instead of an error.
func TryParseFixed32(text string) (Fixed32, bool) {
	w, err := kernel.Parse(narrow, text)
	if err != nil { return Fixed32{}, false }
	return f32(w), true
}

func (self Fixed32) Raw() int32 { return self.raw }
func (self Fixed32) Bits() uint32 { return uint32(self.raw) }
func (self Fixed32) IsZero() bool { return self.raw == 0 }
func (self Fixed32) Sign() int { return kernel.Sign(self.w()) }
func (self Fixed32) Cmp(other Fixed32) int { return kernel.Cmp(self.w(), other.w()) }
func (self Fixed32) Less(other Fixed32) bool { return self.raw < other.raw }
func (self Fixed32) LessOrEqual(other Fixed32) bool { return self.raw <= other.raw }

func (self Fixed32) Add(other Fixed32) Fixed32 { return f32(kernel.Add(narrow, self.w(), other.w())) }
func (self Fixed32) Sub(other Fixed32) Fixed32 { return f32(kernel.Sub(narrow, self.w(), other.w())) }
func (self Fixed32) Mul(other Fixed32) Fixed32 { return f32(kernel.Mul(narrow, self.w(), other.w())) }

func (self Fixed32) Div(other Fixed32) (Fixed32, error) {
	w, err := kernel.Div(narrow, self.w(), other.w())
	return f32(w), err
}

func (self Fixed32) Neg() Fixed32 { return f32(kernel.Neg(narrow, self.w())) }
func (self Fixed32) Abs() Fixed32 { return f32(kernel.Abs(narrow, self.w())) }
func (self Fixed32) Floor() Fixed32 { return f32(kernel.Floor(narrow, self.w())) }
func (self Fixed32) Ceil() Fixed32 { return f32(kernel.Ceil(narrow, self.w())) }
func (self Fixed32) Round() Fixed32 { return f32(kernel.Round(narrow, self.w())) }
func (self Fixed32) Fract() Fixed32 { return Fixed32{ self.raw & 0xFFFF } }

func (self Fixed32) Sqrt() (Fixed32, error) {
	w, err := kernel.Sqrt(narrow, self.w())
	return f32(w), err
}

func (self Fixed32) Log2() (Fixed32, error) {
	w, err := kernel.Log2(narrow, self.w())
	return f32(w), err
}

func (self Fixed32) Ln() (Fixed32, error) {
	w, err := kernel.Ln(narrow, self.w())
	return f32(w), err
}

func (self Fixed32) Exp2() Fixed32 { return f32(kernel.Pow2(narrow, self.w())) }
func (self Fixed32) Exp() Fixed32 { return f32(kernel.Exp(narrow, self.w())) }

func (self Fixed32) Pow(exponent Fixed32) (Fixed32, error) {
	w, err := kernel.Pow(narrow, self.w(), exponent.w())
	return f32(w), err
}

func (self Fixed32) Sin() Fixed32 { return f32(kernel.Sin(narrow, self.w())) }
func (self Fixed32) Cos() Fixed32 { return f32(kernel.Cos(narrow, self.w())) }
func (self Fixed32) Tan() Fixed32 { return f32(kernel.Tan(narrow, self.w())) }

func (self Fixed32) SinCos() (sin, cos Fixed32) {
	s, c := kernel.SinCos(narrow, self.w())
	return f32(s), f32(c)
}

func (self Fixed32) Atan() Fixed32 { return f32(kernel.Atan(narrow, self.w())) }
func (self Fixed32) Atan2(x Fixed32) Fixed32 { return f32(kernel.Atan2(narrow, self.w(), x.w())) }

func (self Fixed32) Acos() (Fixed32, error) {
	w, err := kernel.Acos(narrow, self.w())
	return f32(w), err
}

func (self Fixed32) String() string { return kernel.Format(narrow, self.w()) }

func (self Fixed32) ToFloat64() float64 { return float64(self.raw)/65536.0 }
func (self Fixed32) ToFloat32() float32 { return float32(self.raw)/65536.0 }
func (self Fixed32) Int() int { return int(self.raw >> 16) }
func (self Fixed32) Rat() *big.Rat { return big.NewRat(int64(self.raw), 1 << 16) }

// Widens the value to Fixed64. The conversion is exact.
func (self Fixed32) To64() Fixed64 { return Fixed64{ int64(self.raw) << 16 } }

// Widens the value to Fixed128. The conversion is exact.
func (self Fixed32) To128() Fixed128 {
	return f128(word.U128{}.FromInt64(int64(self.raw)).Lsh(48))
}
