package efix

import "math"
import "math/big"

import "golang.org/x/exp/constraints"

import "github.com/tinne26/efix/internal/kernel"
import "github.com/tinne26/efix/internal/word"

// Fixed128 is a 64.64 fixed point value: 64 bits for the integer part,
// including the sign, and 64 bits for the fractional part. The raw
// value is a 128 bit two's complement integer split in a signed high
// half and an unsigned low half.
type Fixed128 struct {
	hi int64
	lo uint64
}

var wide = kernel.Wide

func (self Fixed128) w() word.U128 { return word.U128{ Hi: uint64(self.hi), Lo: self.lo } }
func f128(w word.U128) Fixed128 { return Fixed128{ int64(w.Hi), w.Lo } }

// Fixed128FromRaw creates a Fixed128 from the two halves of its raw
// representation. The value is hi + lo/2^64.
func Fixed128FromRaw(hi int64, lo uint64) Fixed128 { return Fixed128{ hi, lo } }

// Fixed128FromInt converts an integer to Fixed128. Unsigned values
// above [math.MaxInt64] wrap around.
func Fixed128FromInt[I constraints.Integer](n I) Fixed128 {
	return Fixed128{ hi: int64(n) }
}

// Fixed128FromFloat converts a float to Fixed128, rounding toward zero.
// The conversion is exact for all float values in range. NaN converts
// to zero and infinities saturate; other out of range values wrap.
func Fixed128FromFloat[F constraints.Float](f F) Fixed128 {
	value := float64(f)
	switch {
	case math.IsNaN(value): return Fixed128{}
	case math.IsInf(value,  1): return Fixed128Max
	case math.IsInf(value, -1): return Fixed128Min
	}

	scaled := new(big.Float).SetFloat64(value)
	scaled.SetMantExp(scaled, 64)
	raw, _ := scaled.Int(nil) // truncates toward zero
	return fixed128FromBig(raw)
}

// fixed128FromBig keeps the low 128 bits of a two's complement integer.
func fixed128FromBig(raw *big.Int) Fixed128 {
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	u := new(big.Int).Mod(raw, mod)
	lo := new(big.Int).And(u, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()
	return Fixed128{ int64(hi), lo }
}

// ParseFixed128 parses a decimal string like "-12.375". See [ErrSyntax].
func ParseFixed128(text string) (Fixed128, error) {
	w, err := kernel.Parse(wide, text)
	return f128(w), err
}

// TryParseFixed128 is like [ParseFixed128], but reports failure with a
// boolean and a zero value instead of an error.
func TryParseFixed128(text string) (Fixed128, bool) {
	w, err := kernel.Parse(wide, text)
	if err != nil { return Fixed128{}, false }
	return f128(w), true
}

// Returns the two halves of the raw representation.
func (self Fixed128) Raw() (hi int64, lo uint64) { return self.hi, self.lo }

// Returns the raw bits as two unsigned halves.
func (self Fixed128) Bits() (hi, lo uint64) { return uint64(self.hi), self.lo }

func (self Fixed128) IsZero() bool { return self.hi == 0 && self.lo == 0 }
func (self Fixed128) Sign() int { return kernel.Sign(self.w()) }
func (self Fixed128) Cmp(other Fixed128) int { return kernel.Cmp(self.w(), other.w()) }
func (self Fixed128) Less(other Fixed128) bool { return self.Cmp(other) < 0 }
func (self Fixed128) LessOrEqual(other Fixed128) bool { return self.Cmp(other) <= 0 }

func (self Fixed128) Add(other Fixed128) Fixed128 { return f128(kernel.Add(wide, self.w(), other.w())) }
func (self Fixed128) Sub(other Fixed128) Fixed128 { return f128(kernel.Sub(wide, self.w(), other.w())) }
func (self Fixed128) Mul(other Fixed128) Fixed128 { return f128(kernel.Mul(wide, self.w(), other.w())) }

func (self Fixed128) Div(other Fixed128) (Fixed128, error) {
	w, err := kernel.Div(wide, self.w(), other.w())
	return f128(w), err
}

func (self Fixed128) Neg() Fixed128 { return f128(kernel.Neg(wide, self.w())) }
func (self Fixed128) Abs() Fixed128 { return f128(kernel.Abs(wide, self.w())) }
func (self Fixed128) Floor() Fixed128 { return Fixed128{ hi: self.hi } }
func (self Fixed128) Ceil() Fixed128 { return f128(kernel.Ceil(wide, self.w())) }
func (self Fixed128) Round() Fixed128 { return f128(kernel.Round(wide, self.w())) }
func (self Fixed128) Fract() Fixed128 { return Fixed128{ lo: self.lo } }

func (self Fixed128) Sqrt() (Fixed128, error) {
	w, err := kernel.Sqrt(wide, self.w())
	return f128(w), err
}

func (self Fixed128) Log2() (Fixed128, error) {
	w, err := kernel.Log2(wide, self.w())
	return f128(w), err
}

func (self Fixed128) Ln() (Fixed128, error) {
	w, err := kernel.Ln(wide, self.w())
	return f128(w), err
}

func (self Fixed128) Exp2() Fixed128 { return f128(kernel.Pow2(wide, self.w())) }
func (self Fixed128) Exp() Fixed128 { return f128(kernel.Exp(wide, self.w())) }

func (self Fixed128) Pow(exponent Fixed128) (Fixed128, error) {
	w, err := kernel.Pow(wide, self.w(), exponent.w())
	return f128(w), err
}

func (self Fixed128) Sin() Fixed128 { return f128(kernel.Sin(wide, self.w())) }
func (self Fixed128) Cos() Fixed128 { return f128(kernel.Cos(wide, self.w())) }
func (self Fixed128) Tan() Fixed128 { return f128(kernel.Tan(wide, self.w())) }

func (self Fixed128) SinCos() (sin, cos Fixed128) {
	s, c := kernel.SinCos(wide, self.w())
	return f128(s), f128(c)
}

func (self Fixed128) Atan() Fixed128 { return f128(kernel.Atan(wide, self.w())) }
func (self Fixed128) Atan2(x Fixed128) Fixed128 { return f128(kernel.Atan2(wide, self.w(), x.w())) }

func (self Fixed128) Acos() (Fixed128, error) {
	w, err := kernel.Acos(wide, self.w())
	return f128(w), err
}

// Formats the value in decimal notation, with up to 20 fractional
// digits. The digits are truncated, not rounded.
func (self Fixed128) String() string { return kernel.Format(wide, self.w()) }

// Returns the exact value as a rational number.
func (self Fixed128) Rat() *big.Rat {
	num := new(big.Int).SetInt64(self.hi)
	num.Lsh(num, 64)
	num.Add(num, new(big.Int).SetUint64(self.lo))
	return new(big.Rat).SetFrac(num, new(big.Int).Lsh(big.NewInt(1), 64))
}

// Returns the closest float64 to the value.
func (self Fixed128) ToFloat64() float64 {
	f, _ := self.Rat().Float64()
	return f
}

// Returns the closest float32 to the value.
func (self Fixed128) ToFloat32() float32 {
	f, _ := self.Rat().Float32()
	return f
}

// Returns the floor of the value as an integer.
func (self Fixed128) Int() int64 { return self.hi }

// Truncates the value to 16 fraction bits. The integer part wraps
// around if it doesn't fit in 16 bits.
func (self Fixed128) To32() Fixed32 { return Fixed32{ int32(self.w().Sar(48).Int64()) } }

// Truncates the value to 32 fraction bits. The integer part wraps
// around if it doesn't fit in 32 bits.
func (self Fixed128) To64() Fixed64 { return Fixed64{ self.w().Sar(32).Int64() } }
