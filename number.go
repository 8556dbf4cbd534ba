package efix

import "fmt"

// Number is the set of operations shared by all the fixed point widths,
// which allows writing code that's generic over them:
//   func Average[T efix.Number[T]](w efix.Width[T], values ...T) (T, error) {
//       n, _ := w.Parse(strconv.Itoa(len(values)))
//       return efix.Sum(w, values...).Div(n)
//   }
type Number[T any] interface {
	comparable
	fmt.Stringer

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) (T, error)
	Neg() T
	Abs() T
	Sign() int
	Cmp(T) int
	Floor() T
	Ceil() T
	Round() T
	Sqrt() (T, error)
	ToFloat64() float64
}

// Real extends [Number] with the transcendental functions.
type Real[T any] interface {
	Number[T]

	Log2() (T, error)
	Ln() (T, error)
	Exp2() T
	Exp() T
	Pow(T) (T, error)
	Sin() T
	Cos() T
	Tan() T
	SinCos() (T, T)
	Atan() T
	Atan2(T) T
	Acos() (T, error)
}

func implementsReal[T Real[T]]() {}

var _ = implementsReal[Fixed32]
var _ = implementsReal[Fixed64]
var _ = implementsReal[Fixed128]

// Width describes one of the fixed point types.
type Width[T Number[T]] struct {
	Name string
	Bits int // total bits
	FractionBits int

	Zero T
	One T
	Half T
	Epsilon T
	Min T
	Max T
	Pi T
	E T

	Parse func(string) (T, error)
	FromInt func(int64) T
	FromFloat func(float64) T
}

var Width32 = Width[Fixed32]{
	Name: "Fixed32", Bits: 32, FractionBits: 16,
	Zero: Fixed32Zero, One: Fixed32One, Half: Fixed32Half, Epsilon: Fixed32Epsilon,
	Min: Fixed32Min, Max: Fixed32Max, Pi: Fixed32Pi, E: Fixed32E,
	Parse: ParseFixed32,
	FromInt: Fixed32FromInt[int64],
	FromFloat: Fixed32FromFloat[float64],
}

var Width64 = Width[Fixed64]{
	Name: "Fixed64", Bits: 64, FractionBits: 32,
	Zero: Fixed64Zero, One: Fixed64One, Half: Fixed64Half, Epsilon: Fixed64Epsilon,
	Min: Fixed64Min, Max: Fixed64Max, Pi: Fixed64Pi, E: Fixed64E,
	Parse: ParseFixed64,
	FromInt: Fixed64FromInt[int64],
	FromFloat: Fixed64FromFloat[float64],
}

var Width128 = Width[Fixed128]{
	Name: "Fixed128", Bits: 128, FractionBits: 64,
	Zero: Fixed128Zero, One: Fixed128One, Half: Fixed128Half, Epsilon: Fixed128Epsilon,
	Min: Fixed128Min, Max: Fixed128Max, Pi: Fixed128Pi, E: Fixed128E,
	Parse: ParseFixed128,
	FromInt: Fixed128FromInt[int64],
	FromFloat: Fixed128FromFloat[float64],
}

// Returns the smallest of the given values.
func Min[T Number[T]](first T, rest ...T) T {
	for _, value := range rest {
		if value.Cmp(first) < 0 { first = value }
	}
	return first
}

// Returns the largest of the given values.
func Max[T Number[T]](first T, rest ...T) T {
	for _, value := range rest {
		if value.Cmp(first) > 0 { first = value }
	}
	return first
}

// Returns value limited to the [lo, hi] range.
func Clamp[T Number[T]](value, lo, hi T) T {
	if value.Cmp(lo) < 0 { return lo }
	if value.Cmp(hi) > 0 { return hi }
	return value
}

// Returns the saturating sum of the values. Notice that saturation
// makes the result depend on the order of the values when intermediate
// sums go out of range.
func Sum[T Number[T]](width Width[T], values ...T) T {
	sum := width.Zero
	for _, value := range values { sum = sum.Add(value) }
	return sum
}

// Linear interpolation between a and b: a + (b - a)*t.
func Lerp[T Number[T]](a, b, t T) T {
	return a.Add(b.Sub(a).Mul(t))
}
