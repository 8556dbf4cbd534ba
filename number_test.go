package efix

import "math"
import "testing"

func average[T Number[T]](width Width[T], values ...T) (T, error) {
	return Sum(width, values...).Div(width.FromInt(int64(len(values))))
}

func hypot[T Real[T]](x, y T) T {
	h, _ := x.Mul(x).Add(y.Mul(y)).Sqrt()
	return h
}

func TestGenericHelpers(t *testing.T) {
	testGenericHelpers(t, Width32)
	testGenericHelpers(t, Width64)
	testGenericHelpers(t, Width128)
}

func testGenericHelpers[T Real[T]](t *testing.T, width Width[T]) {
	one, two := width.One, width.FromInt(2)
	three, four := width.FromInt(3), width.FromInt(4)

	avg, err := average(width, one, two, three, four)
	if err != nil { t.Fatal(err) }
	if avg != width.FromFloat(2.5) {
		t.Fatalf("%s: average expected 2.5, got %s", width.Name, avg)
	}
	if got := hypot(three, four); got != width.FromInt(5) {
		t.Fatalf("%s: hypot expected 5, got %s", width.Name, got)
	}
	if got := Min(three, one, four); got != one {
		t.Fatalf("%s: min expected 1, got %s", width.Name, got)
	}
	if got := Max(three, one.Neg(), four, two); got != four {
		t.Fatalf("%s: max expected 4, got %s", width.Name, got)
	}
	if got := Clamp(width.Max, width.Zero, two); got != two {
		t.Fatalf("%s: clamp expected 2, got %s", width.Name, got)
	}
	if got := Clamp(width.Min, width.Zero, two); got != width.Zero {
		t.Fatalf("%s: clamp expected 0, got %s", width.Name, got)
	}
	if got := Lerp(two, four, width.Half); got != three {
		t.Fatalf("%s: lerp expected 3, got %s", width.Name, got)
	}
	if got := Sum(width, width.Max, one, one.Neg()); got != width.Max.Sub(one) {
		t.Fatalf("%s: saturated sum expected Max - 1, got %s", width.Name, got)
	}

	parsed, err := width.Parse("-1.5")
	if err != nil { t.Fatal(err) }
	if parsed != width.FromFloat(-1.5) {
		t.Fatalf("%s: parse expected -1.5, got %s", width.Name, parsed)
	}
	if width.Epsilon.ToFloat64() != math.Ldexp(1, -width.FractionBits) {
		t.Fatalf("%s: unexpected epsilon %v", width.Name, width.Epsilon.ToFloat64())
	}
}
