package efix

import "errors"
import "math"
import "testing"

func TestConcreteScenarios(t *testing.T) {
	// 7/2 is exactly representable
	q, err := Fixed64FromInt(7).Div(Fixed64FromInt(2))
	if err != nil { t.Fatal(err) }
	if q != Fixed64FromFloat(3.5) {
		t.Fatalf("7/2 expected 3.5, got %s", q)
	}

	v, err := ParseFixed64("3.5")
	if err != nil { t.Fatal(err) }
	if v.Raw() != 3 << 32 | 1 << 31 {
		t.Fatalf("parsing 3.5 expected raw %#x, got %#x", 3 << 32 | 1 << 31, v.Raw())
	}
	if v.String() != "3.5" {
		t.Fatalf("formatting 3.5 expected \"3.5\", got %q", v.String())
	}

	if got := Fixed64Max.Mul(Fixed64FromInt(2)); got != Fixed64Max {
		t.Fatalf("Max*2 expected to saturate, got %s", got)
	}
	if got := Fixed64Zero.Atan2(Fixed64NegOne); got != Fixed64Pi {
		t.Fatalf("Atan2(0, -1) expected Pi, got %s", got)
	}
	if got := Fixed64Zero.Cos(); got != Fixed64One {
		t.Fatalf("Cos(0) expected 1, got %s", got)
	}
	if got := Fixed64Zero.Sin(); got != Fixed64Zero {
		t.Fatalf("Sin(0) expected 0, got %s", got)
	}
	if got := Fixed64Pi.Cos(); got.Sub(Fixed64NegOne).Abs().Raw() > 4 {
		t.Fatalf("Cos(Pi) expected -1, got %s", got)
	}

	_, err = Fixed64One.Div(Fixed64Zero)
	if !errors.Is(err, ErrDivisionByZero) || !errors.Is(err, ErrDomain) {
		t.Fatalf("expected division by zero error, got %v", err)
	}
}

func TestWidthsBehaveAlike(t *testing.T) {
	tests := []struct {
		a, b float64
	}{
		{1.5, 2.25}, {-3.75, 0.5}, {100, -0.125}, {0.0625, 0.0625}, {-7, -3},
	}

	for i, test := range tests {
		a32, b32 := Fixed32FromFloat(test.a), Fixed32FromFloat(test.b)
		a64, b64 := Fixed64FromFloat(test.a), Fixed64FromFloat(test.b)
		a128, b128 := Fixed128FromFloat(test.a), Fixed128FromFloat(test.b)

		// all values involved are exact at every width
		sums := []float64{a32.Add(b32).ToFloat64(), a64.Add(b64).ToFloat64(), a128.Add(b128).ToFloat64()}
		products := []float64{a32.Mul(b32).ToFloat64(), a64.Mul(b64).ToFloat64(), a128.Mul(b128).ToFloat64()}
		for w := 0; w < 3; w++ {
			if sums[w] != test.a + test.b {
				t.Fatalf("test #%d: width #%d sum expected %v, got %v", i, w, test.a + test.b, sums[w])
			}
			if products[w] != test.a*test.b {
				t.Fatalf("test #%d: width #%d product expected %v, got %v", i, w, test.a*test.b, products[w])
			}
		}
	}
}

func TestWidthConversions(t *testing.T) {
	x := Fixed32FromFloat(-12.375)
	if x.To64().To32() != x || x.To128().To32() != x || x.To64().To128().To32() != x {
		t.Fatalf("widening and narrowing back must be lossless")
	}
	if x.To128().ToFloat64() != -12.375 || x.To64().ToFloat64() != -12.375 {
		t.Fatalf("widening changed the value")
	}

	// narrowing truncates toward negative infinity
	y := Fixed64FromRaw(-1) // -2^-32
	if got := y.To32(); got != Fixed32FromRaw(-1) {
		t.Fatalf("expected -1/65536, got %s", got)
	}
	if got := Fixed128FromRaw(0, 1).To64(); got != Fixed64Zero {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := Fixed128FromInt(5).To64(); got != Fixed64FromInt(5) {
		t.Fatalf("expected 5, got %s", got)
	}
}

func TestFloatConversions(t *testing.T) {
	tests := []float64{0, 1, -1, 0.5, -0.5, 3.25, -1000.0625, 1.0/3.0, math.Pi}
	for i, f := range tests {
		if got := Fixed128FromFloat(f).ToFloat64(); got != f {
			t.Fatalf("test #%d: 128 bit float round trip of %v got %v", i, f, got)
		}
		if got := Fixed64FromFloat(f).ToFloat64(); math.Abs(got - f) >= 1.0/(1 << 32) {
			t.Fatalf("test #%d: 64 bit float conversion of %v got %v", i, f, got)
		}
		if got := Fixed32FromFloat(float32(f)).ToFloat32(); math.Abs(float64(got) - float64(float32(f))) >= 1.0/65536 {
			t.Fatalf("test #%d: 32 bit float conversion of %v got %v", i, f, got)
		}
	}

	// truncation toward zero
	if got := Fixed128FromFloat(-math.SmallestNonzeroFloat64); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
	if got := Fixed128FromFloat(math.Inf(1)); got != Fixed128Max {
		t.Fatalf("expected max, got %s", got)
	}
	if got := Fixed128FromFloat(math.NaN()); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}

func TestRat(t *testing.T) {
	if got := Fixed32FromFloat(-2.75).Rat().String(); got != "-11/4" {
		t.Fatalf("expected -11/4, got %s", got)
	}
	if got := Fixed64Epsilon.Rat().String(); got != "1/4294967296" {
		t.Fatalf("expected 1/4294967296, got %s", got)
	}
	if got := Fixed128FromFloat(-0.5).Rat().String(); got != "-1/2" {
		t.Fatalf("expected -1/2, got %s", got)
	}
}

func TestIntAndFract(t *testing.T) {
	tests := []struct {
		in    float64
		floor int
		fract float64
	}{
		{0, 0, 0}, {2.5, 2, 0.5}, {-2.5, -3, 0.5}, {-0.25, -1, 0.75}, {7, 7, 0},
	}
	for i, test := range tests {
		x32, x64, x128 := Fixed32FromFloat(test.in), Fixed64FromFloat(test.in), Fixed128FromFloat(test.in)
		if x32.Int() != test.floor || x64.Int() != test.floor || x128.Int() != int64(test.floor) {
			t.Fatalf("test #%d: in %v expected int part %d", i, test.in, test.floor)
		}
		if x32.Fract().ToFloat64() != test.fract || x64.Fract().ToFloat64() != test.fract || x128.Fract().ToFloat64() != test.fract {
			t.Fatalf("test #%d: in %v expected fract %v", i, test.in, test.fract)
		}
	}
}

func TestTryParse(t *testing.T) {
	if _, ok := TryParseFixed32("1.2.3"); ok {
		t.Fatal("expected failure")
	}
	if v, ok := TryParseFixed128("-0.5"); !ok || v != Fixed128Half.Neg() {
		t.Fatalf("expected -0.5, got %s (%v)", v, ok)
	}
	_, err := ParseFixed64("abc")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestDeterministicSequence(t *testing.T) {
	// a small simulation step applied many times must always land on
	// the same raw value
	run := func() Fixed64 {
		pos, vel := Fixed64Zero, Fixed64FromFloat(0.75)
		dt := Fixed64FromFloat(1.0/60.0)
		for i := 0; i < 600; i++ {
			angle := pos.Mul(Fixed64FromFloat(0.1))
			vel = vel.Add(angle.Sin().Mul(dt))
			pos = pos.Add(vel.Mul(dt))
		}
		return pos
	}
	first := run()
	for i := 0; i < 3; i++ {
		if again := run(); again != first {
			t.Fatalf("run #%d: expected %s, got %s", i, first, again)
		}
	}
}
