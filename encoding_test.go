package efix

import "bytes"
import "encoding/binary"
import "errors"
import "testing"

import "gopkg.in/yaml.v3"
import "github.com/google/go-cmp/cmp"

// Bits() must match reading the bytes of the signed raw value back as
// an unsigned integer, not a numeric conversion.
func TestBitsMatchByteReinterpretation(t *testing.T) {
	values64 := []Fixed64{Fixed64Zero, Fixed64Min, Fixed64Max, Fixed64NegOne, Fixed64Pi.Neg()}
	for i, value := range values64 {
		var buffer bytes.Buffer
		if err := binary.Write(&buffer, binary.LittleEndian, value.Raw()); err != nil { t.Fatal(err) }
		var bits uint64
		if err := binary.Read(&buffer, binary.LittleEndian, &bits); err != nil { t.Fatal(err) }
		if bits != value.Bits() {
			t.Fatalf("test #%d: expected %#x, got %#x", i, bits, value.Bits())
		}
	}

	values32 := []Fixed32{Fixed32Zero, Fixed32Min, Fixed32Max, Fixed32NegOne, Fixed32E.Neg()}
	for i, value := range values32 {
		var buffer bytes.Buffer
		if err := binary.Write(&buffer, binary.LittleEndian, value.Raw()); err != nil { t.Fatal(err) }
		var bits uint32
		if err := binary.Read(&buffer, binary.LittleEndian, &bits); err != nil { t.Fatal(err) }
		if bits != value.Bits() {
			t.Fatalf("test #%d: expected %#x, got %#x", i, bits, value.Bits())
		}
	}

	values128 := []Fixed128{Fixed128Zero, Fixed128Min, Fixed128Max, Fixed128NegOne, Fixed128Ln2.Neg()}
	for i, value := range values128 {
		rawHi, rawLo := value.Raw()
		var buffer bytes.Buffer
		if err := binary.Write(&buffer, binary.LittleEndian, rawHi); err != nil { t.Fatal(err) }
		var hi uint64
		if err := binary.Read(&buffer, binary.LittleEndian, &hi); err != nil { t.Fatal(err) }
		bitsHi, bitsLo := value.Bits()
		if hi != bitsHi || rawLo != bitsLo {
			t.Fatalf("test #%d: expected (%#x, %#x), got (%#x, %#x)", i, hi, rawLo, bitsHi, bitsLo)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	x := Fixed128Pi.Neg()
	data, err := x.MarshalBinary()
	if err != nil { t.Fatal(err) }
	if len(data) != 16 { t.Fatalf("expected 16 bytes, got %d", len(data)) }
	var back Fixed128
	if err := back.UnmarshalBinary(data); err != nil { t.Fatal(err) }
	if back != x { t.Fatalf("expected %s, got %s", x, back) }

	y := Fixed64FromFloat(-0.5)
	data, _ = y.MarshalBinary()
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x80, 0x00, 0x00, 0x00}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}

	var z Fixed32
	if err := z.UnmarshalBinary(data); !errors.Is(err, ErrBinaryLength) {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestTextAndYAML(t *testing.T) {
	type body struct {
		Mass     Fixed64  `yaml:"mass"`
		Friction Fixed32  `yaml:"friction"`
		Position Fixed128 `yaml:"position"`
		Impulses []Fixed64 `yaml:"impulses"`
	}

	input := "mass: 3.5\nfriction: -0.25\nposition: 12345678901.5\nimpulses: [1, -2.125, .5]\n"
	var decoded body
	if err := yaml.Unmarshal([]byte(input), &decoded); err != nil { t.Fatal(err) }

	want := body{
		Mass: Fixed64FromFloat(3.5),
		Friction: Fixed32FromFloat(-0.25),
		Position: Fixed128FromInt(12345678901).Add(Fixed128Half),
		Impulses: []Fixed64{Fixed64One, Fixed64FromFloat(-2.125), Fixed64Half},
	}
	if diff := cmp.Diff(want, decoded, cmp.Comparer(func(a, b Fixed64) bool { return a == b }),
		cmp.Comparer(func(a, b Fixed32) bool { return a == b }),
		cmp.Comparer(func(a, b Fixed128) bool { return a == b })); diff != "" {
		t.Fatalf("unexpected decoding (-want +got):\n%s", diff)
	}

	encoded, err := yaml.Marshal(decoded)
	if err != nil { t.Fatal(err) }
	var again body
	if err := yaml.Unmarshal(encoded, &again); err != nil { t.Fatal(err) }
	if again.Mass != decoded.Mass || again.Position != decoded.Position || again.Impulses[1] != decoded.Impulses[1] {
		t.Fatalf("yaml round trip failed:\n%s", encoded)
	}

	if err := yaml.Unmarshal([]byte("mass: 1.2.3\n"), &decoded); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestDecimal(t *testing.T) {
	x := Fixed64FromFloat(-3.0625)
	d, err := x.Decimal()
	if err != nil { t.Fatal(err) }
	if d.String() != "-3.0625" {
		t.Fatalf("expected -3.0625, got %s", d)
	}
	back, err := Fixed64FromDecimal(d)
	if err != nil { t.Fatal(err) }
	if back != x { t.Fatalf("expected %s, got %s", x, back) }

	// rounded to the decimal's precision
	pi, err := Fixed128Pi.Decimal()
	if err != nil { t.Fatal(err) }
	if pi.String() != "3.141592653589793238" {
		t.Fatalf("unexpected decimal pi %s", pi)
	}
	if _, err := Fixed32FromDecimal(d); err != nil { t.Fatal(err) }
}
