// Package kernel implements the fixed point algorithms shared by all
// widths. Every function is generic over the raw word and receives the
// width's [Params], so the three formats run exactly the same code.
//
// Words hold two's complement bit patterns; "signed" comparisons and
// shifts are explicit through the word methods.
package kernel

import "github.com/tinne26/efix/internal/word"

// Params holds the precomputed raw encodings and the tuning constants
// of one fixed point width. Fraction bits are always half the word.
type Params[W word.Word[W]] struct {
	Frac uint

	Zero, One, Two, Half, NegOne, Epsilon W
	Min, Max W
	FracMask, AllOnes W

	Pi, PiOver2, PiOver4, Tau W
	E, Ln2, Log2E W
	Log2Max, Log2Min W
	AtanK W // 0.28, empirical constant of the Atan2 approximation

	TrigTerms    int // Taylor terms for cos/sin on [0, Pi/4]
	FormatDigits int // max fractional digits when formatting
	ParseDigits  int // fractional digits considered when parsing
}

// Raw encodings of the transcendental constants at a given width,
// rounded to nearest.
type constants[W any] struct {
	pi, piOver2, tau, e, ln2, log2e, atanK W
}

func newParams[W word.Word[W]](c constants[W], trigTerms, formatDigits int) *Params[W] {
	var z W
	width := z.Width()
	frac := width/2
	one := z.FromUint64(1).Lsh(frac)
	intBits := int64(width - frac)

	return &Params[W]{
		Frac: frac,
		Zero: z,
		One: one,
		Two: one.Lsh(1),
		Half: one.Rsh(1),
		NegOne: z.Sub(one),
		Epsilon: z.FromUint64(1),
		Min: z.FromUint64(1).Lsh(width - 1),
		Max: z.FromUint64(1).Lsh(width - 1).Sub(z.FromUint64(1)),
		FracMask: one.Sub(z.FromUint64(1)),
		AllOnes: z.Not(),

		Pi: c.pi,
		PiOver2: c.piOver2,
		PiOver4: c.piOver2.Rsh(1),
		Tau: c.tau,
		E: c.e,
		Ln2: c.ln2,
		Log2E: c.log2e,
		Log2Max: z.FromInt64(intBits - 1).Lsh(frac),
		Log2Min: z.FromInt64(-intBits).Lsh(frac),
		AtanK: c.atanK,

		TrigTerms: trigTerms,
		FormatDigits: formatDigits,
		ParseDigits: formatDigits + 2,
	}
}

// Narrow is the 16.16 format stored in 32 bits.
var Narrow = newParams(constants[word.U32]{
	pi     : 0x3243F,
	piOver2: 0x19220,
	tau    : 0x6487F,
	e      : 0x2B7E1,
	ln2    : 0xB172,
	log2e  : 0x17154,
	atanK  : 0x47AE,
}, 4, 10)

// Standard is the 32.32 format stored in 64 bits.
var Standard = newParams(constants[word.U64]{
	pi     : 0x3243F6A89,
	piOver2: 0x1921FB544,
	tau    : 0x6487ED511,
	e      : 0x2B7E15163,
	ln2    : 0xB17217F8,
	log2e  : 0x171547653,
	atanK  : 0x47AE147B,
}, 7, 10)

// Wide is the 64.64 format stored in 128 bits.
var Wide = newParams(constants[word.U128]{
	pi     : word.U128{ Hi: 3, Lo: 0x243F6A8885A308D3 },
	piOver2: word.U128{ Hi: 1, Lo: 0x921FB54442D1846A },
	tau    : word.U128{ Hi: 6, Lo: 0x487ED5110B4611A6 },
	e      : word.U128{ Hi: 2, Lo: 0xB7E151628AED2A6B },
	ln2    : word.U128{ Lo: 0xB17217F7D1CF79AC },
	log2e  : word.U128{ Hi: 1, Lo: 0x71547652B82FE177 },
	atanK  : word.U128{ Lo: 0x47AE147AE147AE14 },
}, 11, 20)

// FromInt returns n as a fixed point raw value, wrapping on overflow.
func (self *Params[W]) FromInt(n int64) W {
	return self.Zero.FromInt64(n).Lsh(self.Frac)
}
