package kernel

import "math"
import "math/big"
import "math/rand"
import "testing"

import "github.com/tinne26/efix/internal/word"

// signedBig returns the two's complement value of w.
func signedBig[W word.Word[W]](w W) *big.Int {
	v := new(big.Int)
	width := w.Width()
	for shift := int(width) - 64; shift >= 0; shift -= 64 {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(w.Rsh(uint(shift)).Uint64()))
	}
	if width < 64 { v.SetUint64(w.Uint64()) }
	if w.Negative() { v.Sub(v, new(big.Int).Lsh(big.NewInt(1), width)) }
	return v
}

// fromBig wraps v into a word, keeping its low bits.
func fromBig[W word.Word[W]](p *Params[W], v *big.Int) W {
	mod := new(big.Int).Lsh(big.NewInt(1), p.Zero.Width())
	u := new(big.Int).Mod(v, mod)
	var w W
	mask64 := new(big.Int).SetUint64(math.MaxUint64)
	for shift := uint(0); shift < p.Zero.Width(); shift += 64 {
		limb := new(big.Int).Rsh(u, shift)
		limb.And(limb, mask64)
		w = w.Or(p.Zero.FromUint64(limb.Uint64()).Lsh(shift))
	}
	return w
}

// clampBig saturates v to the signed range of the width.
func clampBig[W word.Word[W]](p *Params[W], v *big.Int) *big.Int {
	if lo := signedBig(p.Min); v.Cmp(lo) < 0 { return lo }
	if hi := signedBig(p.Max); v.Cmp(hi) > 0 { return hi }
	return v
}

// randWord returns random raw values, often small in magnitude so that
// results stay in range.
func randWord[W word.Word[W]](p *Params[W], rng *rand.Rand) W {
	var w W
	for shift := uint(0); shift < p.Zero.Width(); shift += 32 {
		w = w.Or(p.Zero.FromUint64(uint64(rng.Uint32())).Lsh(shift))
	}
	switch rng.Intn(4) {
	case 0: w = w.Sar(p.Frac - 4)
	case 1: w = w.Sar(uint(rng.Intn(int(p.Zero.Width()))))
	}
	return w
}

// toFloat converts raw values of the narrow and standard widths.
func toFloat[W word.Word[W]](p *Params[W], w W) float64 {
	return math.Ldexp(float64(w.Int64()), -int(p.Frac))
}

func fromFloat[W word.Word[W]](p *Params[W], f float64) W {
	return p.Zero.FromInt64(int64(math.Ldexp(f, int(p.Frac))))
}

// forEachWidth runs a generic test for all three widths.
func forEachWidth(t *testing.T, narrow func(*testing.T, *Params[word.U32]), standard func(*testing.T, *Params[word.U64]), wide func(*testing.T, *Params[word.U128])) {
	t.Run("32", func(t *testing.T) { narrow(t, Narrow) })
	t.Run("64", func(t *testing.T) { standard(t, Standard) })
	t.Run("128", func(t *testing.T) { wide(t, Wide) })
}
