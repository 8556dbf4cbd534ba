package kernel

import "fmt"
import "strconv"
import "strings"

import "github.com/tinne26/efix/internal/word"

// Parse converts a decimal string like "-3.25" or ".5" to a raw value.
//
// The integer part must fit the width's integer bits. The fraction is
// accumulated from the last digit to the first, as frac = (frac + d)/10,
// on a few extra guard bits that are rounded away at the end. Digits
// beyond ParseDigits are ignored.
func Parse[W word.Word[W]](p *Params[W], text string) (W, error) {
	s := strings.TrimSpace(text)
	intStr, fracStr, hasPoint := strings.Cut(s, ".")
	if hasPoint && strings.Contains(fracStr, ".") {
		return p.Zero, fmt.Errorf("%w: %q has more than one decimal point", ErrSyntax, text)
	}

	var integer W
	negative := strings.HasPrefix(intStr, "-")
	switch intStr {
	case "", "-", "+":
		if fracStr == "" {
			return p.Zero, fmt.Errorf("%w: %q", ErrSyntax, text)
		}
	default:
		n, err := strconv.ParseInt(intStr, 10, int(p.Zero.Width() - p.Frac))
		if err != nil {
			return p.Zero, fmt.Errorf("%w: %q has an invalid integer part", ErrSyntax, text)
		}
		integer = p.FromInt(n)
	}

	for i := 0; i < len(fracStr); i++ {
		if fracStr[i] < '0' || fracStr[i] > '9' {
			return p.Zero, fmt.Errorf("%w: %q has an invalid fractional part", ErrSyntax, text)
		}
	}
	if len(fracStr) > p.ParseDigits { fracStr = fracStr[:p.ParseDigits] }

	guard := p.Frac/2 - 4
	unit := p.One.Lsh(guard)
	var acc W
	for i := len(fracStr) - 1; i >= 0; i-- {
		digit := p.Zero.FromUint64(uint64(fracStr[i] - '0'))
		acc = quoInt(p, acc.Add(digit.Mul(unit)), 10)
	}
	frac := acc.Add(p.Epsilon.Lsh(guard - 1)).Rsh(guard)

	if negative { return Sub(p, integer, frac), nil }
	return Add(p, integer, frac), nil
}

// Format writes x in decimal notation with at most FormatDigits
// fractional digits, truncating and without trailing zeros.
func Format[W word.Word[W]](p *Params[W], x W) string {
	if x.IsZero() { return "0" }

	var buffer []byte
	frac := x.And(p.FracMask)
	integer := x.Sar(p.Frac).Int64()
	if x.Negative() {
		// digits of the ceiling and One - frac keep the loop non-negative
		buffer = append(buffer, '-')
		if !frac.IsZero() {
			integer += 1
			frac = p.One.Sub(frac)
		}
		buffer = strconv.AppendUint(buffer, uint64(-integer), 10)
	} else {
		buffer = strconv.AppendInt(buffer, integer, 10)
	}
	if frac.IsZero() { return string(buffer) }

	buffer = append(buffer, '.')
	ten := p.Zero.FromUint64(10)
	for i := 0; i < p.FormatDigits && !frac.IsZero(); i++ {
		frac = frac.Mul(ten)
		buffer = append(buffer, byte('0' + frac.Sar(p.Frac).Uint64()))
		frac = frac.And(p.FracMask)
	}

	return strings.TrimSuffix(strings.TrimRight(string(buffer), "0"), ".")
}
