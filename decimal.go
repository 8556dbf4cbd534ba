package efix

import "github.com/govalues/decimal"

// Conversions with [decimal.Decimal] go through the decimal notation.
// Decimals hold at most 19 significant digits, so converting Fixed64
// and Fixed128 values with many fractional digits rounds them, and
// large Fixed128 values may not be representable at all.

func (self Fixed32) Decimal() (decimal.Decimal, error) { return decimal.Parse(self.String()) }
func (self Fixed64) Decimal() (decimal.Decimal, error) { return decimal.Parse(self.String()) }
func (self Fixed128) Decimal() (decimal.Decimal, error) { return decimal.Parse(self.String()) }

func Fixed32FromDecimal(d decimal.Decimal) (Fixed32, error) { return ParseFixed32(d.String()) }
func Fixed64FromDecimal(d decimal.Decimal) (Fixed64, error) { return ParseFixed64(d.String()) }
func Fixed128FromDecimal(d decimal.Decimal) (Fixed128, error) { return ParseFixed128(d.String()) }
