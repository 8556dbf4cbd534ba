package efix

// Fixed32 constants. Transcendental values are rounded to the closest
// representable value.
var (
	Fixed32Zero    = Fixed32{}
	Fixed32One     = f32(narrow.One)
	Fixed32Half    = f32(narrow.Half)
	Fixed32NegOne  = f32(narrow.NegOne)
	Fixed32Epsilon = f32(narrow.Epsilon) // 1/65536
	Fixed32Min     = f32(narrow.Min) // -32768
	Fixed32Max     = f32(narrow.Max) // 32767.9999847412109375
	Fixed32Pi      = f32(narrow.Pi)
	Fixed32PiOver2 = f32(narrow.PiOver2)
	Fixed32Tau     = f32(narrow.Tau)
	Fixed32E       = f32(narrow.E)
	Fixed32Ln2     = f32(narrow.Ln2)
)

// Fixed64 constants. Transcendental values are rounded to the closest
// representable value.
var (
	Fixed64Zero    = Fixed64{}
	Fixed64One     = f64(std.One)
	Fixed64Half    = f64(std.Half)
	Fixed64NegOne  = f64(std.NegOne)
	Fixed64Epsilon = f64(std.Epsilon) // 1/2^32
	Fixed64Min     = f64(std.Min) // -2^31
	Fixed64Max     = f64(std.Max) // 2^31 - 2^-32
	Fixed64Pi      = f64(std.Pi)
	Fixed64PiOver2 = f64(std.PiOver2)
	Fixed64Tau     = f64(std.Tau)
	Fixed64E       = f64(std.E)
	Fixed64Ln2     = f64(std.Ln2)
)

// Fixed128 constants. Transcendental values are rounded to the closest
// representable value.
var (
	Fixed128Zero    = Fixed128{}
	Fixed128One     = f128(wide.One)
	Fixed128Half    = f128(wide.Half)
	Fixed128NegOne  = f128(wide.NegOne)
	Fixed128Epsilon = f128(wide.Epsilon) // 1/2^64
	Fixed128Min     = f128(wide.Min) // -2^63
	Fixed128Max     = f128(wide.Max) // 2^63 - 2^-64
	Fixed128Pi      = f128(wide.Pi)
	Fixed128PiOver2 = f128(wide.PiOver2)
	Fixed128Tau     = f128(wide.Tau)
	Fixed128E       = f128(wide.E)
	Fixed128Ln2     = f128(wide.Ln2)
)
