// eorder is a utility subpackage to encode efix values as [ordered code]
// keys, so they can be used in key-value stores and sorted indices: the
// byte order of the keys is the same as the numeric order of the values.
//
// Keys for Fixed32 and Fixed64 are a single signed integer, and keys for
// Fixed128 are the signed high half followed by the unsigned low half.
// Keys can be appended to other ordered code prefixes with the Append*
// functions.
//
// [ordered code]: https://pkg.go.dev/rsc.io/ordered
package eorder

import "bytes"
import "errors"
import "fmt"

import "rsc.io/ordered"

import "github.com/tinne26/efix"

// ErrKey is wrapped by all the decoding errors.
var ErrKey = errors.New("invalid efix key")

func Key32(value efix.Fixed32) []byte { return AppendKey32(nil, value) }
func Key64(value efix.Fixed64) []byte { return AppendKey64(nil, value) }
func Key128(value efix.Fixed128) []byte { return AppendKey128(nil, value) }

func AppendKey32(enc []byte, value efix.Fixed32) []byte {
	return ordered.Append(enc, int64(value.Raw()))
}

func AppendKey64(enc []byte, value efix.Fixed64) []byte {
	return ordered.Append(enc, value.Raw())
}

func AppendKey128(enc []byte, value efix.Fixed128) []byte {
	hi, lo := value.Raw()
	return ordered.Append(enc, hi, lo)
}

// DecodeKey32 decodes a key created by [Key32]. Keys of other widths
// and values out of the Fixed32 range return an error.
func DecodeKey32(key []byte) (efix.Fixed32, error) {
	var raw int64
	err := decode(key, &raw)
	if err != nil { return efix.Fixed32{}, err }
	if raw != int64(int32(raw)) {
		return efix.Fixed32{}, fmt.Errorf("%w: raw value %d out of Fixed32 range", ErrKey, raw)
	}
	if !bytes.Equal(Key32(efix.Fixed32FromRaw(int32(raw))), key) {
		return efix.Fixed32{}, fmt.Errorf("%w: %x is not a Fixed32 key", ErrKey, key)
	}
	return efix.Fixed32FromRaw(int32(raw)), nil
}

// DecodeKey64 decodes a key created by [Key64].
func DecodeKey64(key []byte) (efix.Fixed64, error) {
	var raw int64
	err := decode(key, &raw)
	if err != nil { return efix.Fixed64{}, err }
	if !bytes.Equal(Key64(efix.Fixed64FromRaw(raw)), key) {
		return efix.Fixed64{}, fmt.Errorf("%w: %x is not a Fixed64 key", ErrKey, key)
	}
	return efix.Fixed64FromRaw(raw), nil
}

// DecodeKey128 decodes a key created by [Key128].
func DecodeKey128(key []byte) (efix.Fixed128, error) {
	var hi int64
	var lo uint64
	err := decode(key, &hi, &lo)
	if err != nil { return efix.Fixed128{}, err }
	value := efix.Fixed128FromRaw(hi, lo)
	if !bytes.Equal(Key128(value), key) {
		return efix.Fixed128{}, fmt.Errorf("%w: %x is not a Fixed128 key", ErrKey, key)
	}
	return value, nil
}

func decode(key []byte, list ...any) error {
	rest, err := ordered.DecodePrefix(key, list...)
	if err != nil { return fmt.Errorf("%w: %w", ErrKey, err) }
	if len(rest) != 0 {
		return fmt.Errorf("%w: %x has %d trailing bytes", ErrKey, key, len(rest))
	}
	return nil
}
