package efix

import "errors"
import "encoding"
import "encoding/binary"
import "fmt"

// ErrBinaryLength is returned when unmarshaling binary data of the
// wrong size for the type.
var ErrBinaryLength = errors.New("efix: invalid binary length")

var (
	_ encoding.TextMarshaler     = Fixed32{}
	_ encoding.TextUnmarshaler   = (*Fixed32)(nil)
	_ encoding.BinaryMarshaler   = Fixed32{}
	_ encoding.BinaryUnmarshaler = (*Fixed32)(nil)
	_ encoding.TextUnmarshaler   = (*Fixed64)(nil)
	_ encoding.BinaryUnmarshaler = (*Fixed64)(nil)
	_ encoding.TextUnmarshaler   = (*Fixed128)(nil)
	_ encoding.BinaryUnmarshaler = (*Fixed128)(nil)
)

// Text encoding uses the decimal notation of the String methods, so the
// values work as YAML and JSON string scalars, flag values and so on.

func (self Fixed32) MarshalText() ([]byte, error) { return []byte(self.String()), nil }
func (self Fixed64) MarshalText() ([]byte, error) { return []byte(self.String()), nil }
func (self Fixed128) MarshalText() ([]byte, error) { return []byte(self.String()), nil }

func (self *Fixed32) UnmarshalText(text []byte) error {
	value, err := ParseFixed32(string(text))
	if err != nil { return err }
	*self = value
	return nil
}

func (self *Fixed64) UnmarshalText(text []byte) error {
	value, err := ParseFixed64(string(text))
	if err != nil { return err }
	*self = value
	return nil
}

func (self *Fixed128) UnmarshalText(text []byte) error {
	value, err := ParseFixed128(string(text))
	if err != nil { return err }
	*self = value
	return nil
}

// Binary encoding stores the raw bits in big endian order: 4, 8 and 16
// bytes for each width.

func (self Fixed32) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint32(nil, self.Bits()), nil
}

func (self Fixed64) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, self.Bits()), nil
}

func (self Fixed128) MarshalBinary() ([]byte, error) {
	hi, lo := self.Bits()
	data := binary.BigEndian.AppendUint64(make([]byte, 0, 16), hi)
	return binary.BigEndian.AppendUint64(data, lo), nil
}

func (self *Fixed32) UnmarshalBinary(data []byte) error {
	if len(data) != 4 { return fmt.Errorf("%w: Fixed32 expects 4 bytes, got %d", ErrBinaryLength, len(data)) }
	self.raw = int32(binary.BigEndian.Uint32(data))
	return nil
}

func (self *Fixed64) UnmarshalBinary(data []byte) error {
	if len(data) != 8 { return fmt.Errorf("%w: Fixed64 expects 8 bytes, got %d", ErrBinaryLength, len(data)) }
	self.raw = int64(binary.BigEndian.Uint64(data))
	return nil
}

func (self *Fixed128) UnmarshalBinary(data []byte) error {
	if len(data) != 16 { return fmt.Errorf("%w: Fixed128 expects 16 bytes, got %d", ErrBinaryLength, len(data)) }
	self.hi = int64(binary.BigEndian.Uint64(data[0 : 8]))
	self.lo = binary.BigEndian.Uint64(data[8 : 16])
	return nil
}
