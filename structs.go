package godbc

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/cleodb/godbc/errors"
)

// Length sentinels stored in indicator slots, wire-compatible with the
// call-level SQL standard's SQLLEN constants.
const (
	// NullData marks a null value.
	NullData int64 = -1

	// DataAtExec marks a parameter whose data is supplied at execution time.
	DataAtExec int64 = -2

	// NTS marks a string whose length is determined by its terminator.
	NTS int64 = -3

	// DataAtExecOffset is the base of the length-encoded data-at-execution
	// scheme: a stored value v <= DataAtExecOffset declares a total size of
	// -v + DataAtExecOffset elements.
	DataAtExecOffset int64 = -100
)

// MaxNumericLen is the magnitude array length of NumericStruct.
const MaxNumericLen = 16

// Struct sizes in bytes. Field order and widths are part of the external
// contract; callers bind directly to these layouts.
const (
	NumericStructSize   = 3 + MaxNumericLen
	DateStructSize      = 6
	TimeStructSize      = 6
	TimestampStructSize = 16
	GUIDStructSize      = 16
)

// NumericStruct is the external fixed-point numeric record. Val holds the
// unscaled magnitude little-endian; Sign is 0 for negative, 1 otherwise.
type NumericStruct struct {
	Precision uint8
	Scale     int8
	Sign      uint8
	Val       [MaxNumericLen]byte
}

func (n *NumericStruct) MarshalBinary() ([]byte, error) {
	out := make([]byte, NumericStructSize)
	out[0] = n.Precision
	out[1] = byte(n.Scale)
	out[2] = n.Sign
	copy(out[3:], n.Val[:])
	return out, nil
}

func (n *NumericStruct) UnmarshalBinary(data []byte) error {
	if len(data) < NumericStructSize {
		return errors.InvalidInput(errors.PhaseBuffer, "numeric struct requires 19 bytes")
	}
	n.Precision = data[0]
	n.Scale = int8(data[1])
	n.Sign = data[2]
	copy(n.Val[:], data[3:NumericStructSize])
	return nil
}

// DateStruct is the external calendar date record.
type DateStruct struct {
	Year  int16
	Month uint16
	Day   uint16
}

func (d *DateStruct) MarshalBinary() ([]byte, error) {
	out := make([]byte, DateStructSize)
	binary.LittleEndian.PutUint16(out[0:], uint16(d.Year))
	binary.LittleEndian.PutUint16(out[2:], d.Month)
	binary.LittleEndian.PutUint16(out[4:], d.Day)
	return out, nil
}

func (d *DateStruct) UnmarshalBinary(data []byte) error {
	if len(data) < DateStructSize {
		return errors.InvalidInput(errors.PhaseBuffer, "date struct requires 6 bytes")
	}
	d.Year = int16(binary.LittleEndian.Uint16(data[0:]))
	d.Month = binary.LittleEndian.Uint16(data[2:])
	d.Day = binary.LittleEndian.Uint16(data[4:])
	return nil
}

// TimeStruct is the external time-of-day record.
type TimeStruct struct {
	Hour   uint16
	Minute uint16
	Second uint16
}

func (t *TimeStruct) MarshalBinary() ([]byte, error) {
	out := make([]byte, TimeStructSize)
	binary.LittleEndian.PutUint16(out[0:], t.Hour)
	binary.LittleEndian.PutUint16(out[2:], t.Minute)
	binary.LittleEndian.PutUint16(out[4:], t.Second)
	return out, nil
}

func (t *TimeStruct) UnmarshalBinary(data []byte) error {
	if len(data) < TimeStructSize {
		return errors.InvalidInput(errors.PhaseBuffer, "time struct requires 6 bytes")
	}
	t.Hour = binary.LittleEndian.Uint16(data[0:])
	t.Minute = binary.LittleEndian.Uint16(data[2:])
	t.Second = binary.LittleEndian.Uint16(data[4:])
	return nil
}

// TimestampStruct is the external date-time record. Fraction is in
// nanoseconds.
type TimestampStruct struct {
	Year     int16
	Month    uint16
	Day      uint16
	Hour     uint16
	Minute   uint16
	Second   uint16
	Fraction uint32
}

func (t *TimestampStruct) MarshalBinary() ([]byte, error) {
	out := make([]byte, TimestampStructSize)
	binary.LittleEndian.PutUint16(out[0:], uint16(t.Year))
	binary.LittleEndian.PutUint16(out[2:], t.Month)
	binary.LittleEndian.PutUint16(out[4:], t.Day)
	binary.LittleEndian.PutUint16(out[6:], t.Hour)
	binary.LittleEndian.PutUint16(out[8:], t.Minute)
	binary.LittleEndian.PutUint16(out[10:], t.Second)
	binary.LittleEndian.PutUint32(out[12:], t.Fraction)
	return out, nil
}

func (t *TimestampStruct) UnmarshalBinary(data []byte) error {
	if len(data) < TimestampStructSize {
		return errors.InvalidInput(errors.PhaseBuffer, "timestamp struct requires 16 bytes")
	}
	t.Year = int16(binary.LittleEndian.Uint16(data[0:]))
	t.Month = binary.LittleEndian.Uint16(data[2:])
	t.Day = binary.LittleEndian.Uint16(data[4:])
	t.Hour = binary.LittleEndian.Uint16(data[6:])
	t.Minute = binary.LittleEndian.Uint16(data[8:])
	t.Second = binary.LittleEndian.Uint16(data[10:])
	t.Fraction = binary.LittleEndian.Uint32(data[12:])
	return nil
}

// GUIDStruct is the external globally-unique-identifier record.
type GUIDStruct struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// EncodeGUID carves the struct fields out of the value's 64-bit halves:
// Data1, Data2 and Data3 are taken most-significant-bits-first from msb,
// Data4 is lsb split into bytes most-significant-first.
func EncodeGUID(msb, lsb uint64) GUIDStruct {
	var g GUIDStruct
	g.Data1 = uint32(msb >> 32)
	g.Data2 = uint16(msb >> 16)
	g.Data3 = uint16(msb)
	for i := range g.Data4 {
		g.Data4[i] = byte(lsb >> ((len(g.Data4) - i - 1) * 8))
	}
	return g
}

// Bits reverses EncodeGUID exactly; EncodeGUID followed by Bits is the
// identity on any 128-bit value.
func (g GUIDStruct) Bits() (msb, lsb uint64) {
	msb = uint64(g.Data1)<<32 | uint64(g.Data2)<<16 | uint64(g.Data3)
	for i, b := range g.Data4 {
		lsb |= uint64(b) << ((len(g.Data4) - i - 1) * 8)
	}
	return msb, lsb
}

// GUIDFromUUID packs an RFC 4122 UUID into the external layout.
func GUIDFromUUID(u uuid.UUID) GUIDStruct {
	msb := binary.BigEndian.Uint64(u[0:8])
	lsb := binary.BigEndian.Uint64(u[8:16])
	return EncodeGUID(msb, lsb)
}

// UUID unpacks the external layout back into an RFC 4122 UUID.
func (g GUIDStruct) UUID() uuid.UUID {
	msb, lsb := g.Bits()
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[0:8], msb)
	binary.BigEndian.PutUint64(u[8:16], lsb)
	return u
}

func (g *GUIDStruct) MarshalBinary() ([]byte, error) {
	out := make([]byte, GUIDStructSize)
	binary.LittleEndian.PutUint32(out[0:], g.Data1)
	binary.LittleEndian.PutUint16(out[4:], g.Data2)
	binary.LittleEndian.PutUint16(out[6:], g.Data3)
	copy(out[8:], g.Data4[:])
	return out, nil
}

func (g *GUIDStruct) UnmarshalBinary(data []byte) error {
	if len(data) < GUIDStructSize {
		return errors.InvalidInput(errors.PhaseBuffer, "guid struct requires 16 bytes")
	}
	g.Data1 = binary.LittleEndian.Uint32(data[0:])
	g.Data2 = binary.LittleEndian.Uint16(data[4:])
	g.Data3 = binary.LittleEndian.Uint16(data[6:])
	copy(g.Data4[:], data[8:GUIDStructSize])
	return nil
}
