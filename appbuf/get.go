package appbuf

import (
	"math"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/numconv"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

// readStruct extracts size bytes at the current row's data address. The
// second result is false when no data memory is bound.
func (b *DataBuffer) readStruct(size int) ([]byte, bool, error) {
	addr, ok := b.dataAddr()
	if !ok {
		return nil, false, nil
	}
	data, err := b.mem.Read(addr, uint32(size))
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// readWide extracts up to limit UTF-16 elements from a wide char buffer
// and decodes them. The terminated-string sentinel scans for a zero unit.
func (b *DataBuffer) readWide(limit int64) (string, error) {
	addr, ok := b.dataAddr()
	if !ok {
		return "", nil
	}
	buf := getScratch()
	defer putScratch(buf)
	if limit == godbc.NTS {
		end := ^uint32(0)
		if s, ok := b.mem.(godbc.MemorySizer); ok {
			end = s.Size()
		}
		for off := addr; off+1 < end; off += 2 {
			u, err := b.mem.ReadU16(off)
			if err != nil || u == 0 {
				break
			}
			*buf = append(*buf, byte(u), byte(u>>8))
		}
	} else if limit > 0 {
		data, err := b.mem.Read(addr, uint32(limit*2))
		if err != nil {
			return "", err
		}
		*buf = append(*buf, data...)
	}
	dec, err := utf16LE.NewDecoder().Bytes(*buf)
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// getNum pulls the buffer's value as a numeric type. Text sources parse
// leniently, a numeric struct keeps only its integer part, and anything
// the tag cannot produce yields zero.
func getNum[T numconv.Numeric](b *DataBuffer) (T, error) {
	var zero T
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		n := b.InputSize()
		if n == 0 {
			return zero, nil
		}
		s, err := b.GetString(n)
		if err != nil {
			return zero, err
		}
		return numconv.Parse[T](s), nil
	case sqltype.Numeric:
		d, err := b.getDecimalStruct()
		if err != nil {
			return zero, err
		}
		return T(d.IntPart()), nil
	}

	addr, ok := b.dataAddr()
	if !ok {
		return zero, nil
	}
	switch b.typ {
	case sqltype.SignedTinyint:
		v, err := b.mem.ReadU8(addr)
		return T(int8(v)), err
	case sqltype.Bit, sqltype.UnsignedTinyint:
		v, err := b.mem.ReadU8(addr)
		return T(v), err
	case sqltype.SignedShort:
		v, err := b.mem.ReadU16(addr)
		return T(int16(v)), err
	case sqltype.UnsignedShort:
		v, err := b.mem.ReadU16(addr)
		return T(v), err
	case sqltype.SignedLong:
		v, err := b.mem.ReadU32(addr)
		return T(int32(v)), err
	case sqltype.UnsignedLong:
		v, err := b.mem.ReadU32(addr)
		return T(v), err
	case sqltype.SignedBigint:
		v, err := b.mem.ReadU64(addr)
		return T(int64(v)), err
	case sqltype.UnsignedBigint:
		v, err := b.mem.ReadU64(addr)
		return T(v), err
	case sqltype.Float:
		v, err := b.mem.ReadU32(addr)
		return T(math.Float32frombits(v)), err
	case sqltype.Double:
		v, err := b.mem.ReadU64(addr)
		return T(math.Float64frombits(v)), err
	default:
		return zero, nil
	}
}

// GetString pulls the value in text form, at most maxLen characters.
// Numeric tags produce their canonical formatting.
func (b *DataBuffer) GetString(maxLen int64) (string, error) {
	var s string
	var err error
	switch b.typ {
	case sqltype.Char:
		s, err = b.readChars(b.InputSize())
	case sqltype.Wchar:
		s, err = b.readWide(b.InputSize())
	case sqltype.SignedTinyint, sqltype.SignedShort, sqltype.SignedLong, sqltype.SignedBigint:
		var v int64
		v, err = getNum[int64](b)
		s = numconv.Format(v)
	case sqltype.Bit, sqltype.UnsignedTinyint, sqltype.UnsignedShort, sqltype.UnsignedLong,
		sqltype.UnsignedBigint:
		var v uint64
		v, err = getNum[uint64](b)
		s = numconv.Format(v)
	case sqltype.Float:
		var v float32
		v, err = getNum[float32](b)
		s = numconv.Format(v)
	case sqltype.Double:
		var v float64
		v, err = getNum[float64](b)
		s = numconv.Format(v)
	case sqltype.Numeric:
		var d decimal.Decimal
		d, err = b.getDecimalStruct()
		s = d.String()
	}
	if err != nil {
		return "", err
	}
	if maxLen >= 0 && int64(len(s)) > maxLen {
		s = s[:maxLen]
	}
	return s, nil
}

// GetInt8 pulls the value as an 8-bit signed integer.
func (b *DataBuffer) GetInt8() (int8, error) { return getNum[int8](b) }

// GetInt16 pulls the value as a 16-bit signed integer.
func (b *DataBuffer) GetInt16() (int16, error) { return getNum[int16](b) }

// GetInt32 pulls the value as a 32-bit signed integer.
func (b *DataBuffer) GetInt32() (int32, error) { return getNum[int32](b) }

// GetInt64 pulls the value as a 64-bit signed integer.
func (b *DataBuffer) GetInt64() (int64, error) { return getNum[int64](b) }

// GetFloat pulls the value as a 32-bit float.
func (b *DataBuffer) GetFloat() (float32, error) { return getNum[float32](b) }

// GetDouble pulls the value as a 64-bit float.
func (b *DataBuffer) GetDouble() (float64, error) { return getNum[float64](b) }

// GetUUID pulls the value as a universally unique identifier. Unparseable
// text and unsupported tags yield the zero identifier.
func (b *DataBuffer) GetUUID() (uuid.UUID, error) {
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		s, err := b.GetString(64)
		if err != nil {
			return uuid.UUID{}, err
		}
		u, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return uuid.UUID{}, nil
		}
		return u, nil
	case sqltype.GUID:
		data, ok, err := b.readStruct(godbc.GUIDStructSize)
		if err != nil || !ok {
			return uuid.UUID{}, err
		}
		var g godbc.GUIDStruct
		if err := g.UnmarshalBinary(data); err != nil {
			return uuid.UUID{}, err
		}
		return g.UUID(), nil
	default:
		return uuid.UUID{}, nil
	}
}

// GetDecimal pulls the value as an arbitrary-precision decimal.
// Unparseable text yields zero.
func (b *DataBuffer) GetDecimal() (decimal.Decimal, error) {
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		s, err := b.GetString(b.InputSize())
		if err != nil {
			return decimal.Decimal{}, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Decimal{}, nil
		}
		return d, nil
	case sqltype.SignedTinyint, sqltype.Bit, sqltype.SignedShort, sqltype.SignedLong,
		sqltype.SignedBigint:
		v, err := getNum[int64](b)
		return decimal.NewFromInt(v), err
	case sqltype.UnsignedTinyint, sqltype.UnsignedShort, sqltype.UnsignedLong,
		sqltype.UnsignedBigint:
		v, err := getNum[uint64](b)
		return decimal.NewFromUint64(v), err
	case sqltype.Float, sqltype.Double:
		v, err := getNum[float64](b)
		return decimal.NewFromFloat(v), err
	case sqltype.Numeric:
		return b.getDecimalStruct()
	default:
		return decimal.Decimal{}, nil
	}
}

// getDecimalStruct rebuilds a decimal from the external numeric layout:
// little-endian magnitude, explicit sign byte, scale as a negative
// exponent.
func (b *DataBuffer) getDecimalStruct() (decimal.Decimal, error) {
	data, ok, err := b.readStruct(godbc.NumericStructSize)
	if err != nil || !ok {
		return decimal.Decimal{}, err
	}
	var ns godbc.NumericStruct
	if err := ns.UnmarshalBinary(data); err != nil {
		return decimal.Decimal{}, err
	}
	be := make([]byte, godbc.MaxNumericLen)
	for i, c := range ns.Val {
		be[godbc.MaxNumericLen-1-i] = c
	}
	unscaled := new(big.Int).SetBytes(be)
	if ns.Sign == 0 {
		unscaled.Neg(unscaled)
	}
	return decimal.NewFromBigInt(unscaled, -int32(ns.Scale)), nil
}
