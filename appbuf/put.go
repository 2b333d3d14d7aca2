package appbuf

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/numconv"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

// writeStruct stores a marshaled external layout in caller memory and
// reports its size through the indicator.
func (b *DataBuffer) writeStruct(data []byte) error {
	if addr, ok := b.dataAddr(); ok {
		if err := b.mem.Write(addr, data); err != nil {
			return err
		}
	}
	return b.setIndicator(int64(len(data)))
}

// writeBits stores a fixed-width value, least significant byte first, and
// reports its width through the indicator.
func (b *DataBuffer) writeBits(bits uint64, size int) (ConvRes, error) {
	if addr, ok := b.dataAddr(); ok {
		var err error
		switch size {
		case 1:
			err = b.mem.WriteU8(addr, uint8(bits))
		case 2:
			err = b.mem.WriteU16(addr, uint16(bits))
		case 4:
			err = b.mem.WriteU32(addr, uint32(bits))
		default:
			err = b.mem.WriteU64(addr, bits)
		}
		if err != nil {
			return ConvSuccess, err
		}
	}
	return ConvSuccess, b.setIndicator(int64(size))
}

// putNum converts a numeric value to the buffer's native tag. Fixed-width
// targets use plain Go conversion, so integers wrap rather than saturate.
// Binary and default targets receive the source's own byte image and are
// the one numeric case that can report truncation.
func putNum[T numconv.Numeric](b *DataBuffer, v T) (ConvRes, error) {
	switch b.typ {
	case sqltype.SignedTinyint:
		bits, size := numconv.Bits(int8(v))
		return b.writeBits(bits, size)
	case sqltype.Bit, sqltype.UnsignedTinyint:
		bits, size := numconv.Bits(uint8(v))
		return b.writeBits(bits, size)
	case sqltype.SignedShort:
		bits, size := numconv.Bits(int16(v))
		return b.writeBits(bits, size)
	case sqltype.UnsignedShort:
		bits, size := numconv.Bits(uint16(v))
		return b.writeBits(bits, size)
	case sqltype.SignedLong:
		bits, size := numconv.Bits(int32(v))
		return b.writeBits(bits, size)
	case sqltype.UnsignedLong:
		bits, size := numconv.Bits(uint32(v))
		return b.writeBits(bits, size)
	case sqltype.SignedBigint:
		bits, size := numconv.Bits(int64(v))
		return b.writeBits(bits, size)
	case sqltype.UnsignedBigint:
		bits, size := numconv.Bits(uint64(v))
		return b.writeBits(bits, size)
	case sqltype.Float:
		bits, size := numconv.Bits(float32(v))
		return b.writeBits(bits, size)
	case sqltype.Double:
		bits, size := numconv.Bits(float64(v))
		return b.writeBits(bits, size)
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(numconv.Format(v))
		return res, err
	case sqltype.Numeric:
		return putNumAsNumeric(b, v)
	case sqltype.Binary, sqltype.Default:
		return putNumAsRaw(b, v)
	default:
		return ConvUnsupportedConversion, nil
	}
}

// putNumAsNumeric writes the value's integer magnitude as a scale-zero
// numeric struct.
func putNumAsNumeric[T numconv.Numeric](b *DataBuffer, v T) (ConvRes, error) {
	ns := godbc.NumericStruct{
		Scale: 0,
		Sign:  1,
	}
	if v < 0 {
		ns.Sign = 0
		v = -v
	}
	mag := uint64(v)
	ns.Precision = numconv.DigitLength(mag)
	for i := 0; i < 8; i++ {
		ns.Val[i] = byte(mag >> (8 * i))
	}
	data, _ := ns.MarshalBinary()
	return ConvSuccess, b.writeStruct(data)
}

// putNumAsRaw copies the value's in-memory image into a binary buffer.
// The indicator reports the source width even when the buffer is shorter.
func putNumAsRaw[T numconv.Numeric](b *DataBuffer, v T) (ConvRes, error) {
	bits, size := numconv.Bits(v)
	buf := getScratch()
	defer putScratch(buf)
	for i := 0; i < size; i++ {
		*buf = append(*buf, byte(bits>>(8*i)))
	}

	if err := b.setIndicator(int64(size)); err != nil {
		return ConvSuccess, err
	}
	toCopy := int64(size)
	if toCopy > b.bufLen {
		toCopy = b.bufLen
	}
	if toCopy < 0 {
		toCopy = 0
	}
	if addr, ok := b.dataAddr(); ok && toCopy > 0 {
		if err := b.mem.Write(addr, (*buf)[:toCopy]); err != nil {
			return ConvSuccess, err
		}
	}
	if b.bufLen < int64(size) {
		return ConvVarlenTruncated, nil
	}
	return ConvSuccess, nil
}

// PutInt8 stores an 8-bit signed value.
func (b *DataBuffer) PutInt8(v int8) (ConvRes, error) {
	Logger().Debug("put int8", zap.Int8("value", v), zap.Stringer("type", b.typ))
	return putNum(b, v)
}

// PutInt16 stores a 16-bit signed value.
func (b *DataBuffer) PutInt16(v int16) (ConvRes, error) {
	Logger().Debug("put int16", zap.Int16("value", v), zap.Stringer("type", b.typ))
	return putNum(b, v)
}

// PutInt32 stores a 32-bit signed value.
func (b *DataBuffer) PutInt32(v int32) (ConvRes, error) {
	Logger().Debug("put int32", zap.Int32("value", v), zap.Stringer("type", b.typ))
	return putNum(b, v)
}

// PutInt64 stores a 64-bit signed value.
func (b *DataBuffer) PutInt64(v int64) (ConvRes, error) {
	Logger().Debug("put int64", zap.Int64("value", v), zap.Stringer("type", b.typ))
	return putNum(b, v)
}

// PutFloat stores a 32-bit floating point value.
func (b *DataBuffer) PutFloat(v float32) (ConvRes, error) {
	Logger().Debug("put float", zap.Float32("value", v), zap.Stringer("type", b.typ))
	return putNum(b, v)
}

// PutDouble stores a 64-bit floating point value.
func (b *DataBuffer) PutDouble(v float64) (ConvRes, error) {
	Logger().Debug("put double", zap.Float64("value", v), zap.Stringer("type", b.typ))
	return putNum(b, v)
}

// PutString stores text. Numeric targets parse the text leniently, with
// unparseable input producing zero; character targets copy with a
// terminator; binary targets copy the raw bytes.
func (b *DataBuffer) PutString(v string) (ConvRes, error) {
	Logger().Debug("put string", zap.Int("len", len(v)), zap.Stringer("type", b.typ))
	switch b.typ {
	case sqltype.SignedTinyint, sqltype.SignedShort, sqltype.SignedLong, sqltype.SignedBigint,
		sqltype.Numeric:
		return putNum(b, numconv.Parse[int64](v))
	case sqltype.Bit, sqltype.UnsignedTinyint, sqltype.UnsignedShort, sqltype.UnsignedLong,
		sqltype.UnsignedBigint:
		return putNum(b, numconv.Parse[uint64](v))
	case sqltype.Float:
		return putNum(b, numconv.Parse[float32](v))
	case sqltype.Double:
		return putNum(b, numconv.Parse[float64](v))
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(v)
		return res, err
	case sqltype.Binary, sqltype.Default:
		_, res, err := b.putRaw([]byte(v))
		return res, err
	default:
		return ConvUnsupportedConversion, nil
	}
}

// PutBinary stores raw bytes. Character targets receive the hexadecimal
// text form. The returned count is how many source bytes were consumed,
// for chunked retrieval.
func (b *DataBuffer) PutBinary(data []byte) (int64, ConvRes, error) {
	Logger().Debug("put binary", zap.Int("len", len(data)), zap.Stringer("type", b.typ))
	switch b.typ {
	case sqltype.Binary, sqltype.Default:
		return b.putRaw(data)
	case sqltype.Char, sqltype.Wchar:
		written, res, err := b.putText(hexEncode(data))
		return written / 2, res, err
	default:
		return 0, ConvUnsupportedConversion, nil
	}
}

const hexDigits = "0123456789abcdef"

func hexEncode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for _, c := range data {
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0f])
	}
	return sb.String()
}

// PutNull marks the current row's value as absent. Without a bound
// indicator there is nowhere to record that, which is the one outcome
// reported as ConvIndicatorNeeded.
func (b *DataBuffer) PutNull() (ConvRes, error) {
	Logger().Debug("put null", zap.Stringer("type", b.typ))
	if _, ok := b.indAddr(); !ok {
		return ConvIndicatorNeeded, nil
	}
	return ConvSuccess, b.setIndicator(godbc.NullData)
}

// PutUUID stores a universally unique identifier. Character and binary
// targets get the canonical textual form, a GUID target the packed
// struct layout.
func (b *DataBuffer) PutUUID(v uuid.UUID) (ConvRes, error) {
	Logger().Debug("put uuid", zap.Stringer("value", v), zap.Stringer("type", b.typ))
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(v.String())
		return res, err
	case sqltype.Binary, sqltype.Default:
		_, res, err := b.putRaw([]byte(v.String()))
		return res, err
	case sqltype.GUID:
		g := godbc.GUIDFromUUID(v)
		data, _ := g.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	default:
		return ConvUnsupportedConversion, nil
	}
}

// PutDecimal stores an arbitrary-precision decimal. Every non-numeric
// non-text target drops the fractional part and reports that, whatever
// the value. A numeric target receives the unscaled magnitude at scale
// zero and truncates only when it exceeds the struct's digit capacity.
func (b *DataBuffer) PutDecimal(v decimal.Decimal) (ConvRes, error) {
	Logger().Debug("put decimal", zap.Stringer("value", v), zap.Stringer("type", b.typ))
	switch {
	case b.typ.IsIntegerFamily():
		if _, err := putNum(b, v.IntPart()); err != nil {
			return ConvSuccess, err
		}
		return ConvFractionalTruncated, nil
	case b.typ.IsFloatFamily():
		if _, err := putNum(b, v.InexactFloat64()); err != nil {
			return ConvSuccess, err
		}
		return ConvFractionalTruncated, nil
	}
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(v.String())
		return res, err
	case sqltype.Numeric:
		return b.putDecimalStruct(v)
	default:
		return ConvUnsupportedConversion, nil
	}
}

func (b *DataBuffer) putDecimalStruct(v decimal.Decimal) (ConvRes, error) {
	unscaled := v.Truncate(0).BigInt()

	mag := new(big.Int).Abs(unscaled).Bytes() // big-endian
	ns := godbc.NumericStruct{
		Precision: uint8(len(strings.TrimPrefix(unscaled.String(), "-"))),
		Scale:     0,
		Sign:      1,
	}
	if unscaled.Sign() < 0 {
		ns.Sign = 0
	}
	for i := 0; i < godbc.MaxNumericLen && i < len(mag); i++ {
		ns.Val[i] = mag[len(mag)-1-i]
	}
	data, _ := ns.MarshalBinary()
	if err := b.writeStruct(data); err != nil {
		return ConvSuccess, err
	}
	if len(mag) > godbc.MaxNumericLen {
		return ConvFractionalTruncated, nil
	}
	return ConvSuccess, nil
}
