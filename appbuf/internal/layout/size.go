package layout

import (
	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

// IndicatorSize is the width of one indicator slot. Indicator arrays are
// addressed with the same offset formula as data buffers, using this size.
const IndicatorSize = 8

// FixedSize returns the byte size of one element for a fixed-width tag and
// 0 for tags whose size is declared by the caller (char, wchar, binary) or
// undefined (default, unsupported). It is a total function over the tag set.
func FixedSize(t sqltype.Type) int64 {
	switch t {
	case sqltype.SignedTinyint, sqltype.Bit, sqltype.UnsignedTinyint:
		return 1
	case sqltype.SignedShort, sqltype.UnsignedShort:
		return 2
	case sqltype.SignedLong, sqltype.UnsignedLong:
		return 4
	case sqltype.SignedBigint, sqltype.UnsignedBigint:
		return 8
	case sqltype.Float:
		return 4
	case sqltype.Double:
		return 8
	case sqltype.Date:
		return godbc.DateStructSize
	case sqltype.Time:
		return godbc.TimeStructSize
	case sqltype.Timestamp:
		return godbc.TimestampStructSize
	case sqltype.Numeric:
		return godbc.NumericStructSize
	case sqltype.GUID:
		return godbc.GUIDStructSize
	default:
		return 0
	}
}

// ElementSize is FixedSize for fixed tags and the declared capacity for
// long-data tags. Both the put and get paths address elements through this
// single function.
func ElementSize(t sqltype.Type, declared int64) int64 {
	if t.IsLongData() {
		return declared
	}
	return FixedSize(t)
}
