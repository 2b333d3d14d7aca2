package appbuf

import "github.com/cleodb/godbc/appbuf/internal/sqltype"

// TypeKind identifies the native type a caller declared for a bound buffer.
type TypeKind = sqltype.Type

// Native type tags, re-exported for callers.
const (
	TypeSignedTinyint   = sqltype.SignedTinyint
	TypeBit             = sqltype.Bit
	TypeUnsignedTinyint = sqltype.UnsignedTinyint
	TypeSignedShort     = sqltype.SignedShort
	TypeUnsignedShort   = sqltype.UnsignedShort
	TypeSignedLong      = sqltype.SignedLong
	TypeUnsignedLong    = sqltype.UnsignedLong
	TypeSignedBigint    = sqltype.SignedBigint
	TypeUnsignedBigint  = sqltype.UnsignedBigint
	TypeFloat           = sqltype.Float
	TypeDouble          = sqltype.Double
	TypeChar            = sqltype.Char
	TypeWchar           = sqltype.Wchar
	TypeDate            = sqltype.Date
	TypeTime            = sqltype.Time
	TypeTimestamp       = sqltype.Timestamp
	TypeNumeric         = sqltype.Numeric
	TypeBinary          = sqltype.Binary
	TypeGUID            = sqltype.GUID
	TypeDefault         = sqltype.Default
	TypeUnsupported     = sqltype.Unsupported
)
