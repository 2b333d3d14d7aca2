package sqltype

type Type uint8

const (
	SignedTinyint Type = iota
	Bit
	UnsignedTinyint
	SignedShort
	UnsignedShort
	SignedLong
	UnsignedLong
	SignedBigint
	UnsignedBigint
	Float
	Double
	Char
	Wchar
	Date
	Time
	Timestamp
	Numeric
	Binary
	GUID
	Default
	Unsupported
)

var typeNames = [...]string{
	SignedTinyint:   "signed-tinyint",
	Bit:             "bit",
	UnsignedTinyint: "unsigned-tinyint",
	SignedShort:     "signed-short",
	UnsignedShort:   "unsigned-short",
	SignedLong:      "signed-long",
	UnsignedLong:    "unsigned-long",
	SignedBigint:    "signed-bigint",
	UnsignedBigint:  "unsigned-bigint",
	Float:           "float",
	Double:          "double",
	Char:            "char",
	Wchar:           "wchar",
	Date:            "date",
	Time:            "time",
	Timestamp:       "timestamp",
	Numeric:         "numeric",
	Binary:          "binary",
	GUID:            "guid",
	Default:         "default",
	Unsupported:     "unsupported",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// IsLongData reports whether the tag's element size is declared by the
// caller's buffer capacity rather than fixed by the tag.
func (t Type) IsLongData() bool {
	return t == Char || t == Wchar || t == Binary
}

// IsIntegerFamily covers the fixed-width integer tags, bit included.
func (t Type) IsIntegerFamily() bool {
	return t <= UnsignedBigint
}

// IsFloatFamily covers the floating-point tags.
func (t Type) IsFloatFamily() bool {
	return t == Float || t == Double
}
