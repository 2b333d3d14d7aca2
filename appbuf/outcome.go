package appbuf

// ConvRes reports how a put or get conversion went. These are outcomes,
// not errors: a truncated copy still transferred data, and the caller
// decides whether that warrants a diagnostic.
type ConvRes uint8

const (
	// ConvSuccess means the value was converted and stored in full.
	ConvSuccess ConvRes = iota

	// ConvVarlenTruncated means a variable-length value did not fit and
	// only a prefix was stored. The indicator still holds the full length.
	ConvVarlenTruncated

	// ConvFractionalTruncated means digits or sub-second precision were
	// dropped to fit the target type.
	ConvFractionalTruncated

	// ConvIndicatorNeeded means the operation required an indicator slot
	// and none was bound.
	ConvIndicatorNeeded

	// ConvUnsupportedConversion means the buffer's native tag cannot
	// receive or produce the requested value kind. Nothing was written.
	ConvUnsupportedConversion
)

var convResNames = [...]string{
	ConvSuccess:               "success",
	ConvVarlenTruncated:       "varlen_truncated",
	ConvFractionalTruncated:   "fractional_truncated",
	ConvIndicatorNeeded:       "indicator_needed",
	ConvUnsupportedConversion: "unsupported_conversion",
}

func (r ConvRes) String() string {
	if int(r) < len(convResNames) {
		return convResNames[r]
	}
	return "unknown"
}

// Truncated reports whether the outcome carries a truncation of any kind.
func (r ConvRes) Truncated() bool {
	return r == ConvVarlenTruncated || r == ConvFractionalTruncated
}
