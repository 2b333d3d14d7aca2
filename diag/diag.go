package diag

import "fmt"

// Common state codes.
const (
	// StateGeneralWarning flags a non-specific warning.
	StateGeneralWarning = "01000"

	// StateOptionValueChanged flags an input value that was replaced
	// with a usable substitute.
	StateOptionValueChanged = "01S02"

	// StateStringTruncated flags a value stored only in part.
	StateStringTruncated = "01004"

	// StateInvalidAttribute flags an unusable option value.
	StateInvalidAttribute = "HY024"
)

// Record is one diagnostic entry: a state code and a human-readable
// message.
type Record struct {
	State   string
	Message string
}

func (r Record) String() string {
	return fmt.Sprintf("[%s] %s", r.State, r.Message)
}

// Storage collects diagnostic records in the order they were raised.
// The zero value is ready to use.
type Storage struct {
	records []Record
}

// AddStatusRecord appends a record.
func (s *Storage) AddStatusRecord(state, message string) {
	s.records = append(s.records, Record{State: state, Message: message})
}

// Records returns the accumulated records, oldest first.
func (s *Storage) Records() []Record {
	return s.records
}

// Len returns the number of accumulated records.
func (s *Storage) Len() int {
	return len(s.records)
}

// Reset discards all records.
func (s *Storage) Reset() {
	s.records = s.records[:0]
}
