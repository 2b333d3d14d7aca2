package appbuf

import (
	"strings"
	"time"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

func (b *DataBuffer) readDateStruct() (godbc.DateStruct, bool, error) {
	data, ok, err := b.readStruct(godbc.DateStructSize)
	if err != nil || !ok {
		return godbc.DateStruct{}, false, err
	}
	var ds godbc.DateStruct
	if err := ds.UnmarshalBinary(data); err != nil {
		return godbc.DateStruct{}, false, err
	}
	return ds, true, nil
}

func (b *DataBuffer) readTimeStruct() (godbc.TimeStruct, bool, error) {
	data, ok, err := b.readStruct(godbc.TimeStructSize)
	if err != nil || !ok {
		return godbc.TimeStruct{}, false, err
	}
	var ts godbc.TimeStruct
	if err := ts.UnmarshalBinary(data); err != nil {
		return godbc.TimeStruct{}, false, err
	}
	return ts, true, nil
}

func (b *DataBuffer) readTimestampStruct() (godbc.TimestampStruct, bool, error) {
	data, ok, err := b.readStruct(godbc.TimestampStructSize)
	if err != nil || !ok {
		return godbc.TimestampStruct{}, false, err
	}
	var ts godbc.TimestampStruct
	if err := ts.UnmarshalBinary(data); err != nil {
		return godbc.TimestampStruct{}, false, err
	}
	return ts, true, nil
}

// parseTemporal tries the given layouts in order against trimmed text.
func (b *DataBuffer) parseTemporal(layouts ...string) (time.Time, error) {
	s, err := b.GetString(32)
	if err != nil {
		return time.Time{}, err
	}
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t, nil
		}
	}
	return time.Time{}, nil
}

// GetDate pulls the value as a calendar date at midnight UTC. A
// time-of-day source maps to the epoch date.
func (b *DataBuffer) GetDate() (time.Time, error) {
	switch b.typ {
	case sqltype.Date:
		ds, ok, err := b.readDateStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(int(ds.Year), time.Month(ds.Month), int(ds.Day), 0, 0, 0, 0, time.UTC), nil
	case sqltype.Time:
		if _, ok, err := b.readTimeStruct(); err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	case sqltype.Timestamp:
		ts, ok, err := b.readTimestampStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(int(ts.Year), time.Month(ts.Month), int(ts.Day), 0, 0, 0, 0, time.UTC), nil
	case sqltype.Char, sqltype.Wchar:
		t, err := b.parseTemporal(timestampLayout, dateLayout)
		if err != nil || t.IsZero() {
			return time.Time{}, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, nil
	}
}

// GetTime pulls the value as a time of day anchored to the epoch date.
func (b *DataBuffer) GetTime() (time.Time, error) {
	switch b.typ {
	case sqltype.Time:
		ts, ok, err := b.readTimeStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(1970, time.January, 1, int(ts.Hour), int(ts.Minute), int(ts.Second), 0, time.UTC), nil
	case sqltype.Timestamp:
		ts, ok, err := b.readTimestampStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(1970, time.January, 1, int(ts.Hour), int(ts.Minute), int(ts.Second), int(ts.Fraction), time.UTC), nil
	case sqltype.Char, sqltype.Wchar:
		t, err := b.parseTemporal(timeLayout)
		if err != nil || t.IsZero() {
			return time.Time{}, err
		}
		return time.Date(1970, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	default:
		return time.Time{}, nil
	}
}

// GetTimestamp pulls the value as a full point in time in UTC.
func (b *DataBuffer) GetTimestamp() (time.Time, error) {
	switch b.typ {
	case sqltype.Date:
		ds, ok, err := b.readDateStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(int(ds.Year), time.Month(ds.Month), int(ds.Day), 0, 0, 0, 0, time.UTC), nil
	case sqltype.Time:
		ts, ok, err := b.readTimeStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(1970, time.January, 1, int(ts.Hour), int(ts.Minute), int(ts.Second), 0, time.UTC), nil
	case sqltype.Timestamp:
		ts, ok, err := b.readTimestampStruct()
		if err != nil || !ok {
			return time.Time{}, err
		}
		return time.Date(int(ts.Year), time.Month(ts.Month), int(ts.Day),
			int(ts.Hour), int(ts.Minute), int(ts.Second), int(ts.Fraction), time.UTC), nil
	case sqltype.Char, sqltype.Wchar:
		return b.parseTemporal(timestampLayout, dateLayout)
	default:
		return time.Time{}, nil
	}
}
