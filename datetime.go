package folio

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeFormat is the ISO-8601 local date-time layout used in persisted
// documents and CSV exports. There is deliberately no zone: timestamps are
// recorded in the user's local wall-clock time.
const DateTimeFormat = "2006-01-02T15:04:05"

// DateTime is a wall-clock timestamp with second granularity.
type DateTime struct {
	time.Time
}

// NewDateTime truncates t to second granularity.
func NewDateTime(t time.Time) DateTime { return DateTime{t.Truncate(time.Second)} }

// Now returns the current wall-clock DateTime.
func Now() DateTime { return NewDateTime(time.Now()) }

// ParseDateTime parses an ISO-8601 local date-time, also accepting the
// RFC 3339 zoned form found in exchange CSV exports.
func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.Parse(DateTimeFormat, s); err == nil {
		return DateTime{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid date-time %q want format %q: %w", s, DateTimeFormat, err)
	}
	return NewDateTime(t), nil
}

func (d DateTime) String() string { return d.Format(DateTimeFormat) }

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = t
	return nil
}

var _ json.Marshaler = (*DateTime)(nil)
var _ json.Unmarshaler = (*DateTime)(nil)
