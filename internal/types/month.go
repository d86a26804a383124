// Package types implements calendar value types for Budget Zero.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year. The zero value means "no month".
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month{year: year, month: month}
}

// MonthOf returns the Month a date falls in.
func MonthOf(d Date) Month {
	return Month{year: d.Year(), month: d.Month()}
}

// ParseMonth parses a "YYYY-MM" string. An empty string yields the zero Month.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Month{}, nil
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("could not parse month %q, use the YYYY-MM format: %w", s, err)
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// Year returns the year of the month.
func (m Month) Year() int {
	return m.year
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return m.month
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.year, m.month)
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return m.year == 0 && m.month == 0
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return d.Year() == m.year && d.Month() == m.month
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Besides "YYYY-MM", any value accepted by Date is allowed. Everything
// except year and month is then ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*m = Month{}
		return nil
	}

	if len(value) == len("2006-01") {
		month, err := ParseMonth(value)
		if err != nil {
			return err
		}
		*m = month
		return nil
	}

	d, err := ParseDate(value)
	if err != nil {
		return err
	}

	*m = MonthOf(d)
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler so that months can be
// bound from query parameters.
func (m *Month) UnmarshalParam(param string) error {
	month, err := ParseMonth(param)
	if err != nil {
		return err
	}
	*m = month
	return nil
}
