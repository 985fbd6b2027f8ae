package gym

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date in ISO form ("2006-01-02"). It is used directly
// as the calendar map key and inside persisted records.
type Date string

// NewDate validates year/month/day as a real calendar date.
func NewDate(year, month, day int) (Date, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", fmt.Errorf("%w: %04d-%02d-%02d is not a valid date", ErrInvalidInput, year, month, day)
	}
	return Date(t.Format(dateLayout)), nil
}

// ParseDate validates an ISO-formatted date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid date", ErrInvalidInput, s)
	}
	return Date(t.Format(dateLayout)), nil
}

func (d Date) String() string { return string(d) }
