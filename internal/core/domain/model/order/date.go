package order

import (
	"strings"
	"time"

	"ordermanagement/internal/pkg/errs"
)

const dateLayout = time.DateOnly

// ErrDateIsRequired is returned for a blank order date.
var ErrDateIsRequired = errs.NewValueIsRequiredError("orderDate")

// Date is a calendar day in UTC, rendered as YYYY-MM-DD.
type Date struct {
	t time.Time
}

// DateFromTime truncates t to its UTC calendar day.
func DateFromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts either a full RFC 3339 timestamp, as the backend stores it,
// or a bare YYYY-MM-DD day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrDateIsRequired
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateFromTime(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return DateFromTime(t), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("orderDate", err)
	}
	return DateFromTime(t), nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}
