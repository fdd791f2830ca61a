package order

import (
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/pkg/errs"
)

const (
	numberPrefix = "ORD"
	numberDigits = 6
	numberModulo = 1_000_000
)

// ErrNumberIsRequired is returned for a blank order number.
var ErrNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")

// Number is the human-facing order number, e.g. "ORD123456".
type Number struct {
	value string
}

// GenerateNumber derives a number from the last six decimal digits of the
// Unix-millisecond timestamp of now. Two drafts generated in the same
// millisecond, or exactly 1_000_000 ms apart, share a number; uniqueness is
// left to the backend.
func GenerateNumber(now time.Time) Number {
	ms := now.UnixMilli() % numberModulo
	if ms < 0 {
		ms += numberModulo
	}
	return Number{value: fmt.Sprintf("%s%0*d", numberPrefix, numberDigits, ms)}
}

// NumberFromString wraps a number read back from the backend.
func NumberFromString(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, ErrNumberIsRequired
	}
	return Number{value: s}, nil
}

func (n Number) IsZero() bool {
	return n.value == ""
}

func (n Number) String() string {
	return n.value
}
