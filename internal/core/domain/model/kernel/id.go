package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"ordermanagement/internal/pkg/errs"
)

// ID is a backend-assigned identity. Valid IDs are strictly positive;
// the zero value means "no identity" (e.g. no product selected).
type ID int64

// NewID validates v and returns it as an ID.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identity such as a path parameter.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not an integer", s))
	}
	return NewID(v)
}

// Validate returns an error unless the ID is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
