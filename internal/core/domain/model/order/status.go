package order

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the workflow state of a persisted order. It travels as an
// integer on the wire.
//
// Transitions form a complete graph: any valid status may change to any other
// valid status, including back to Pending.
//
//	Pending <──> InProgress <──> Completed
//	   ^                            │
//	   └────────────────────────────┘
//
// Integers outside the set are displayed as "Unknown" and are never accepted
// as a transition target.
type Status int

const (
	// Pending is the status the backend assigns to a newly created order.
	Pending Status = iota

	// InProgress indicates the order is being worked on.
	InProgress

	// Completed indicates the order is done. It is not final.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Statuses lists the valid statuses in wire order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed}
}

// ParseStatus converts a wire integer into a Status, rejecting unknown codes.
func ParseStatus(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate checks that the status is one of Pending, InProgress or Completed.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the display name of the status, or "Unknown" for codes
// outside the valid set.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the wire representation.
func (s Status) Code() int {
	return int(s)
}

// ChangeTo returns target if it is a valid status. The current status is not
// consulted: every valid status is reachable from every other one, and an order
// whose current code is unknown may still be moved to a valid status.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	return target, nil
}
