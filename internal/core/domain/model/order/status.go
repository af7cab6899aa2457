package order

import (
	"fmt"
	"strings"

	"orderboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Waiting ──> Completed
//
// Completed is terminal. Completing an already completed order is a no-op,
// not an error, so the transition reports whether it was applied.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of every new order.
	Waiting

	// Completed indicates the order has been fulfilled.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Waiting:   "waiting",
		Completed: "completed",
	}
}

// ParseStatus converts the wire form ("waiting", "completed") to a Status.
// Surrounding whitespace and letter case are ignored.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "waiting":
		return Waiting, nil
	case "completed":
		return Completed, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", s),
		)
	}
}

// Validate checks if the Status value is Waiting or Completed.
func (s Status) Validate() error {
	if s != Waiting && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status; "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Complete transitions the status to Completed.
//
// Returns:
//   - (Completed, true, nil) from Waiting
//   - (Completed, false, nil) from Completed; nothing changes
//   - (Unknown, false, error) from any invalid status
func (s Status) Complete() (Status, bool, error) {
	switch s {
	case Waiting:
		return Completed, true, nil
	case Completed:
		return Completed, false, nil
	default:
		return Unknown, false, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
}
