package collection

import (
	"fmt"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
)

// Guard-specific reasons surfaced to customers when a collection attempt is
// rejected. The API returns these messages unchanged.
const (
	ReasonStillBeingPrepared = "order is still being prepared"
	ReasonAlreadyCollected   = "order has already been collected"
	ReasonCancelled          = "order was cancelled"
)

// Status represents the lifecycle state of a collection order.
// It implements a state machine with defined transitions so orders only ever
// move forward along the customer-facing workflow.
//
// State transitions:
//
//	Pending ──markReady──> Ready ──submitCollection──> Collected
//	   │                     │                             │
//	   └──────cancel─────────┴────────────cancel───────────┘
//	                                                   (administrative)
//
// Collected and Cancelled are terminal. The administrative "complete" action
// is the same terminal event as Collected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed but not yet
	// prepared by staff.
	Pending

	// Ready indicates staff marked the order as prepared and waiting for
	// the customer.
	Ready

	// Collected indicates the customer presented the barcode and the order
	// left the shelf. Terminal.
	Collected

	// Cancelled indicates an explicit administrative cancellation. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Ready:     "ready",
		Collected: "collected",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Ready:     "ready",
		Collected: "collected",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the lowercase wire form of a status, as used in the
// status query filter. Returns a ValueIsInvalidError for anything else.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four canonical states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further customer-facing transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Collected || s == Cancelled
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Pending -> Ready
//
// Returns (0, error) for every other source status.
func (s Status) MarkReady() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), "markReady",
			fmt.Sprintf("only pending orders can be marked ready, order is %s", s))
	}
	return Ready, nil
}

// ValidateCollect checks the submitCollection guard without performing the
// transition. The returned error carries the guard-specific reason shown to
// the customer.
//
// Guard:
//   - Pending   -> rejected, still being prepared
//   - Collected -> rejected, already collected
//   - Cancelled -> rejected, order was cancelled
//   - Ready     -> allowed
func (s Status) ValidateCollect() error {
	switch s {
	case Ready:
		return nil
	case Pending:
		return errs.NewInvalidTransitionError(s.String(), "submitCollection", ReasonStillBeingPrepared)
	case Collected:
		return errs.NewInvalidTransitionError(s.String(), "submitCollection", ReasonAlreadyCollected)
	case Cancelled:
		return errs.NewInvalidTransitionError(s.String(), "submitCollection", ReasonCancelled)
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// Collect transitions the status to Collected as the result of a customer
// collection attempt. See ValidateCollect for the guard.
func (s Status) Collect() (Status, error) {
	if err := s.ValidateCollect(); err != nil {
		return 0, err
	}
	return Collected, nil
}

// Complete transitions the status to Collected as an explicit administrative
// action. Unlike Collect it also accepts Pending and Ready sources, and is a
// no-op transition on an already Collected order; "complete" and "collected"
// are the same terminal event.
//
// Invalid transitions:
//   - Cancelled -> Collected (cancelled orders cannot be completed)
func (s Status) Complete() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete", ReasonCancelled)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Collected, nil
}

// Cancel transitions the status to Cancelled as an explicit administrative
// action. Allowed from any valid state except Cancelled itself.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel",
			"order is already cancelled")
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}
