package kernel

import (
	"fmt"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
)

const orderNumberCodeLength = 4

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through GenerateOrderNumber or NewOrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via GenerateOrderNumber or NewOrderNumber",
)

// OrderNumber is the human-facing order identifier, distinct from the barcode.
// Generated numbers use the form ORD-<unixSeconds>-CODE4, for example
// ORD-1698234567-A3X9. The number is informational only: it is never used for
// lookups and uniqueness is not enforced, so collisions are tolerated.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber creates a new order number from the current time and a
// 4-character random code.
func GenerateOrderNumber() OrderNumber {
	return OrderNumber{
		value: fmt.Sprintf("ORD-%d-%s", time.Now().Unix(), randomCode(orderNumberCodeLength)),
	}
}

// NewOrderNumber wraps a caller-supplied order number. Any non-empty string is
// accepted since the number carries no behavioral meaning.
func NewOrderNumber(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number in its display form.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the order number was properly constructed.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
