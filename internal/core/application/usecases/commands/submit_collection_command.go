package commands

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrSubmitCollectionCommandIsNotConstructed = errors.New(
	"SubmitCollectionCommand must be created via NewSubmitCollectionCommand constructor",
)

// SubmitCollectionCommand represents a customer presenting a barcode at the
// collection point. The barcode's structural format is validated at command
// construction, before any store lookup happens.
//
// Example:
//
//	cmd, err := NewSubmitCollectionCommand("jane doe", "MNS-20250115-A3X9K2")
//	if err != nil {
//	    // malformed barcode or missing name
//	}
//	collected, err := handler.Handle(ctx, cmd)
type SubmitCollectionCommand struct { //nolint:recvcheck //using for validation
	customerName string
	barcode      kernel.Barcode

	guard guard.ConstructorGuard
}

// NewSubmitCollectionCommand creates a command for a collection attempt.
// The customer name is required; the barcode must match the canonical
// PREFIX-YYYYMMDD-CODE6 structure.
func NewSubmitCollectionCommand(customerName, barcode string) (SubmitCollectionCommand, error) {
	cmd := SubmitCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setBarcode(barcode),
	); err != nil {
		return SubmitCollectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCollectionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCollectionCommandIsNotConstructed)
}

// CustomerName returns the name the customer stated at the collection point.
func (c SubmitCollectionCommand) CustomerName() string {
	return c.customerName
}

// Barcode returns the validated barcode presented by the customer.
func (c SubmitCollectionCommand) Barcode() kernel.Barcode {
	return c.barcode
}

func (c *SubmitCollectionCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = customerName
	return nil
}

func (c *SubmitCollectionCommand) setBarcode(barcode string) error {
	parsed, err := kernel.ParseBarcode(barcode)
	if err != nil {
		return err
	}
	c.barcode = parsed
	return nil
}
