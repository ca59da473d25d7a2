package commands

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new click-and-collect
// order. The barcode is always generated server-side; the order number is
// generated unless the caller supplies one.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("Jane Doe", "jane@example.com", "", "",
//	    []collection.Item{{Name: "Oat milk", Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerEmail string
	customerPhone string
	orderNumber   string
	items         []collection.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// The customer name is required; email, phone, order number, and items are
// optional. Item lines, when present, must carry a name and a positive
// quantity.
func NewPlaceOrderCommand(
	customerName string,
	customerEmail string,
	customerPhone string,
	orderNumber string,
	items []collection.Item,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		orderNumber:   orderNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerName returns the name the order is placed under.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the optional contact email.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the optional contact phone number.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// OrderNumber returns the caller-supplied order number, empty when one should
// be generated.
func (c PlaceOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Items returns the ordered item lines.
func (c PlaceOrderCommand) Items() []collection.Item {
	return c.items
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setItems(items []collection.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
