package collection

import (
	"errors"
	"strings"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
)

var (
	// ErrCollectionIsNotConstructed is returned when a Collection instance was
	// not created through NewCollection or RestoreCollection.
	ErrCollectionIsNotConstructed = errors.New(
		"Collection must be created via NewCollection or RestoreCollection constructor",
	)

	// ErrIDAlreadyAssigned is returned when AssignID is called on a collection
	// that already received its store identifier.
	ErrIDAlreadyAssigned = errors.New("collection ID has already been assigned")
)

// Item is one (name, quantity) line of an order. Items are opaque to the
// lifecycle state machine and only travel through event payloads and storage.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Validate checks that the item carries a name and a positive quantity.
func (i Item) Validate() error {
	if i.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidError("item quantity")
	}
	return nil
}

// Collection is the aggregate root for a click-and-collect order. It owns the
// lifecycle from placement (Pending) through preparation (Ready) to the
// terminal states (Collected, Cancelled) and enforces every transition guard.
//
// Invariants:
//   - customerName is non-empty; comparison during collection is
//     case-insensitive and non-blocking
//   - barcode and orderNumber are valid value objects, immutable once set
//   - status only moves along the transition graph in Status
//   - collectedAt is nil until a transition into Collected and set exactly once
//   - every mutation bumps updatedAt; createdAt never changes
//
// The store-assigned integer ID is zero until the repository persists the
// aggregate and calls AssignID.
type Collection struct {
	id            int64
	customerName  string
	customerEmail string
	customerPhone string
	barcode       kernel.Barcode
	orderNumber   kernel.OrderNumber
	items         []Item
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	collectedAt   *time.Time

	isConstructed bool
}

// NewCollection creates a new collection order in Pending status.
//
// Parameters:
//   - customerName: required, the name the customer will state at pickup
//   - customerEmail, customerPhone: optional contact fields
//   - barcode: the unique collection token (validated value object)
//   - orderNumber: the human-facing order identifier
//   - items: the ordered item lines, each validated
//
// Returns a validation error if any required value is missing or invalid.
func NewCollection(
	customerName string,
	customerEmail string,
	customerPhone string,
	barcode kernel.Barcode,
	orderNumber kernel.OrderNumber,
	items []Item,
) (*Collection, error) {
	now := time.Now()
	c := &Collection{
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setCustomerName(customerName),
		c.setBarcode(barcode),
		c.setOrderNumber(orderNumber),
		c.setItems(items),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCollection reconstructs a collection aggregate from persistence.
// Unlike NewCollection it accepts any valid status and the stored timestamps.
func RestoreCollection(
	id int64,
	customerName string,
	customerEmail string,
	customerPhone string,
	barcode kernel.Barcode,
	orderNumber kernel.OrderNumber,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	collectedAt *time.Time,
) (*Collection, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	c := &Collection{
		id:            id,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		collectedAt:   collectedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setCustomerName(customerName),
		c.setBarcode(barcode),
		c.setOrderNumber(orderNumber),
		c.setItems(items),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Collection instance was properly constructed.
func (c *Collection) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCollectionIsNotConstructed
	}
	return nil
}

// IsEqual compares two collections by their store identifiers.
func (c *Collection) IsEqual(other *Collection) bool {
	return other != nil && c.id != 0 && c.id == other.id
}

// ID returns the store-assigned identifier, zero before first persistence.
func (c *Collection) ID() int64 {
	return c.id
}

// CustomerName returns the name the order was placed under.
func (c *Collection) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the optional contact email.
func (c *Collection) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the optional contact phone number.
func (c *Collection) CustomerPhone() string {
	return c.customerPhone
}

// Barcode returns the unique collection token.
func (c *Collection) Barcode() kernel.Barcode {
	return c.barcode
}

// OrderNumber returns the human-facing order identifier.
func (c *Collection) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// Items returns a copy of the ordered item lines.
func (c *Collection) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Status returns the current lifecycle status.
func (c *Collection) Status() Status {
	return c.status
}

// CreatedAt returns the creation timestamp, set once at placement.
func (c *Collection) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (c *Collection) UpdatedAt() time.Time {
	return c.updatedAt
}

// CollectedAt returns the collection timestamp, or nil while the order has
// not transitioned into Collected.
func (c *Collection) CollectedAt() *time.Time {
	if c.collectedAt == nil {
		return nil
	}
	t := *c.collectedAt
	return &t
}

// AssignID records the store-assigned identifier after first persistence.
// The identifier is immutable: assigning twice is an error.
func (c *Collection) AssignID(id int64) error {
	if c.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("collection id")
	}
	c.id = id
	return nil
}

// MarkReady transitions the order from Pending to Ready, signalling that
// staff finished preparing it.
func (c *Collection) MarkReady() error {
	newStatus, err := c.status.MarkReady()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.touch()
	return nil
}

// SubmitCollection applies a customer collection attempt.
//
// The transition guard (see Status.ValidateCollect) rejects attempts on
// Pending, Collected, and Cancelled orders with a guard-specific reason and
// leaves the aggregate untouched. On a Ready order the status moves to
// Collected and collectedAt is stamped.
//
// The supplied customer name is compared case-insensitively against the
// stored name. A mismatch does NOT block the transition: possession of the
// barcode is treated as sufficient proof of identity, and the mismatch is
// only reported back for logging.
//
// Returns:
//   - nameMatches: whether the supplied name matched the stored one
//   - error: the guard violation, if any
func (c *Collection) SubmitCollection(customerName string) (nameMatches bool, err error) {
	newStatus, err := c.status.Collect()
	if err != nil {
		return false, err
	}

	c.status = newStatus
	c.stampCollectedAt()
	c.touch()
	return strings.EqualFold(customerName, c.customerName), nil
}

// Complete applies the administrative completion action: the order moves to
// the Collected terminal state regardless of whether the customer-facing flow
// reached it, and collectedAt is stamped if it was not already.
func (c *Collection) Complete() error {
	newStatus, err := c.status.Complete()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.stampCollectedAt()
	c.touch()
	return nil
}

// Cancel applies the administrative cancellation action.
func (c *Collection) Cancel() error {
	newStatus, err := c.status.Cancel()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.touch()
	return nil
}

func (c *Collection) touch() {
	c.updatedAt = time.Now()
}

// stampCollectedAt sets collectedAt exactly once.
func (c *Collection) stampCollectedAt() {
	if c.collectedAt == nil {
		now := time.Now()
		c.collectedAt = &now
	}
}

func (c *Collection) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = customerName
	return nil
}

func (c *Collection) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	c.barcode = barcode
	return nil
}

func (c *Collection) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *Collection) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = make([]Item, len(items))
	copy(c.items, items)
	return nil
}
