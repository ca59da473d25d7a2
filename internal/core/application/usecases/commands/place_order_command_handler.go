package commands

import (
	"context"
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
)

// maxBarcodeAttempts bounds the regeneration loop on barcode collisions.
// A collision requires two identical 6-character codes on the same day, so
// a second attempt is already rare and a third practically unreachable.
const maxBarcodeAttempts = 3

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Generates the barcode and, if absent, the order number, and creates the
// record in Pending status. The store's unique constraint on the barcode is
// the uniqueness source of truth: on a conflict the handler regenerates the
// barcode and retries with a fresh transaction.
type PlaceOrderCommandHandler struct {
	uowFactory    CollectionUoWFactory
	barcodePrefix string
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// An empty barcodePrefix falls back to the default store prefix.
func NewPlaceOrderCommandHandler(uowFactory CollectionUoWFactory, barcodePrefix string) PlaceOrderCommandHandler {
	if barcodePrefix == "" {
		barcodePrefix = kernel.DefaultBarcodePrefix
	}
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		barcodePrefix: barcodePrefix,
	}
}

// Handle processes the place-order command and returns the created record,
// including its store-assigned ID and generated identifiers.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*collection.Collection, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderNumber, err := resolveOrderNumber(cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	var lastErr error
	for range maxBarcodeAttempts {
		barcode, barcodeErr := kernel.GenerateBarcode(h.barcodePrefix)
		if barcodeErr != nil {
			return nil, barcodeErr
		}

		created, attemptErr := h.tryPlace(ctx, cmd, barcode, orderNumber)
		if attemptErr == nil {
			return created, nil
		}
		if !errors.Is(attemptErr, errs.ErrObjectAlreadyExists) {
			return nil, attemptErr
		}
		lastErr = attemptErr
	}

	return nil, lastErr
}

// tryPlace runs one create attempt in its own transaction so a barcode
// conflict leaves no partial state behind.
func (h *PlaceOrderCommandHandler) tryPlace(
	ctx context.Context,
	cmd PlaceOrderCommand,
	barcode kernel.Barcode,
	orderNumber kernel.OrderNumber,
) (*collection.Collection, error) {
	aggregate, err := collection.NewCollection(
		cmd.CustomerName(),
		cmd.CustomerEmail(),
		cmd.CustomerPhone(),
		barcode,
		orderNumber,
		cmd.Items(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CollectionRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func resolveOrderNumber(supplied string) (kernel.OrderNumber, error) {
	if supplied == "" {
		return kernel.GenerateOrderNumber(), nil
	}
	return kernel.NewOrderNumber(supplied)
}
