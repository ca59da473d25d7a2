package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("collection", int64(42))

		assert.Equal(t, "collection", err.ParamName)
		assert.Equal(t, int64(42), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
		assert.Contains(t, err.Error(), "object not found")
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("barcode", "MNS-20250115-A3X9K2", cause)

		assert.Equal(t, "barcode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: barcode, ID is: MNS-20250115-A3X9K2 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should match sentinel via errors.Is", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", errs.NewObjectNotFoundError("collection", int64(1)))
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("barcode", "MNS-20250115-A3X9K2")

		assert.Equal(t, "barcode", err.ParamName)
		assert.Equal(t, "MNS-20250115-A3X9K2", err.ID)
		assert.Equal(t, "object already exists: MNS-20250115-A3X9K2", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("barcode", "MNS-20250115-A3X9K2", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "duplicated key")
		assert.True(t, errors.Is(err, errs.ErrObjectAlreadyExists))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown value")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unknown value)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize should flatten newlines", func(t *testing.T) {
		cause := errors.New("first line\nsecond line")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Contains(t, err.Error(), "first line second line")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer name")

		assert.Equal(t, "customer name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("customer name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customer name (cause: missing field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("pending", "submitCollection", "order is still being prepared")

		assert.Equal(t, "pending", err.From)
		assert.Equal(t, "submitCollection", err.Event)
		assert.Equal(t, "order is still being prepared", err.Reason)
		assert.Equal(t,
			"invalid status transition: submitCollection from pending: order is still being prepared",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("should match sentinel via errors.Is", func(t *testing.T) {
		err := fmt.Errorf("collecting: %w",
			errs.NewInvalidTransitionError("collected", "submitCollection", "order has already been collected"))
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("should expose reason via errors.As", func(t *testing.T) {
		wrapped := fmt.Errorf("collecting: %w",
			errs.NewInvalidTransitionError("cancelled", "submitCollection", "order was cancelled"))

		var transitionErr *errs.InvalidTransitionError
		require.True(t, errors.As(wrapped, &transitionErr))
		assert.Equal(t, "order was cancelled", transitionErr.Reason)
	})
}
