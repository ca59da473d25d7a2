package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmitCollectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitCollectionCommand("Jane Doe", testBarcode)
	require.NoError(t, err)

	aggregate := storedCollection(t, 7, collection.Ready)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, cmd.Barcode()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(event ports.Event) bool {
		return event.Name == ports.EventNewCollection
	})).Once()

	h := commands.NewSubmitCollectionCommandHandler(factory, publisher, discardLogger())
	collected, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, collection.Collected, collected.Status())
	require.NotNil(t, collected.CollectedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSubmitCollectionCommandHandler_Handle_NameMismatchStillCollects(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitCollectionCommand("Someone Else", testBarcode)
	require.NoError(t, err)

	aggregate := storedCollection(t, 7, collection.Ready)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, cmd.Barcode()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Once()

	h := commands.NewSubmitCollectionCommandHandler(factory, publisher, discardLogger())
	collected, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, collection.Collected, collected.Status())
	publisher.AssertExpectations(t)
}

func TestSubmitCollectionCommandHandler_Handle_GuardRejection(t *testing.T) {
	testCases := []struct {
		name   string
		status collection.Status
		reason string
	}{
		{"pending order", collection.Pending, collection.ReasonStillBeingPrepared},
		{"already collected order", collection.Collected, collection.ReasonAlreadyCollected},
		{"cancelled order", collection.Cancelled, collection.ReasonCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewSubmitCollectionCommand("Jane Doe", testBarcode)
			require.NoError(t, err)

			aggregate := storedCollection(t, 7, tc.status)

			repo := new(MockCollectionRepository)
			uow := new(MockCollectionUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("CollectionRepository").Return(repo).Once(),
				repo.On("GetByBarcode", mock.Anything, cmd.Barcode()).Return(aggregate, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockCollectionUoWFactory)
			factory.On("Create").Return(uow).Once()

			publisher := new(MockEventPublisher)

			h := commands.NewSubmitCollectionCommandHandler(factory, publisher, discardLogger())
			_, err = h.Handle(ctx, cmd)

			require.Error(t, err)
			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tc.reason, transitionErr.Reason)

			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitCollectionCommandHandler_Handle_UnknownBarcode(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitCollectionCommand("Jane Doe", testBarcode)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("barcode", testBarcode)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, cmd.Barcode()).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewSubmitCollectionCommandHandler(factory, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitCollectionCommandHandler_Handle_NoEventOnCommitFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitCollectionCommand("Jane Doe", testBarcode)
	require.NoError(t, err)

	aggregate := storedCollection(t, 7, collection.Ready)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, cmd.Barcode()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewSubmitCollectionCommandHandler(factory, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitCollectionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitCollectionCommand{} // not constructed properly

	factory := new(MockCollectionUoWFactory)
	publisher := new(MockEventPublisher)

	h := commands.NewSubmitCollectionCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
