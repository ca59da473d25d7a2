package commands_test

import (
	"testing"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteCollectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteCollectionCommand(7)
	require.NoError(t, err)

	aggregate := storedCollection(t, 7, collection.Ready)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(event ports.Event) bool {
		return event.Name == ports.EventCollectionCompleted
	})).Once()

	h := commands.NewCompleteCollectionCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, collection.Collected, updated.Status())
	require.NotNil(t, updated.CollectedAt())
	publisher.AssertExpectations(t)
}

func TestCompleteCollectionCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteCollectionCommand(7)
	require.NoError(t, err)

	aggregate := storedCollection(t, 7, collection.Cancelled)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCompleteCollectionCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCompleteCollectionCommandHandler_Handle_NoEventOnCommitFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteCollectionCommand(7)
	require.NoError(t, err)

	aggregate := storedCollection(t, 7, collection.Ready)

	repo := new(MockCollectionRepository)
	uow := new(MockCollectionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCollectionUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCompleteCollectionCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
