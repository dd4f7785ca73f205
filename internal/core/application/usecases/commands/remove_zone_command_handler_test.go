package commands_test

import (
	"testing"

	"geozone/internal/core/application/usecases/commands"
	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/model/zone"
	"geozone/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveZoneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing, err := zone.NewZone(kernel.NewUUID(), "doomed", testPolygon(t))
	require.NoError(t, err)

	cmd, err := commands.NewRemoveZoneCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockZoneUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Delete", mock.Anything, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			evt, ok := e.(events.ZoneUpdated)
			return ok && evt.Action == events.ZoneRemoved && evt.Name == "doomed"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockZoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveZoneCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRemoveZoneCommandHandler_Handle_ZoneNotFound(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	cmd, err := commands.NewRemoveZoneCommand(zoneID)
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockZoneUoW)
	notFound := errs.NewObjectNotFoundError("zone", zoneID.String())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, zoneID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockZoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveZoneCommandHandler(factory, new(MockEventPublisher))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestNewRemoveZoneCommand_Invalid(t *testing.T) {
	_, err := commands.NewRemoveZoneCommand(kernel.UUID{})
	require.Error(t, err)

	cmd := commands.RemoveZoneCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRemoveZoneCommandIsNotConstructed)
}
