package commands_test

import (
	"errors"
	"testing"

	"geozone/internal/core/application/usecases/commands"
	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPolygon(t *testing.T) kernel.Polygon {
	t.Helper()
	vertices := make([]kernel.Coordinate, 0, 4)
	for _, p := range [][2]float64{{0, 0}, {0, 2}, {2, 2}, {2, 0}} {
		coord, err := kernel.NewCoordinate(p[0], p[1])
		require.NoError(t, err)
		vertices = append(vertices, coord)
	}
	polygon, err := kernel.NewPolygon(vertices)
	require.NoError(t, err)
	return polygon
}

func TestNewCreateZoneCommand(t *testing.T) {
	t.Run("valid_inputs", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateZoneCommand(id, "downtown", testPolygon(t))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, id.IsEqual(cmd.ZoneID()))
		assert.Equal(t, "downtown", cmd.Name())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateZoneCommand(kernel.NewUUID(), "", testPolygon(t))
		require.ErrorIs(t, err, commands.ErrZoneNameIsRequired)
	})

	t.Run("unconstructed_polygon_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateZoneCommand(kernel.NewUUID(), "downtown", kernel.Polygon{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		cmd := commands.CreateZoneCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateZoneCommandIsNotConstructed)
	})
}

func TestCreateZoneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), "downtown", testPolygon(t))
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockZoneUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*zone.Zone")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			evt, ok := e.(events.ZoneUpdated)
			return ok && evt.Action == events.ZoneCreated && evt.Active
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockZoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateZoneCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateZoneCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateZoneCommandHandler(new(MockZoneUoWFactory), new(MockEventPublisher))

	err := h.Handle(t.Context(), commands.CreateZoneCommand{})

	require.Error(t, err)
}

func TestCreateZoneCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), "downtown", testPolygon(t))
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockZoneUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockZoneUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCreateZoneCommandHandler(factory, publisher)
	require.Error(t, h.Handle(ctx, cmd))

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
