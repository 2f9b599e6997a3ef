package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewIngestEventCommand(t *testing.T) {
	t.Run("should reject events missing routing fields", func(t *testing.T) {
		cases := []order.Event{
			{TenantID: "T1", OrderID: "o1"},
			{EventType: order.EventCookingStarted, OrderID: "o1"},
			{EventType: order.EventCookingStarted, TenantID: "T1"},
		}
		for _, event := range cases {
			_, err := commands.NewIngestEventCommand(event)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestIngestEventCommandHandler_Handle(t *testing.T) {
	event := order.Event{
		EventType: order.EventCookingStarted,
		TenantID:  "LIMA_CENTRO",
		OrderID:   "ord-1",
		Status:    order.StatusCooking,
		EventTime: time.Now().UTC().Add(-time.Minute),
	}

	t.Run("should append one labelled event-log entry", func(t *testing.T) {
		cmd, err := commands.NewIngestEventCommand(event)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("AppendEvent", mock.Anything, mock.Anything, mock.MatchedBy(func(e order.EventEntry) bool {
			return e.EventType == order.EventCookingStarted &&
				e.EventLabel == "cooking_started" &&
				e.EventTime.Equal(event.EventTime) &&
				!e.Timestamp.IsZero()
		})).Return(nil).Once()

		h := commands.NewIngestEventCommandHandler(repo, discardLogger())
		require.NoError(t, h.Handle(t.Context(), cmd))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate deliveries append again", func(t *testing.T) {
		cmd, err := commands.NewIngestEventCommand(event)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("AppendEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

		h := commands.NewIngestEventCommandHandler(repo, discardLogger())
		require.NoError(t, h.Handle(t.Context(), cmd))
		require.NoError(t, h.Handle(t.Context(), cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should surface not found for unknown order", func(t *testing.T) {
		cmd, err := commands.NewIngestEventCommand(event)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("AppendEvent", mock.Anything, mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("order", "LIMA_CENTRO/ord-1")).Once()

		h := commands.NewIngestEventCommandHandler(repo, discardLogger())
		err = h.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown event types keep their raw name as label", func(t *testing.T) {
		foreign := event
		foreign.EventType = order.EventType("LoyaltyPointsGranted")
		cmd, err := commands.NewIngestEventCommand(foreign)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("AppendEvent", mock.Anything, mock.Anything, mock.MatchedBy(func(e order.EventEntry) bool {
			return e.EventLabel == "LoyaltyPointsGranted"
		})).Return(nil).Once()

		h := commands.NewIngestEventCommandHandler(repo, discardLogger())
		require.NoError(t, h.Handle(t.Context(), cmd))
		repo.AssertExpectations(t)
	})
}
