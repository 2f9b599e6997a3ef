package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSuspendOrderCommand(t *testing.T) {
	t.Run("should require step and token together", func(t *testing.T) {
		_, err := commands.NewSuspendOrderCommand(testKey(t), "PACK", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewSuspendOrderCommand(testKey(t), "", "T1")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSuspendOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should persist the suspension marker", func(t *testing.T) {
		key := testKey(t)
		cmd, err := commands.NewSuspendOrderCommand(key, "PACK", "T1")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, key).Return(storedOrder(t, key), nil).Once()
		repo.On("SetSuspension", mock.Anything, key, mock.MatchedBy(func(s order.Suspension) bool {
			return s.Step() == "PACK" && s.TaskToken() == "T1"
		})).Return(nil).Once()

		h := commands.NewSuspendOrderCommandHandler(repo, discardLogger())
		require.NoError(t, h.Handle(t.Context(), cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should reject suspending a terminal order", func(t *testing.T) {
		key := testKey(t)
		cmd, err := commands.NewSuspendOrderCommand(key, "PACK", "T1")
		require.NoError(t, err)

		stored := storedOrder(t, key)
		_, err = stored.Cancel("client request", "cust-1", stored.CreatedAt())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, key).Return(stored, nil).Once()

		h := commands.NewSuspendOrderCommandHandler(repo, discardLogger())
		err = h.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		repo.AssertNotCalled(t, "SetSuspension", mock.Anything, mock.Anything, mock.Anything)
	})
}
