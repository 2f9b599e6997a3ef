package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderStatusQueryHandler_Handle(t *testing.T) {
	t.Run("should report status with progress", func(t *testing.T) {
		key := testKey(t)
		stored := orderAt(t, key, time.Now().UTC().Add(-time.Hour), "25.00")
		_, err := stored.Advance(order.ActionCooking, order.Actor{}, time.Now().UTC())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, key).Return(stored, nil).Once()

		query, err := queries.NewGetOrderStatusQuery(key)
		require.NoError(t, err)

		h := queries.NewGetOrderStatusQueryHandler(repo)
		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCooking, response.Status)
		assert.Equal(t, 35, response.Progress)
		assert.Empty(t, response.PendingStep)
	})

	t.Run("should expose the pending step while suspended", func(t *testing.T) {
		key := testKey(t)
		stored := orderAt(t, key, time.Now().UTC().Add(-time.Hour), "25.00")
		_, err := stored.Suspend("PACK", "T1", time.Now().UTC())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, key).Return(stored, nil).Once()

		query, err := queries.NewGetOrderStatusQuery(key)
		require.NoError(t, err)

		h := queries.NewGetOrderStatusQueryHandler(repo)
		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "PACK", response.PendingStep)
	})

	t.Run("should surface not found", func(t *testing.T) {
		key := testKey(t)
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, key).Return(nil, errs.NewObjectNotFoundError("order", key.String())).Once()

		query, err := queries.NewGetOrderStatusQuery(key)
		require.NoError(t, err)

		h := queries.NewGetOrderStatusQueryHandler(repo)
		_, err = h.Handle(t.Context(), query)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
