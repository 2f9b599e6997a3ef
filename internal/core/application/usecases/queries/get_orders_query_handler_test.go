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

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	t.Run("should reject an unrecognized status", func(t *testing.T) {
		_, err := queries.NewGetOrdersByStatusQuery("LIMA_CENTRO", order.Status("FLYING"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetOrdersQueryHandler_Handle(t *testing.T) {
	base := time.Now().UTC().Add(-time.Hour)

	t.Run("should list orders by status", func(t *testing.T) {
		stored := orderAt(t, testKey(t), base, "25.00")

		repo := new(MockOrderRepository)
		repo.On("FindByStatus", mock.Anything, "LIMA_CENTRO", order.StatusPending).
			Return([]*order.Order{stored}, nil).Once()

		query, err := queries.NewGetOrdersByStatusQuery("LIMA_CENTRO", order.StatusPending)
		require.NoError(t, err)

		h := queries.NewGetOrdersQueryHandler(repo)
		summaries, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, stored.Key().OrderID(), summaries[0].OrderID)
		assert.Equal(t, order.StatusPending, summaries[0].Status)
		repo.AssertExpectations(t)
	})

	t.Run("should list orders by customer", func(t *testing.T) {
		stored := orderAt(t, testKey(t), base, "25.00")

		repo := new(MockOrderRepository)
		repo.On("FindByCustomer", mock.Anything, "LIMA_CENTRO", "cust-1").
			Return([]*order.Order{stored}, nil).Once()

		query, err := queries.NewGetOrdersByCustomerQuery("LIMA_CENTRO", "cust-1")
		require.NoError(t, err)

		h := queries.NewGetOrdersQueryHandler(repo)
		summaries, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "cust-1", summaries[0].CustomerID)
	})

	t.Run("empty result is an empty slice, not nil", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("FindByCustomer", mock.Anything, "LIMA_CENTRO", "cust-9").
			Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetOrdersByCustomerQuery("LIMA_CENTRO", "cust-9")
		require.NoError(t, err)

		h := queries.NewGetOrdersQueryHandler(repo)
		summaries, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}
