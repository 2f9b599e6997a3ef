package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/services"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOrderRepository is a map-backed stand-in for the postgres adapter,
// close enough for routing and status-code tests.
type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[string]*order.Order)}
}

func (r *memoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := aggregate.Key().String()
	if _, ok := r.orders[key]; ok {
		return errs.NewStateConflictError("order already exists")
	}
	r.orders[key] = aggregate
	return nil
}

func (r *memoryOrderRepository) Get(_ context.Context, key kernel.OrderKey) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	aggregate, ok := r.orders[key.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", key.String())
	}
	return aggregate, nil
}

func (r *memoryOrderRepository) ApplyTransition(_ context.Context, key kernel.OrderKey, from order.Status, _ order.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	aggregate, ok := r.orders[key.String()]
	if !ok {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	if aggregate.Status() != from {
		return errs.NewStateConflictError("status moved concurrently")
	}
	return nil
}

func (r *memoryOrderRepository) SetSuspension(_ context.Context, key kernel.OrderKey, _ order.Suspension) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[key.String()]; !ok {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return nil
}

func (r *memoryOrderRepository) ClearSuspension(_ context.Context, key kernel.OrderKey, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[key.String()]; !ok {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return nil
}

func (r *memoryOrderRepository) AppendEvent(_ context.Context, key kernel.OrderKey, _ order.EventEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[key.String()]; !ok {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return nil
}

func (r *memoryOrderRepository) FindByTenant(_ context.Context, tenantID string) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*order.Order
	for _, aggregate := range r.orders {
		if aggregate.Key().TenantID() == tenantID {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

func (r *memoryOrderRepository) FindByStatus(ctx context.Context, tenantID string, status order.Status) ([]*order.Order, error) {
	all, _ := r.FindByTenant(ctx, tenantID)
	var result []*order.Order
	for _, aggregate := range all {
		if aggregate.Status() == status {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

func (r *memoryOrderRepository) FindByCustomer(ctx context.Context, tenantID string, customerID string) ([]*order.Order, error) {
	all, _ := r.FindByTenant(ctx, tenantID)
	var result []*order.Order
	for _, aggregate := range all {
		if aggregate.CustomerID() == customerID {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

func (r *memoryOrderRepository) FindStaleSuspensions(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, order.Event) error { return nil }

type noopOrchestrator struct{}

func (noopOrchestrator) Resume(context.Context, string, any) error { return nil }

func newTestEcho(repo *memoryOrderRepository) *echo.Echo {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := noopPublisher{}

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(repo, publisher, log),
		commands.NewAdvanceOrderCommandHandler(repo, publisher, log),
		commands.NewCancelOrderCommandHandler(repo, publisher, log),
		commands.NewSuspendOrderCommandHandler(repo, log),
		commands.NewConfirmStepCommandHandler(repo, noopOrchestrator{}, log),
		queries.NewGetOrderStatusQueryHandler(repo),
		queries.NewGetOrderTimelineQueryHandler(repo),
		queries.NewGetOrdersQueryHandler(repo),
		queries.NewGetDashboardQueryHandler(repo),
		services.CatalogService{},
		nil,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, tenant, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if tenant != "" {
		request.Header.Set("X-Tenant-Id", tenant)
	}
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_TenantMiddleware(t *testing.T) {
	e := newTestEcho(newMemoryOrderRepository())

	t.Run("should reject api calls without tenant header", func(t *testing.T) {
		recorder := doRequest(e, http.MethodGet, "/api/v1/dashboard", "", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "X-Tenant-Id")
	})

	t.Run("health does not need a tenant", func(t *testing.T) {
		recorder := doRequest(e, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create order and return 201 with total", func(t *testing.T) {
		e := newTestEcho(newMemoryOrderRepository())
		body := `{"customer_id":"cust-1","items":[{"product_id":"p1","quantity":2,"price":"10.00"},{"product_id":"p2","quantity":1,"price":"5.00"}]}`

		recorder := doRequest(e, http.MethodPost, "/api/v1/orders", "LIMA_CENTRO", body)

		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		assert.Contains(t, recorder.Body.String(), `"status":"PENDING"`)
		assert.Contains(t, recorder.Body.String(), `"total":"25.00"`)
	})

	t.Run("should return 400 without items", func(t *testing.T) {
		e := newTestEcho(newMemoryOrderRepository())

		recorder := doRequest(e, http.MethodPost, "/api/v1/orders", "LIMA_CENTRO", `{"customer_id":"cust-1","items":[]}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestServer_ErrorMapping(t *testing.T) {
	e := newTestEcho(newMemoryOrderRepository())

	t.Run("unknown order maps to 404", func(t *testing.T) {
		recorder := doRequest(e, http.MethodGet, "/api/v1/orders/missing/status", "LIMA_CENTRO", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("confirm without suspension maps to 409", func(t *testing.T) {
		repo := newMemoryOrderRepository()
		server := newTestEcho(repo)

		created := doRequest(server, http.MethodPost, "/api/v1/orders", "LIMA_CENTRO",
			`{"customer_id":"cust-1","items":[{"product_id":"p1","quantity":1,"price":"5.00"}]}`)
		require.Equal(t, http.StatusCreated, created.Code)

		var orderID string
		for key := range repo.orders {
			orderID = strings.Split(key, "/")[1]
		}

		recorder := doRequest(server, http.MethodPost, "/api/v1/orders/"+orderID+"/confirm/PACK",
			"LIMA_CENTRO", `{"staff_id":"staff-7"}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("invalid status filter maps to 400", func(t *testing.T) {
		recorder := doRequest(e, http.MethodGet, "/api/v1/orders?status=FLYING", "LIMA_CENTRO", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
