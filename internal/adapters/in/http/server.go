// Package http exposes the service over echo: the tenant-scoped public API,
// the orchestrator-facing internal endpoints, and the health and metrics
// probes.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/application/services"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/metrics"
)

// tenantHeader carries the tenant on every public API call.
const tenantHeader = "X-Tenant-Id"

// WorkflowStarter launches the fulfillment run for a newly created order.
type WorkflowStarter interface {
	Start(ctx context.Context, tenantID, orderID string) error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrder commands.CreateOrderCommandHandler
	advance     commands.AdvanceOrderCommandHandler
	cancel      commands.CancelOrderCommandHandler
	suspend     commands.SuspendOrderCommandHandler
	confirm     commands.ConfirmStepCommandHandler

	getStatus    queries.GetOrderStatusQueryHandler
	getTimeline  queries.GetOrderTimelineQueryHandler
	listOrders   queries.GetOrdersQueryHandler
	getDashboard queries.GetDashboardQueryHandler

	catalog services.CatalogService
	starter WorkflowStarter
}

// NewServer creates the HTTP server facade over the application layer.
// The starter may be nil; order creation then skips workflow launch, which
// is the wiring used by tests and by deployments without an orchestrator.
func NewServer(
	createOrder commands.CreateOrderCommandHandler,
	advance commands.AdvanceOrderCommandHandler,
	cancel commands.CancelOrderCommandHandler,
	suspend commands.SuspendOrderCommandHandler,
	confirm commands.ConfirmStepCommandHandler,
	getStatus queries.GetOrderStatusQueryHandler,
	getTimeline queries.GetOrderTimelineQueryHandler,
	listOrders queries.GetOrdersQueryHandler,
	getDashboard queries.GetDashboardQueryHandler,
	catalog services.CatalogService,
	starter WorkflowStarter,
) *Server {
	return &Server{
		createOrder:  createOrder,
		advance:      advance,
		cancel:       cancel,
		suspend:      suspend,
		confirm:      confirm,
		getStatus:    getStatus,
		getTimeline:  getTimeline,
		listOrders:   listOrders,
		getDashboard: getDashboard,
		catalog:      catalog,
		starter:      starter,
	}
}

// RegisterRoutes wires all routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1", requireTenant)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrdersByStatus)
	api.POST("/orders/:order_id/cancel", s.CancelOrder)
	api.POST("/orders/:order_id/confirm/:step", s.ConfirmStep)
	api.GET("/orders/:order_id/status", s.GetOrderStatus)
	api.GET("/orders/:order_id/timeline", s.GetOrderTimeline)
	api.GET("/customers/:customer_id/orders", s.ListOrdersByCustomer)
	api.GET("/dashboard", s.GetDashboard)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:product_id", s.GetProduct)
	api.PUT("/products/:product_id", s.UpdateProduct)
	api.DELETE("/products/:product_id", s.DeleteProduct)
	api.POST("/users", s.CreateUser)
	api.GET("/users", s.ListUsers)
	api.GET("/users/:user_id", s.GetUser)
	api.PUT("/users/:user_id", s.UpdateUser)
	api.DELETE("/users/:user_id", s.DeleteUser)

	internal := e.Group("/internal/workflow", requireTenant)
	internal.POST("/orders/:order_id/transition", s.ApplyTransition)
	internal.POST("/orders/:order_id/suspend", s.SuspendOrder)
}

// requireTenant rejects any request without the tenant header.
func requireTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if ctx.Request().Header.Get(tenantHeader) == "" {
			return respond(ctx, http.StatusBadRequest, tenantHeader+" header is required")
		}
		return next(ctx)
	}
}

func tenantID(ctx echo.Context) string {
	return ctx.Request().Header.Get(tenantHeader)
}

func orderKey(ctx echo.Context) (kernel.OrderKey, error) {
	return kernel.NewOrderKey(tenantID(ctx), ctx.Param("order_id"))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderResponse confirms order placement.
type CreateOrderResponse struct {
	OrderID string          `json:"order_id"`
	Status  order.Status    `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(tenantID(ctx), request.CustomerID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if s.starter != nil {
		if err := s.starter.Start(ctx.Request().Context(), created.Key().TenantID(), created.Key().OrderID()); err != nil {
			return writeError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: created.Key().OrderID(),
		Status:  created.Status(),
		Total:   created.Total(),
	})
}

// CancelOrderRequest is the POST /orders/:order_id/cancel body.
type CancelOrderRequest struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelled_by"`
}

// CancelOrder handles POST /api/v1/orders/:order_id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	key, err := orderKey(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(key, request.Reason, request.CancelledBy)
	if err != nil {
		return writeError(ctx, err)
	}

	entry, err := s.cancel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"order_id":  key.OrderID(),
		"status":    entry.Status,
		"timestamp": entry.Timestamp,
	})
}

// ConfirmStepRequest is the POST /orders/:order_id/confirm/:step body.
type ConfirmStepRequest struct {
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
}

// ConfirmStep handles POST /api/v1/orders/:order_id/confirm/:step.
func (s *Server) ConfirmStep(ctx echo.Context) error {
	var request ConfirmStepRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	key, err := orderKey(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	staff := order.Actor{StaffID: request.StaffID, StaffName: request.StaffName}
	cmd, err := commands.NewConfirmStepCommand(key, ctx.Param("step"), staff)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirm.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"order_id": key.OrderID(),
		"step":     ctx.Param("step"),
		"result":   "confirmed",
	})
}

// GetOrderStatus handles GET /api/v1/orders/:order_id/status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	key, err := orderKey(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderStatusQuery(key)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// TimelineResponse is the GET /orders/:order_id/timeline payload.
type TimelineResponse struct {
	OrderID    string                     `json:"order_id"`
	Timeline   []queries.TimelineEntry    `json:"timeline"`
	Statistics queries.TimelineStatistics `json:"statistics"`
}

// GetOrderTimeline handles GET /api/v1/orders/:order_id/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	key, err := orderKey(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderTimelineQuery(key)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	entries := make([]queries.TimelineEntry, 0, response.Statistics.TotalEntries)
	for entry := range response.Entries {
		entries = append(entries, entry)
	}

	return ctx.JSON(http.StatusOK, TimelineResponse{
		OrderID:    response.OrderID,
		Timeline:   entries,
		Statistics: response.Statistics,
	})
}

// ListOrdersByStatus handles GET /api/v1/orders?status=S.
func (s *Server) ListOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(tenantID(ctx), order.Status(ctx.QueryParam("status")))
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.listOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, summaries)
}

// ListOrdersByCustomer handles GET /api/v1/customers/:customer_id/orders.
func (s *Server) ListOrdersByCustomer(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerQuery(tenantID(ctx), ctx.Param("customer_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.listOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, summaries)
}

// GetDashboard handles GET /api/v1/dashboard?status=S.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query, err := queries.NewGetDashboardQuery(tenantID(ctx), ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// TransitionRequest is the internal transition body.
type TransitionRequest struct {
	Action    string `json:"action"`
	By        string `json:"by"`
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
}

// ApplyTransition handles POST /internal/workflow/orders/:order_id/transition.
// It is the orchestrator-facing mirror of the workflow activities for
// deployments driving orders from outside.
func (s *Server) ApplyTransition(ctx echo.Context) error {
	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	key, err := orderKey(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	actor := order.Actor{By: request.By, StaffID: request.StaffID, StaffName: request.StaffName}
	cmd, err := commands.NewAdvanceOrderCommand(key, order.Action(request.Action), actor)
	if err != nil {
		return writeError(ctx, err)
	}

	entry, err := s.advance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"order_id":  key.OrderID(),
		"status":    entry.Status,
		"timestamp": entry.Timestamp,
	})
}

// SuspendRequest is the internal suspend body.
type SuspendRequest struct {
	Step      string `json:"step"`
	TaskToken string `json:"task_token"`
}

// SuspendOrder handles POST /internal/workflow/orders/:order_id/suspend.
func (s *Server) SuspendOrder(ctx echo.Context) error {
	var request SuspendRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	key, err := orderKey(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSuspendOrderCommand(key, request.Step, request.TaskToken)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.suspend.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
