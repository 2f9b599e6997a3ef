package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/catalog"
)

// ProductRequest is the product create/update body.
type ProductRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	product, err := s.catalog.CreateProduct(ctx.Request().Context(), catalog.Product{
		TenantID:  tenantID(ctx),
		ProductID: request.ProductID,
		Name:      request.Name,
		Price:     request.Price,
		Category:  request.Category,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.catalog.ListProducts(ctx.Request().Context(), tenantID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:product_id.
func (s *Server) GetProduct(ctx echo.Context) error {
	product, err := s.catalog.GetProduct(ctx.Request().Context(), tenantID(ctx), ctx.Param("product_id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/v1/products/:product_id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	product, err := s.catalog.UpdateProduct(ctx.Request().Context(), catalog.Product{
		TenantID:  tenantID(ctx),
		ProductID: ctx.Param("product_id"),
		Name:      request.Name,
		Price:     request.Price,
		Category:  request.Category,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:product_id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	if err := s.catalog.DeleteProduct(ctx.Request().Context(), tenantID(ctx), ctx.Param("product_id")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UserRequest is the user create/update body.
type UserRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var request UserRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	user, err := s.catalog.CreateUser(ctx.Request().Context(), catalog.User{
		TenantID: tenantID(ctx),
		UserID:   request.UserID,
		Email:    request.Email,
		Name:     request.Name,
		Role:     request.Role,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.catalog.ListUsers(ctx.Request().Context(), tenantID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/:user_id.
func (s *Server) GetUser(ctx echo.Context) error {
	user, err := s.catalog.GetUser(ctx.Request().Context(), tenantID(ctx), ctx.Param("user_id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/v1/users/:user_id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	var request UserRequest
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, http.StatusBadRequest, "invalid request body")
	}

	user, err := s.catalog.UpdateUser(ctx.Request().Context(), catalog.User{
		TenantID: tenantID(ctx),
		UserID:   ctx.Param("user_id"),
		Email:    request.Email,
		Name:     request.Name,
		Role:     request.Role,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:user_id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	if err := s.catalog.DeleteUser(ctx.Request().Context(), tenantID(ctx), ctx.Param("user_id")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
