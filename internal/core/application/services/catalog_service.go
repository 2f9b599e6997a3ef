// Package services holds thin application services for reference data that
// needs no command ceremony: plain keyed CRUD with validation.
package services

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/ports"
)

// CatalogService manages the tenant product catalog and user records.
type CatalogService struct {
	products ports.ProductRepository
	users    ports.UserRepository
}

// NewCatalogService creates the catalog service.
func NewCatalogService(products ports.ProductRepository, users ports.UserRepository) CatalogService {
	return CatalogService{products: products, users: users}
}

// CreateProduct validates and stores a new catalog entry.
func (s CatalogService) CreateProduct(ctx context.Context, product catalog.Product) (catalog.Product, error) {
	if err := product.Validate(); err != nil {
		return catalog.Product{}, err
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := s.products.Add(ctx, product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

// GetProduct retrieves one catalog entry.
func (s CatalogService) GetProduct(ctx context.Context, tenantID, productID string) (catalog.Product, error) {
	return s.products.Get(ctx, tenantID, productID)
}

// ListProducts retrieves the tenant's catalog.
func (s CatalogService) ListProducts(ctx context.Context, tenantID string) ([]catalog.Product, error) {
	return s.products.FindByTenant(ctx, tenantID)
}

// UpdateProduct validates and replaces a catalog entry. Existing orders keep
// the price they were placed with.
func (s CatalogService) UpdateProduct(ctx context.Context, product catalog.Product) (catalog.Product, error) {
	if err := product.Validate(); err != nil {
		return catalog.Product{}, err
	}
	product.UpdatedAt = time.Now().UTC()
	if err := s.products.Update(ctx, product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a catalog entry.
func (s CatalogService) DeleteProduct(ctx context.Context, tenantID, productID string) error {
	return s.products.Delete(ctx, tenantID, productID)
}

// CreateUser validates and stores a new user record.
func (s CatalogService) CreateUser(ctx context.Context, user catalog.User) (catalog.User, error) {
	if err := user.Validate(); err != nil {
		return catalog.User{}, err
	}
	user.CreatedAt = time.Now().UTC()
	if err := s.users.Add(ctx, user); err != nil {
		return catalog.User{}, err
	}
	return user, nil
}

// GetUser retrieves one user record.
func (s CatalogService) GetUser(ctx context.Context, tenantID, userID string) (catalog.User, error) {
	return s.users.Get(ctx, tenantID, userID)
}

// ListUsers retrieves the tenant's users.
func (s CatalogService) ListUsers(ctx context.Context, tenantID string) ([]catalog.User, error) {
	return s.users.FindByTenant(ctx, tenantID)
}

// UpdateUser validates and replaces a user record.
func (s CatalogService) UpdateUser(ctx context.Context, user catalog.User) (catalog.User, error) {
	if err := user.Validate(); err != nil {
		return catalog.User{}, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return catalog.User{}, err
	}
	return user, nil
}

// DeleteUser removes a user record.
func (s CatalogService) DeleteUser(ctx context.Context, tenantID, userID string) error {
	return s.users.Delete(ctx, tenantID, userID)
}
