package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, product catalog.Product) error
	Get(ctx context.Context, tenantID, productID string) (catalog.Product, error)
	FindByTenant(ctx context.Context, tenantID string) ([]catalog.Product, error)
	Update(ctx context.Context, product catalog.Product) error
	Delete(ctx context.Context, tenantID, productID string) error
}

// UserRepository defines the persistence contract for tenant users.
type UserRepository interface {
	Add(ctx context.Context, user catalog.User) error
	Get(ctx context.Context, tenantID, userID string) (catalog.User, error)
	FindByTenant(ctx context.Context, tenantID string) ([]catalog.User, error)
	Update(ctx context.Context, user catalog.User) error
	Delete(ctx context.Context, tenantID, userID string) error
}
