package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/pkg/errs"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product. A duplicate key is a state conflict.
func (r *GormProductRepository) Add(ctx context.Context, product catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("product already exists", err)
		}
		return err
	}
	return nil
}

// Get retrieves one product.
func (r *GormProductRepository) Get(ctx context.Context, tenantID, productID string) (catalog.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND product_id = ?", tenantID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", productID)
		}
		return catalog.Product{}, err
	}
	return productToDomain(dto), nil
}

// FindByTenant retrieves the tenant's catalog ordered by name.
func (r *GormProductRepository) FindByTenant(ctx context.Context, tenantID string) ([]catalog.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&dtos, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, productToDomain(dto))
	}
	return products, nil
}

// Update replaces an existing product.
func (r *GormProductRepository) Update(ctx context.Context, product catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("tenant_id = ? AND product_id = ?", product.TenantID, product.ProductID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", product.ProductID)
	}
	return nil
}

// Delete removes a product.
func (r *GormProductRepository) Delete(ctx context.Context, tenantID, productID string) error {
	result := r.db.WithContext(ctx).
		Delete(&ProductDTO{}, "tenant_id = ? AND product_id = ?", tenantID, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", productID)
	}
	return nil
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user record. A duplicate key is a state conflict.
func (r *GormUserRepository) Add(ctx context.Context, user catalog.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("user already exists", err)
		}
		return err
	}
	return nil
}

// Get retrieves one user record.
func (r *GormUserRepository) Get(ctx context.Context, tenantID, userID string) (catalog.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND user_id = ?", tenantID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.User{}, errs.NewObjectNotFoundError("user", userID)
		}
		return catalog.User{}, err
	}
	return userToDomain(dto), nil
}

// FindByTenant retrieves the tenant's users ordered by user id.
func (r *GormUserRepository) FindByTenant(ctx context.Context, tenantID string) ([]catalog.User, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&dtos, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}

	users := make([]catalog.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, userToDomain(dto))
	}
	return users, nil
}

// Update replaces an existing user record.
func (r *GormUserRepository) Update(ctx context.Context, user catalog.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("tenant_id = ? AND user_id = ?", user.TenantID, user.UserID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", user.UserID)
	}
	return nil
}

// Delete removes a user record.
func (r *GormUserRepository) Delete(ctx context.Context, tenantID, userID string) error {
	result := r.db.WithContext(ctx).
		Delete(&UserDTO{}, "tenant_id = ? AND user_id = ?", tenantID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", userID)
	}
	return nil
}
