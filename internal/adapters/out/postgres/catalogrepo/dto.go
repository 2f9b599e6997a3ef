// Package catalogrepo persists catalog products and tenant users in
// postgres. These are plain keyed rows with no jsonb machinery.
package catalogrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/catalog"
)

// ProductDTO is the database shape of one catalog entry.
type ProductDTO struct {
	TenantID  string          `gorm:"primaryKey;column:tenant_id"`
	ProductID string          `gorm:"primaryKey;column:product_id"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Category  string          `gorm:"column:category"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// UserDTO is the database shape of one tenant user record.
type UserDTO struct {
	TenantID  string    `gorm:"primaryKey;column:tenant_id"`
	UserID    string    `gorm:"primaryKey;column:user_id"`
	Email     string    `gorm:"column:email"`
	Name      string    `gorm:"column:name"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func productFromDomain(product catalog.Product) ProductDTO {
	return ProductDTO{
		TenantID:  product.TenantID,
		ProductID: product.ProductID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func productToDomain(dto ProductDTO) catalog.Product {
	return catalog.Product{
		TenantID:  dto.TenantID,
		ProductID: dto.ProductID,
		Name:      dto.Name,
		Price:     dto.Price,
		Category:  dto.Category,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

func userFromDomain(user catalog.User) UserDTO {
	return UserDTO{
		TenantID:  user.TenantID,
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func userToDomain(dto UserDTO) catalog.User {
	return catalog.User{
		TenantID:  dto.TenantID,
		UserID:    dto.UserID,
		Email:     dto.Email,
		Name:      dto.Name,
		Role:      dto.Role,
		CreatedAt: dto.CreatedAt,
	}
}
