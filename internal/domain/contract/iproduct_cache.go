package contract

import (
	"context"

	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// CachedProductsPage is the cached payload for list endpoints.
type CachedProductsPage struct {
	Products []entity.Product `json:"products"`
}

// IProductCache defines caching operations for product listings.
type IProductCache interface {
	// Detail (by id)
	GetProductByID(ctx context.Context, id string) (*entity.Product, bool, error)
	SetProductByID(ctx context.Context, id string, product *entity.Product) error
	InvalidateProductByID(ctx context.Context, id string) error

	// List pages (key built by usecase)
	GetProductsPage(ctx context.Context, key string) (*CachedProductsPage, bool, error)
	SetProductsPage(ctx context.Context, key string, page *CachedProductsPage) error
	InvalidateProductLists(ctx context.Context) error
}
