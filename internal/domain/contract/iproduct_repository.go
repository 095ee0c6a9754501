package contract

import (
	"context"

	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// ProductFilterOptions are the optional listing predicates. Nil fields are
// not applied.
type ProductFilterOptions struct {
	Category *entity.ProductCategory
	Location *string
	MinPrice *float64
	MaxPrice *float64
	Search   *string
}

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	// ListProducts returns matching products newest first, with the owner
	// summary joined in.
	ListProducts(ctx context.Context, opts *ProductFilterOptions) ([]entity.Product, error)
	// ListProductsByOwner returns the owner's products, newest first.
	ListProductsByOwner(ctx context.Context, ownerID string) ([]entity.Product, error)
	// UpdateProduct replaces an existing product and returns the updated record.
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
