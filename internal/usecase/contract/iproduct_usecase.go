package usecasecontract

import (
	"context"

	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// CreateProductInput is the validated listing payload.
type CreateProductInput struct {
	Name        string
	Description string
	Category    entity.ProductCategory
	Price       float64
	Quantity    float64
	Unit        entity.ProductUnit
	Images      []string
	Location    string
}

// UpdateProductInput carries listing edits. Nil means "leave unchanged".
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *entity.ProductCategory
	Price       *float64
	Quantity    *float64
	Unit        *entity.ProductUnit
	Images      []string
	Location    *string
	IsAvailable *bool
}

// IProductUseCase defines the interface for product listing operations.
type IProductUseCase interface {
	ListProducts(ctx context.Context, opts *contract.ProductFilterOptions) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, ownerID string, in CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, callerID, productID string, in UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, callerID, productID string) error
	ListProductsByOwner(ctx context.Context, ownerID string) ([]entity.Product, error)
}
