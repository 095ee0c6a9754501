package mocks

import (
	"context"
	"time"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// MockProductUsecase is a mock implementation of the IProductUseCase interface
type MockProductUsecase struct {
	// Control mock behavior
	ShouldFailList      bool
	ShouldFailGetByID   bool
	ShouldFailCreate    bool
	ShouldDenyOwnership bool
	ShouldFailUpdate    bool
	ShouldFailDelete    bool

	// Return values
	MockProduct entity.Product
}

// Ensure MockProductUsecase implements the correct interface for handler.NewProductHandler
var _ usecasecontract.IProductUseCase = (*MockProductUsecase)(nil)

func NewMockProductUsecase() *MockProductUsecase {
	return &MockProductUsecase{
		MockProduct: entity.Product{
			ID:          "mock-product-id",
			Name:        "Fresh Tomatoes",
			Description: "Farm fresh tomatoes",
			Category:    entity.CategoryVegetables,
			Price:       25,
			Quantity:    100,
			Unit:        entity.UnitKilogram,
			Location:    "Nashik",
			OwnerID:     "mock-user-id",
			IsAvailable: true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (m *MockProductUsecase) ListProducts(ctx context.Context, opts *contract.ProductFilterOptions) ([]entity.Product, error) {
	if m.ShouldFailList {
		return nil, apperror.New(apperror.ErrInternal, "internal server error")
	}
	return []entity.Product{m.MockProduct}, nil
}

func (m *MockProductUsecase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.New(apperror.ErrNotFound, "Product not found")
	}
	return &m.MockProduct, nil
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, ownerID string, in usecasecontract.CreateProductInput) (*entity.Product, error) {
	if m.ShouldFailCreate {
		return nil, apperror.New(apperror.ErrValidation, "Invalid product payload")
	}
	product := m.MockProduct
	product.Name = in.Name
	product.OwnerID = ownerID
	return &product, nil
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, callerID, productID string, in usecasecontract.UpdateProductInput) (*entity.Product, error) {
	if m.ShouldDenyOwnership {
		return nil, apperror.New(apperror.ErrForbidden, "Not authorized to update this product")
	}
	if m.ShouldFailUpdate {
		return nil, apperror.New(apperror.ErrNotFound, "Product not found")
	}
	product := m.MockProduct
	if in.Name != nil {
		product.Name = *in.Name
	}
	return &product, nil
}

func (m *MockProductUsecase) DeleteProduct(ctx context.Context, callerID, productID string) error {
	if m.ShouldDenyOwnership {
		return apperror.New(apperror.ErrForbidden, "Not authorized to delete this product")
	}
	if m.ShouldFailDelete {
		return apperror.New(apperror.ErrNotFound, "Product not found")
	}
	return nil
}

func (m *MockProductUsecase) ListProductsByOwner(ctx context.Context, ownerID string) ([]entity.Product, error) {
	if m.ShouldFailList {
		return nil, apperror.New(apperror.ErrInternal, "internal server error")
	}
	return []entity.Product{m.MockProduct}, nil
}
