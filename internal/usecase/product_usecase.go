package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

const msgProductNotFound = "Product not found"

// ProductUsecase implements the IProductUseCase interface.
type ProductUsecase struct {
	productRepo   contract.IProductRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	productCache  contract.IProductCache
}

// NewProductUsecase creates a new ProductUsecase instance.
func NewProductUsecase(productRepo contract.IProductRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check if ProductUsecase implements the IProductUseCase
var _ usecasecontract.IProductUseCase = (*ProductUsecase)(nil)

// SetProductCache injects the optional listing cache.
func (uc *ProductUsecase) SetProductCache(cache contract.IProductCache) {
	uc.productCache = cache
}

// buildProductsListCacheKey builds a stable key for list endpoint caching.
func buildProductsListCacheKey(opts *contract.ProductFilterOptions) string {
	cat, loc, search := "", "", ""
	minP, maxP := "", ""
	if opts != nil {
		if opts.Category != nil {
			cat = string(*opts.Category)
		}
		if opts.Location != nil {
			loc = *opts.Location
		}
		if opts.Search != nil {
			search = *opts.Search
		}
		if opts.MinPrice != nil {
			minP = fmt.Sprintf("%g", *opts.MinPrice)
		}
		if opts.MaxPrice != nil {
			maxP = fmt.Sprintf("%g", *opts.MaxPrice)
		}
	}
	return fmt.Sprintf("products:list:c=%s:l=%s:q=%s:min=%s:max=%s", cat, loc, search, minP, maxP)
}

// ListProducts returns listings matching the optional filter, newest first.
func (uc *ProductUsecase) ListProducts(ctx context.Context, opts *contract.ProductFilterOptions) ([]entity.Product, error) {
	if uc.productCache != nil {
		key := buildProductsListCacheKey(opts)
		cached, found, err := uc.productCache.GetProductsPage(ctx, key)
		if err == nil && found && cached != nil {
			return cached.Products, nil
		}
		if err != nil {
			uc.logger.Warnf("cache error: products list key=%s err=%v", key, err)
		}
	}

	products, err := uc.productRepo.ListProducts(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to list products: %v", err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}

	if uc.productCache != nil {
		key := buildProductsListCacheKey(opts)
		_ = uc.productCache.SetProductsPage(ctx, key, &contract.CachedProductsPage{Products: products})
	}
	return products, nil
}

// GetProductByID returns a single listing with its owner summary.
func (uc *ProductUsecase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	if uc.productCache != nil {
		cached, found, err := uc.productCache.GetProductByID(ctx, id)
		if err == nil && found && cached != nil {
			return cached, nil
		}
	}

	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, msgProductNotFound)
		}
		uc.logger.Errorf("failed to retrieve product %s: %v", id, err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}

	if uc.productCache != nil {
		_ = uc.productCache.SetProductByID(ctx, id, product)
	}
	return product, nil
}

// CreateProduct registers a new listing owned by ownerID.
func (uc *ProductUsecase) CreateProduct(ctx context.Context, ownerID string, in usecasecontract.CreateProductInput) (*entity.Product, error) {
	if in.Name == "" || in.Description == "" || in.Location == "" {
		return nil, apperror.New(apperror.ErrValidation, "Missing required fields")
	}
	if !entity.ValidCategory(in.Category) {
		return nil, apperror.Newf(apperror.ErrValidation, "Invalid category: %s", in.Category)
	}
	if !entity.ValidUnit(in.Unit) {
		return nil, apperror.Newf(apperror.ErrValidation, "Invalid unit: %s", in.Unit)
	}
	if in.Price < 0 || in.Quantity < 0 {
		return nil, apperror.New(apperror.ErrValidation, "Price and quantity must not be negative")
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	product := &entity.Product{
		ID:          uc.uuidGenerator.NewUUID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Images:      images,
		Location:    in.Location,
		OwnerID:     ownerID,
		IsAvailable: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.productRepo.CreateProduct(ctx, product); err != nil {
		uc.logger.Errorf("failed to create product: %v", err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to create product")
	}

	if uc.productCache != nil {
		_ = uc.productCache.InvalidateProductLists(ctx)
	}
	return product, nil
}

// UpdateProduct applies edits after checking the caller owns the listing.
func (uc *ProductUsecase) UpdateProduct(ctx context.Context, callerID, productID string, in usecasecontract.UpdateProductInput) (*entity.Product, error) {
	product, err := uc.getOwned(ctx, callerID, productID, "Not authorized to update this product")
	if err != nil {
		return nil, err
	}

	setString(&product.Name, in.Name)
	setString(&product.Description, in.Description)
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, apperror.Newf(apperror.ErrValidation, "Invalid category: %s", *in.Category)
		}
		product.Category = *in.Category
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, apperror.Newf(apperror.ErrValidation, "Invalid unit: %s", *in.Unit)
		}
		product.Unit = *in.Unit
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	setString(&product.Location, in.Location)
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}

	product.UpdatedAt = time.Now()
	updated, err := uc.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		uc.logger.Errorf("failed to update product %s: %v", productID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to update product")
	}

	if uc.productCache != nil {
		_ = uc.productCache.InvalidateProductByID(ctx, productID)
		_ = uc.productCache.InvalidateProductLists(ctx)
	}
	return updated, nil
}

// DeleteProduct removes a listing after checking ownership.
func (uc *ProductUsecase) DeleteProduct(ctx context.Context, callerID, productID string) error {
	if _, err := uc.getOwned(ctx, callerID, productID, "Not authorized to delete this product"); err != nil {
		return err
	}

	if err := uc.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.New(apperror.ErrNotFound, msgProductNotFound)
		}
		uc.logger.Errorf("failed to delete product %s: %v", productID, err)
		return apperror.New(apperror.ErrInternal, "Failed to delete product")
	}

	if uc.productCache != nil {
		_ = uc.productCache.InvalidateProductByID(ctx, productID)
		_ = uc.productCache.InvalidateProductLists(ctx)
	}
	return nil
}

// ListProductsByOwner returns the caller's own listings.
func (uc *ProductUsecase) ListProductsByOwner(ctx context.Context, ownerID string) ([]entity.Product, error) {
	products, err := uc.productRepo.ListProductsByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Errorf("failed to list products for owner %s: %v", ownerID, err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}
	return products, nil
}

// getOwned loads a product and verifies callerID owns it. Ownership, not
// role, is the authorization check here.
func (uc *ProductUsecase) getOwned(ctx context.Context, callerID, productID, forbiddenMsg string) (*entity.Product, error) {
	product, err := uc.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, msgProductNotFound)
		}
		uc.logger.Errorf("failed to retrieve product %s: %v", productID, err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}
	if product.OwnerID != callerID {
		return nil, apperror.New(apperror.ErrForbidden, forbiddenMsg)
	}
	return product, nil
}
