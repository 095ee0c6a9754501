package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	"github.com/smart-agroconnect/api/internal/handler/http/dto"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// ProductHandlerInterface defines the methods for product handler to allow interface-based dependency injection (for testing/mocking)
type ProductHandlerInterface interface {
	ListProducts(*gin.Context)
	GetProduct(*gin.Context)
	CreateProduct(*gin.Context)
	UpdateProduct(*gin.Context)
	DeleteProduct(*gin.Context)
	MyProducts(*gin.Context)
}

// Ensure ProductHandler implements ProductHandlerInterface
var _ ProductHandlerInterface = (*ProductHandler)(nil)

type ProductHandler struct {
	productUsecase usecasecontract.IProductUseCase
}

func NewProductHandler(productUsecase usecasecontract.IProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
	}
}

// ListProducts returns listings matching the optional query filters
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	opts := &contract.ProductFilterOptions{
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
	}
	if query.Category != "" {
		category := entity.ProductCategory(query.Category)
		opts.Category = &category
	}
	if query.Location != "" {
		opts.Location = &query.Location
	}
	if query.Search != "" {
		opts.Search = &query.Search
	}

	products, err := h.productUsecase.ListProducts(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, products)
}

// GetProduct returns a single listing with its owner summary
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUsecase.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, product)
}

// CreateProduct creates a listing owned by the authenticated user
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	product, err := h.productUsecase.CreateProduct(c.Request.Context(), userID.(string), usecasecontract.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.ProductCategory(req.Category),
		Price:       req.Price,
		Quantity:    req.Quantity,
		Unit:        entity.ProductUnit(req.Unit),
		Images:      req.Images,
		Location:    req.Location,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, product)
}

// UpdateProduct applies edits to a listing owned by the caller
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	in := usecasecontract.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Images:      req.Images,
		Location:    req.Location,
		IsAvailable: req.IsAvailable,
	}
	if req.Category != nil {
		category := entity.ProductCategory(*req.Category)
		in.Category = &category
	}
	if req.Unit != nil {
		unit := entity.ProductUnit(*req.Unit)
		in.Unit = &unit
	}

	product, err := h.productUsecase.UpdateProduct(c.Request.Context(), userID.(string), c.Param("id"), in)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, product)
}

// DeleteProduct removes a listing owned by the caller
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.productUsecase.DeleteProduct(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Product removed")
}

// MyProducts returns the authenticated user's own listings
func (h *ProductHandler) MyProducts(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	products, err := h.productUsecase.ListProductsByOwner(c.Request.Context(), userID.(string))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, products)
}
