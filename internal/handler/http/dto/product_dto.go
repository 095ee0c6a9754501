package dto

// Request DTOs for Product Handlers

// CreateProductRequest defines the JSON body for creating a listing.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=vegetables fruits grains dairy livestock other"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	Quantity    float64  `json:"quantity" binding:"required,gte=0"`
	Unit        string   `json:"unit" binding:"required,oneof=kg g lb ton piece dozen liter"`
	Images      []string `json:"images"`
	Location    string   `json:"location" binding:"required"`
}

// UpdateProductRequest defines the JSON body for updating a listing.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,oneof=vegetables fruits grains dairy livestock other"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,gte=0"`
	Unit        *string  `json:"unit" binding:"omitempty,oneof=kg g lb ton piece dozen liter"`
	Images      []string `json:"images"`
	Location    *string  `json:"location"`
	IsAvailable *bool    `json:"isAvailable"`
}

// ListProductsQuery defines the optional listing filters.
type ListProductsQuery struct {
	Category string   `form:"category" binding:"omitempty,oneof=vegetables fruits grains dairy livestock other"`
	Location string   `form:"location"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	Search   string   `form:"search"`
}
