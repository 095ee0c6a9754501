package entity

import (
	"time"
)

// Product is a marketplace listing owned by a single user.
type Product struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Category    ProductCategory `bson:"category" json:"category"`
	Price       float64         `bson:"price" json:"price"`
	Quantity    float64         `bson:"quantity" json:"quantity"`
	Unit        ProductUnit     `bson:"unit" json:"unit"`
	Images      []string        `bson:"images" json:"images"`
	Location    string          `bson:"location" json:"location"`
	OwnerID     string          `bson:"owner_id" json:"ownerId"`
	IsAvailable bool            `bson:"is_available" json:"isAvailable"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updatedAt"`

	// Owner summary joined in on reads; never persisted on the product.
	Owner *OwnerSummary `bson:"owner,omitempty" json:"owner,omitempty"`
}

// OwnerSummary is the subset of the owning user exposed on listings.
type OwnerSummary struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

type ProductCategory string

const (
	CategoryVegetables ProductCategory = "vegetables"
	CategoryFruits     ProductCategory = "fruits"
	CategoryGrains     ProductCategory = "grains"
	CategoryDairy      ProductCategory = "dairy"
	CategoryLivestock  ProductCategory = "livestock"
	CategoryOther      ProductCategory = "other"
)

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryGrains, CategoryDairy, CategoryLivestock, CategoryOther:
		return true
	}
	return false
}

type ProductUnit string

const (
	UnitKilogram ProductUnit = "kg"
	UnitGram     ProductUnit = "g"
	UnitPound    ProductUnit = "lb"
	UnitTon      ProductUnit = "ton"
	UnitPiece    ProductUnit = "piece"
	UnitDozen    ProductUnit = "dozen"
	UnitLiter    ProductUnit = "liter"
)

// ValidUnit reports whether u is one of the closed unit set.
func ValidUnit(u ProductUnit) bool {
	switch u {
	case UnitKilogram, UnitGram, UnitPound, UnitTon, UnitPiece, UnitDozen, UnitLiter:
		return true
	}
	return false
}
