package mongodb

import (
	"context"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository is the MongoDB implementation of IProductRepository.
type ProductRepository struct {
	collection      *mongo.Collection
	usersCollection *mongo.Collection // owner summary lookups
}

var _ contract.IProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates and returns a new ProductRepository instance.
func NewProductRepository(db *mongo.Database, users *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection:      db.Collection("products"),
		usersCollection: users,
	}
}

// buildProductFilter creates a BSON filter from the optional predicates.
func buildProductFilter(opts *contract.ProductFilterOptions) bson.M {
	filter := bson.M{}
	if opts == nil {
		return filter
	}

	if opts.Category != nil && *opts.Category != "" {
		filter["category"] = *opts.Category
	}
	if opts.Location != nil && *opts.Location != "" {
		filter["location"] = bson.M{"$regex": *opts.Location, "$options": "i"}
	}

	priceFilter := bson.M{}
	if opts.MinPrice != nil {
		priceFilter["$gte"] = *opts.MinPrice
	}
	if opts.MaxPrice != nil {
		priceFilter["$lte"] = *opts.MaxPrice
	}
	if len(priceFilter) > 0 {
		filter["price"] = priceFilter
	}

	if opts.Search != nil && *opts.Search != "" {
		filter["name"] = bson.M{"$regex": *opts.Search, "$options": "i"}
	}
	return filter
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// GetProductByID returns a product with its owner summary joined in.
func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := r.aggregate(ctx, bson.M{"_id": id}, false)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperror.New(apperror.ErrNotFound, "product not found")
	}
	return &products[0], nil
}

// ListProducts returns matching products newest first with owner summaries.
func (r *ProductRepository) ListProducts(ctx context.Context, opts *contract.ProductFilterOptions) ([]entity.Product, error) {
	return r.aggregate(ctx, buildProductFilter(opts), true)
}

// ListProductsByOwner returns the owner's products, newest first. No lookup:
// the caller already knows the owner.
func (r *ProductRepository) ListProductsByOwner(ctx context.Context, ownerID string) ([]entity.Product, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct replaces an existing product and returns the updated record.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	// The joined owner summary is read-side only.
	product.Owner = nil
	filter := bson.M{"_id": product.ID}
	result, err := r.collection.ReplaceOne(ctx, filter, product)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.New(apperror.ErrNotFound, "product not found")
	}
	var updated entity.Product
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperror.New(apperror.ErrNotFound, "product not found")
	}
	return nil
}

// aggregate runs the filter with an owner lookup, optionally sorted newest
// first.
func (r *ProductRepository) aggregate(ctx context.Context, filter bson.M, sorted bool) ([]entity.Product, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	if sorted {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.usersCollection.Name(),
			"localField":   "owner_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"owner.password":     0,
			"owner.firebase_uid": 0,
		}}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
