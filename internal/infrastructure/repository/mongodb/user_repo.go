package mongodb

import (
	"context"
	"strings"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// EnsureIndexes creates the unique email/phone indexes. The indexes are the
// atomic guard against duplicate registration races. Federated records created
// without an email or phone store empty strings, so the partial filters keep
// those out of the uniqueness constraint.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email").
				SetPartialFilterExpression(bson.M{"email": bson.M{"$gt": ""}}),
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_phone").
				SetPartialFilterExpression(bson.M{"phone": bson.M{"$gt": ""}}),
		},
	})
	return err
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return mapDuplicateError(err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *MongoUserRepository) GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"firebase_uid": uid})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.New(apperror.ErrNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user record, newest first.
func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser replaces an existing user document and returns the updated record.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	filter := bson.M{"_id": user.ID}
	result, err := r.collection.ReplaceOne(ctx, filter, user)
	if err != nil {
		return nil, mapDuplicateError(err)
	}
	if result.MatchedCount == 0 {
		return nil, apperror.New(apperror.ErrNotFound, "user not found")
	}
	var updated entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperror.New(apperror.ErrNotFound, "user not found")
	}
	return nil
}

// mapDuplicateError turns a unique-index violation into the caller-facing
// duplicate error, naming the field that collided.
func mapDuplicateError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), "uniq_phone") {
		return apperror.New(apperror.ErrDuplicate, "Phone number already registered")
	}
	return apperror.New(apperror.ErrDuplicate, "Email already registered")
}
