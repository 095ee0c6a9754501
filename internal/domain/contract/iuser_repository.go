package contract

import (
	"context"

	"github.com/smart-agroconnect/api/internal/domain/entity"
)

type IUserRepository interface {
	// EnsureIndexes creates the unique email/phone indexes. Called once at
	// bootstrap; the indexes are the authoritative duplicate guard.
	EnsureIndexes(ctx context.Context) error
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email (stored lowercased).
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByPhone retrieves a user by phone number.
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	// GetUserByFirebaseUID retrieves a user by federated identity id.
	GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error)
	// ListUsers returns every user record, newest first.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// UpdateUser replaces an existing user and returns the updated record.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
