package usecasecontract

import (
	"context"
	"mime/multipart"

	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// RegisterInput is the validated registration payload. Role-specific fields
// are only honored when they match Role.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.UserRole
	Phone    string

	State    string
	District string
	Taluka   string
	Village  string
	Pincode  string

	GSTNumber     string
	Qualification string
	Expertise     string

	FirebaseUID string
}

// UploadSet carries the (optional) named file uploads of a multipart request.
type UploadSet struct {
	ProfileImage           *multipart.FileHeader
	PanCard                *multipart.FileHeader
	CancelledCheque        *multipart.FileHeader
	AgricultureCertificate *multipart.FileHeader
}

// FirebaseAuthInput is the federated-identity login payload.
type FirebaseAuthInput struct {
	FirebaseUID string
	Email       string
	Phone       string
	Name        string
}

// UpdateProfileInput carries self-service profile edits. Nil means "leave
// unchanged". Role and verification flag are not mutable here.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Phone    *string
	State    *string
	District *string
	Taluka   *string
	Village  *string
	Pincode  *string
	Password *string

	GSTNumber     *string
	Qualification *string
	Expertise     *string
}

// AdminUpdateInput carries administrator edits; any field may change.
type AdminUpdateInput struct {
	Name       *string
	Email      *string
	Phone      *string
	Role       *entity.UserRole
	State      *string
	District   *string
	Taluka     *string
	Village    *string
	Pincode    *string
	IsVerified *bool
	Password   *string

	GSTNumber     *string
	Qualification *string
	Expertise     *string
}

// AuthPayload is the result of any operation that establishes a session.
type AuthPayload struct {
	User                      *entity.User
	Token                     string
	RequiresProfileCompletion bool
}

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput, files UploadSet) (*AuthPayload, error)
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	FirebaseAuth(ctx context.Context, in FirebaseAuthInput) (*AuthPayload, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput, files UploadSet) (*AuthPayload, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	AdminUpdateUser(ctx context.Context, targetID string, in AdminUpdateInput) (*entity.User, error)
	AdminDeleteUser(ctx context.Context, targetID string) error
}
