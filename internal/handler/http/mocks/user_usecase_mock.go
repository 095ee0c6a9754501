package mocks

import (
	"context"
	"fmt"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister        bool
	ShouldFailLogin           bool
	ShouldFailFirebaseAuth    bool
	FirebaseAuthCreates       bool
	ShouldFailAuthenticate    bool
	ShouldFailGetByID         bool
	ShouldFailUpdateProfile   bool
	ShouldFailListUsers       bool
	ShouldFailAdminUpdateUser bool
	ShouldFailAdminDeleteUser bool

	// Return values
	MockUser  entity.User
	MockToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
			Phone: "9876543210",
			Role:  entity.UserRoleBuyer,
			Buyer: &entity.BuyerProfile{},
		},
		MockToken: "mock_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput, files usecasecontract.UploadSet) (*usecasecontract.AuthPayload, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" || in.Phone == "" {
		return nil, apperror.New(apperror.ErrValidation, "Missing required fields")
	}
	if !entity.ValidRole(in.Role) {
		return nil, apperror.New(apperror.ErrValidation, fmt.Sprintf("Invalid role: %s", in.Role))
	}
	if m.ShouldFailRegister {
		return nil, apperror.New(apperror.ErrDuplicate, "Email already registered")
	}
	user := m.MockUser
	user.Name = in.Name
	user.Email = in.Email
	user.RetagRole(in.Role)
	return &usecasecontract.AuthPayload{User: &user, Token: m.MockToken}, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.AuthPayload, error) {
	if m.ShouldFailLogin {
		return nil, apperror.New(apperror.ErrAuth, "Invalid email or password")
	}
	return &usecasecontract.AuthPayload{User: &m.MockUser, Token: m.MockToken}, nil
}

func (m *MockUserUsecase) FirebaseAuth(ctx context.Context, in usecasecontract.FirebaseAuthInput) (*usecasecontract.AuthPayload, error) {
	if m.ShouldFailFirebaseAuth {
		return nil, apperror.New(apperror.ErrNotFound, "User not found. Please register first.")
	}
	return &usecasecontract.AuthPayload{
		User:                      &m.MockUser,
		Token:                     m.MockToken,
		RequiresProfileCompletion: m.FirebaseAuthCreates,
	}, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, apperror.New(apperror.ErrAuth, "Not authorized, token failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.New(apperror.ErrNotFound, "User not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, in usecasecontract.UpdateProfileInput, files usecasecontract.UploadSet) (*usecasecontract.AuthPayload, error) {
	if m.ShouldFailUpdateProfile {
		return nil, apperror.New(apperror.ErrNotFound, "User not found")
	}
	user := m.MockUser
	if in.Name != nil {
		user.Name = *in.Name
	}
	return &usecasecontract.AuthPayload{User: &user, Token: m.MockToken}, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailListUsers {
		return nil, apperror.New(apperror.ErrInternal, "internal server error")
	}
	return []entity.User{m.MockUser}, nil
}

func (m *MockUserUsecase) AdminUpdateUser(ctx context.Context, targetID string, in usecasecontract.AdminUpdateInput) (*entity.User, error) {
	if m.ShouldFailAdminUpdateUser {
		return nil, apperror.New(apperror.ErrNotFound, "User not found")
	}
	user := m.MockUser
	if in.Role != nil {
		user.RetagRole(*in.Role)
	}
	if in.IsVerified != nil {
		user.IsVerified = *in.IsVerified
	}
	return &user, nil
}

func (m *MockUserUsecase) AdminDeleteUser(ctx context.Context, targetID string) error {
	if m.ShouldFailAdminDeleteUser {
		return apperror.New(apperror.ErrNotFound, "User not found")
	}
	return nil
}
