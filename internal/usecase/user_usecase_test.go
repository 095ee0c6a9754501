package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	"github.com/smart-agroconnect/api/internal/usecase"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// --- in-memory fakes ---

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	// Empty email/phone may repeat, matching the partial unique indexes.
	for _, existing := range r.users {
		if existing.Email != "" && existing.Email == user.Email {
			return apperror.New(apperror.ErrDuplicate, "Email already registered")
		}
		if existing.Phone != "" && existing.Phone == user.Phone {
			return apperror.New(apperror.ErrDuplicate, "Phone number already registered")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperror.New(apperror.ErrNotFound, "not found")
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperror.New(apperror.ErrNotFound, "not found")
}

func (r *fakeUserRepo) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Phone == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperror.New(apperror.ErrNotFound, "not found")
}

func (r *fakeUserRepo) GetUserByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	for _, user := range r.users {
		if user.FirebaseUID == uid {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperror.New(apperror.ErrNotFound, "not found")
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperror.New(apperror.ErrNotFound, "not found")
	}
	clone := *user
	r.users[user.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperror.New(apperror.ErrNotFound, "not found")
	}
	delete(r.users, id)
	return nil
}

type fakeFileStore struct {
	saved   []string
	deleted []string
	seq     int
}

func (s *fakeFileStore) EnsureDirs() error { return nil }

func (s *fakeFileStore) Save(field string, file *multipart.FileHeader) (string, error) {
	s.seq++
	path := fmt.Sprintf("uploads/%s-%d", field, s.seq)
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeFileStore) Delete(path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("mismatch")
	}
	return nil
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID string, role entity.UserRole) (string, error) {
	return "token-for:" + userID, nil
}

func (fakeJWT) ParseToken(token string) (*entity.Claims, error) {
	if !strings.HasPrefix(token, "token-for:") {
		return nil, errors.New("token signature invalid")
	}
	return &entity.Claims{UserID: strings.TrimPrefix(token, "token-for:")}, nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetTokenExpiry() time.Duration { return time.Hour }
func (fakeConfig) GetAppBaseURL() string         { return "http://localhost:8080" }
func (fakeConfig) GetUploadRoot() string         { return "uploads" }

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	for _, c := range email {
		if c == '@' {
			return nil
		}
	}
	return errors.New("invalid email")
}

type seqUUID struct{ n int }

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type fixture struct {
	repo   *fakeUserRepo
	files  *fakeFileStore
	mailer *fakeMailer
	uc     *usecase.UserUsecase
}

func newFixture() *fixture {
	repo := newFakeUserRepo()
	files := &fakeFileStore{}
	mailer := &fakeMailer{}
	uc := usecase.NewUserUsecase(repo, files, fakeHasher{}, fakeJWT{}, mailer, nopLogger{}, fakeConfig{}, fakeValidator{}, &seqUUID{})
	return &fixture{repo: repo, files: files, mailer: mailer, uc: uc}
}

func farmerInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		Name:     "Ravi Patel",
		Email:    "Ravi@Example.com",
		Password: "Password123!",
		Role:     entity.UserRoleFarmer,
		Phone:    "9876543210",
		State:    "Gujarat",
	}
}

// --- tests ---

func TestRegister_Farmer(t *testing.T) {
	f := newFixture()

	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{
		AgricultureCertificate: &multipart.FileHeader{Filename: "cert.png"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "ravi@example.com", payload.User.Email)
	assert.Equal(t, entity.UserRoleFarmer, payload.User.Role)
	assert.NotNil(t, payload.User.Farmer)
	assert.NotEmpty(t, payload.User.Farmer.AgricultureCertificate)
	assert.Nil(t, payload.User.Buyer)
	assert.Nil(t, payload.User.Helper)
	assert.Equal(t, "hashed:Password123!", payload.User.PasswordHash)
	assert.NotEmpty(t, payload.Token)
}

func TestRegister_RoleFieldIsolation(t *testing.T) {
	f := newFixture()

	in := farmerInput()
	// a farmer sending buyer/helper fields must not get them persisted
	in.GSTNumber = "22AAAAA0000A1Z5"
	in.Qualification = "BSc Agriculture"

	payload, err := f.uc.Register(context.Background(), in, usecasecontract.UploadSet{})

	assert.NoError(t, err)
	assert.Nil(t, payload.User.Buyer)
	assert.Nil(t, payload.User.Helper)
}

func TestRegister_MissingFields(t *testing.T) {
	f := newFixture()

	in := farmerInput()
	in.Phone = ""

	_, err := f.uc.Register(context.Background(), in, usecasecontract.UploadSet{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Equal(t, "Missing required fields", err.Error())
}

func TestRegister_InvalidRole(t *testing.T) {
	f := newFixture()

	in := farmerInput()
	in.Role = "vendor"

	_, err := f.uc.Register(context.Background(), in, usecasecontract.UploadSet{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Equal(t, "Invalid role: vendor", err.Error())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	in := farmerInput()
	in.Phone = "9000000000"
	_, err = f.uc.Register(context.Background(), in, usecasecontract.UploadSet{})

	assert.True(t, errors.Is(err, apperror.ErrDuplicate))
	assert.Equal(t, "Email already registered", err.Error())
	assert.Len(t, f.repo.users, 1)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	in := farmerInput()
	in.Email = "other@example.com"
	_, err = f.uc.Register(context.Background(), in, usecasecontract.UploadSet{})

	assert.True(t, errors.Is(err, apperror.ErrDuplicate))
	assert.Equal(t, "Phone number already registered", err.Error())
}

func TestLogin(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	payload, err := f.uc.Login(context.Background(), "ravi@example.com", "Password123!")

	assert.NoError(t, err)
	assert.Equal(t, "ravi@example.com", payload.User.Email)
	assert.NotEmpty(t, payload.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	_, err = f.uc.Login(context.Background(), "ravi@example.com", "nope")

	assert.True(t, errors.Is(err, apperror.ErrAuth))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.True(t, errors.Is(err, apperror.ErrAuth))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLogin_FederatedAccountHasNoPassword(t *testing.T) {
	f := newFixture()
	_, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-1",
		Email:       "fed@example.com",
		Name:        "Fed User",
	})
	assert.NoError(t, err)

	_, err = f.uc.Login(context.Background(), "fed@example.com", "")

	assert.True(t, errors.Is(err, apperror.ErrAuth))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestAuthenticate(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	user, err := f.uc.Authenticate(context.Background(), payload.Token)

	assert.NoError(t, err)
	assert.Equal(t, payload.User.ID, user.ID)
	assert.Equal(t, "ravi@example.com", user.Email)
}

func TestAuthenticate_BadToken(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Authenticate(context.Background(), "garbage")

	assert.True(t, errors.Is(err, apperror.ErrAuth))
	assert.Equal(t, "Not authorized, token failed", err.Error())
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)
	assert.NoError(t, f.uc.AdminDeleteUser(context.Background(), payload.User.ID))

	_, err = f.uc.Authenticate(context.Background(), payload.Token)

	assert.True(t, errors.Is(err, apperror.ErrAuth))
	assert.Equal(t, "Not authorized, user no longer exists", err.Error())
}

func TestFirebaseAuth_CreatesMinimalBuyer(t *testing.T) {
	f := newFixture()

	payload, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-1",
		Email:       "New@Example.com",
		Name:        "New User",
	})

	assert.NoError(t, err)
	assert.True(t, payload.RequiresProfileCompletion)
	assert.Equal(t, entity.UserRoleBuyer, payload.User.Role)
	assert.NotNil(t, payload.User.Buyer)
	assert.Equal(t, "new@example.com", payload.User.Email)
	assert.Empty(t, payload.User.PasswordHash)
}

func TestFirebaseAuth_MultipleAccountsWithoutEmailOrPhone(t *testing.T) {
	f := newFixture()

	first, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-1",
		Name:        "First User",
	})
	assert.NoError(t, err)

	second, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-2",
		Name:        "Second User",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, first.User.ID, second.User.ID)
	assert.Len(t, f.repo.users, 2)
}

func TestFirebaseAuth_KnownIdentity(t *testing.T) {
	f := newFixture()
	first, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-1",
		Email:       "new@example.com",
		Name:        "New User",
	})
	assert.NoError(t, err)

	second, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-1",
	})

	assert.NoError(t, err)
	assert.False(t, second.RequiresProfileCompletion)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestFirebaseAuth_BackfillsUID(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	payload, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-9",
		Email:       "ravi@example.com",
	})

	assert.NoError(t, err)
	assert.False(t, payload.RequiresProfileCompletion)
	assert.Equal(t, "fb-9", payload.User.FirebaseUID)
	assert.Equal(t, "fb-9", f.repo.users[payload.User.ID].FirebaseUID)
}

func TestFirebaseAuth_UnknownWithoutName(t *testing.T) {
	f := newFixture()

	_, err := f.uc.FirebaseAuth(context.Background(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: "fb-unknown",
	})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "User not found. Please register first.", err.Error())
}

func TestUpdateProfile_ReplacesUpload(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{
		ProfileImage: &multipart.FileHeader{Filename: "old.png"},
	})
	assert.NoError(t, err)
	oldPath := payload.User.ProfileImage
	assert.NotEmpty(t, oldPath)

	updated, err := f.uc.UpdateProfile(context.Background(), payload.User.ID, usecasecontract.UpdateProfileInput{}, usecasecontract.UploadSet{
		ProfileImage: &multipart.FileHeader{Filename: "new.png"},
	})

	assert.NoError(t, err)
	assert.NotEqual(t, oldPath, updated.User.ProfileImage)
	assert.Contains(t, f.files.deleted, oldPath)
}

func TestUpdateProfile_RefreshesToken(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	name := "Ravi P"
	updated, err := f.uc.UpdateProfile(context.Background(), payload.User.ID, usecasecontract.UpdateProfileInput{Name: &name}, usecasecontract.UploadSet{})

	assert.NoError(t, err)
	assert.Equal(t, "Ravi P", updated.User.Name)
	assert.NotEmpty(t, updated.Token)
}

func TestUpdateProfile_IgnoresOtherRoleFields(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	gst := "22AAAAA0000A1Z5"
	updated, err := f.uc.UpdateProfile(context.Background(), payload.User.ID, usecasecontract.UpdateProfileInput{GSTNumber: &gst}, usecasecontract.UploadSet{})

	assert.NoError(t, err)
	assert.Nil(t, updated.User.Buyer)
}

func TestAdminUpdateUser_VerifyFlipSendsEmail(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)

	verified := true
	updated, err := f.uc.AdminUpdateUser(context.Background(), payload.User.ID, usecasecontract.AdminUpdateInput{IsVerified: &verified})

	assert.NoError(t, err)
	assert.True(t, updated.IsVerified)
	assert.Len(t, f.mailer.sent, 1)
	assert.Contains(t, f.mailer.sent[0], "ravi@example.com")

	// already verified, no second notification
	_, err = f.uc.AdminUpdateUser(context.Background(), payload.User.ID, usecasecontract.AdminUpdateInput{IsVerified: &verified})
	assert.NoError(t, err)
	assert.Len(t, f.mailer.sent, 1)
}

func TestAdminUpdateUser_IdenticalValuesChangeNothing(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{})
	assert.NoError(t, err)
	before := *f.repo.users[payload.User.ID]

	name := before.Name
	phone := before.Phone
	updated, err := f.uc.AdminUpdateUser(context.Background(), payload.User.ID, usecasecontract.AdminUpdateInput{
		Name:  &name,
		Phone: &phone,
	})

	assert.NoError(t, err)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Phone, updated.Phone)
	assert.Equal(t, before.Role, updated.Role)
	assert.Equal(t, before.PasswordHash, updated.PasswordHash)
	assert.Equal(t, before.IsVerified, updated.IsVerified)
	assert.Empty(t, f.mailer.sent)
}

func TestAdminUpdateUser_RoleChangeDropsVariant(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{
		AgricultureCertificate: &multipart.FileHeader{Filename: "cert.png"},
	})
	assert.NoError(t, err)
	assert.NotNil(t, payload.User.Farmer)

	role := entity.UserRoleHelper
	qualification := "BSc Agriculture"
	updated, err := f.uc.AdminUpdateUser(context.Background(), payload.User.ID, usecasecontract.AdminUpdateInput{
		Role:          &role,
		Qualification: &qualification,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleHelper, updated.Role)
	assert.Nil(t, updated.Farmer)
	assert.NotNil(t, updated.Helper)
	assert.Equal(t, "BSc Agriculture", updated.Helper.Qualification)
}

func TestAdminDeleteUser_RemovesFiles(t *testing.T) {
	f := newFixture()
	payload, err := f.uc.Register(context.Background(), farmerInput(), usecasecontract.UploadSet{
		ProfileImage:           &multipart.FileHeader{Filename: "me.png"},
		PanCard:                &multipart.FileHeader{Filename: "pan.pdf"},
		AgricultureCertificate: &multipart.FileHeader{Filename: "cert.png"},
	})
	assert.NoError(t, err)

	err = f.uc.AdminDeleteUser(context.Background(), payload.User.ID)

	assert.NoError(t, err)
	assert.Empty(t, f.repo.users)
	assert.Len(t, f.files.deleted, 3)
}

func TestAdminDeleteUser_NotFound(t *testing.T) {
	f := newFixture()

	err := f.uc.AdminDeleteUser(context.Background(), "missing-id")

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "User not found", err.Error())
}
