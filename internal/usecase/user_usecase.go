package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// Caller-facing messages reused across operations.
const (
	msgUserNotFound      = "User not found"
	msgEmailRegistered   = "Email already registered"
	msgPhoneRegistered   = "Phone number already registered"
	msgInvalidCredential = "Invalid email or password"
	errInternalServer    = "internal server error"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	fileStore     contract.IFileStore
	hasher        contract.IHasher
	jwtService    JWTService
	mailService   contract.IEmailService
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	fileStore contract.IFileStore,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		fileStore:     fileStore,
		hasher:        hasher,
		jwtService:    jwtService,
		mailService:   mailService,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration with role-conditional fields and
// document uploads.
func (uc *UserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput, files usecasecontract.UploadSet) (*usecasecontract.AuthPayload, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" || in.Phone == "" {
		return nil, apperror.New(apperror.ErrValidation, "Missing required fields")
	}
	if !entity.ValidRole(in.Role) {
		return nil, apperror.Newf(apperror.ErrValidation, "Invalid role: %s", in.Role)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, apperror.New(apperror.ErrValidation, "Invalid email format")
	}

	// Check if a user already exists with this email or phone
	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, apperror.New(apperror.ErrDuplicate, msgEmailRegistered)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}
	if _, err := uc.userRepo.GetUserByPhone(ctx, in.Phone); err == nil {
		return nil, apperror.New(apperror.ErrDuplicate, msgPhoneRegistered)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by phone: %v", err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, apperror.New(apperror.ErrInternal, "Error processing password")
	}

	// Store uploads before the insert. A failed insert after this point
	// leaves the written files behind; there is no compensating cleanup.
	stored, err := uc.storeUploads(files)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:              uc.uuidGenerator.NewUUID(),
		Name:            in.Name,
		Email:           email,
		PasswordHash:    hashedPassword,
		Phone:           in.Phone,
		Role:            in.Role,
		State:           in.State,
		District:        in.District,
		Taluka:          in.Taluka,
		Village:         in.Village,
		Pincode:         in.Pincode,
		ProfileImage:    stored.profileImage,
		PanCard:         stored.panCard,
		CancelledCheque: stored.cancelledCheque,
		FirebaseUID:     in.FirebaseUID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	// Only the fields of the registered role are persisted; inputs for
	// other roles are dropped.
	switch in.Role {
	case entity.UserRoleFarmer:
		user.Farmer = &entity.FarmerProfile{AgricultureCertificate: stored.agricultureCertificate}
	case entity.UserRoleBuyer:
		user.Buyer = &entity.BuyerProfile{GSTNumber: in.GSTNumber}
	case entity.UserRoleHelper:
		user.Helper = &entity.HelperProfile{Qualification: in.Qualification, Expertise: in.Expertise}
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, err
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to register user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate token for user %s: %v", user.ID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to generate authentication token")
	}

	return &usecasecontract.AuthPayload{User: user, Token: token}, nil
}

// Login handles email/password authentication. The failure message never
// reveals which of the two was wrong.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.AuthPayload, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(apperror.ErrAuth, msgInvalidCredential)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}

	// A federated-only account has an empty hash and can never pass here.
	if user.PasswordHash == "" {
		return nil, apperror.New(apperror.ErrAuth, msgInvalidCredential)
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, apperror.New(apperror.ErrAuth, msgInvalidCredential)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate token for user %s: %v", user.ID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to generate authentication token")
	}

	return &usecasecontract.AuthPayload{User: user, Token: token}, nil
}

// FirebaseAuth handles federated-identity login: lookup by external id, then
// email, then phone. An unknown identity with a name creates a minimal buyer
// record that still needs profile completion.
func (uc *UserUsecase) FirebaseAuth(ctx context.Context, in usecasecontract.FirebaseAuthInput) (*usecasecontract.AuthPayload, error) {
	if in.FirebaseUID == "" {
		return nil, apperror.New(apperror.ErrValidation, "Missing required fields")
	}

	user, err := uc.lookupFederated(ctx, in)
	if err != nil {
		return nil, err
	}

	if user != nil {
		// Backfill the external id on first contact with a known account.
		if user.FirebaseUID == "" {
			user.FirebaseUID = in.FirebaseUID
			if user, err = uc.userRepo.UpdateUser(ctx, user); err != nil {
				uc.logger.Errorf("failed to link firebase uid to user: %v", err)
				return nil, apperror.New(apperror.ErrInternal, errInternalServer)
			}
		}
		token, err := uc.jwtService.GenerateToken(user.ID, user.Role)
		if err != nil {
			uc.logger.Errorf("failed to generate token for user %s: %v", user.ID, err)
			return nil, apperror.New(apperror.ErrInternal, "Failed to generate authentication token")
		}
		return &usecasecontract.AuthPayload{User: user, Token: token}, nil
	}

	if in.Name == "" {
		return nil, apperror.New(apperror.ErrNotFound, "User not found. Please register first.")
	}

	newUser := &entity.User{
		ID:          uc.uuidGenerator.NewUUID(),
		Name:        in.Name,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       in.Phone,
		FirebaseUID: in.FirebaseUID,
		Role:        entity.DefaultRole(),
		Buyer:       &entity.BuyerProfile{},
		// No password for federated-identity users until they complete
		// registration.
		PasswordHash: "",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.userRepo.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, err
		}
		uc.logger.Errorf("failed to create federated user: %v", err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to register user")
	}

	token, err := uc.jwtService.GenerateToken(newUser.ID, newUser.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate token for user %s: %v", newUser.ID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to generate authentication token")
	}

	return &usecasecontract.AuthPayload{User: newUser, Token: token, RequiresProfileCompletion: true}, nil
}

func (uc *UserUsecase) lookupFederated(ctx context.Context, in usecasecontract.FirebaseAuthInput) (*entity.User, error) {
	lookups := []func(context.Context) (*entity.User, error){
		func(ctx context.Context) (*entity.User, error) {
			return uc.userRepo.GetUserByFirebaseUID(ctx, in.FirebaseUID)
		},
	}
	if in.Email != "" {
		lookups = append(lookups, func(ctx context.Context) (*entity.User, error) {
			return uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
		})
	}
	if in.Phone != "" {
		lookups = append(lookups, func(ctx context.Context) (*entity.User, error) {
			return uc.userRepo.GetUserByPhone(ctx, in.Phone)
		})
	}
	for _, lookup := range lookups {
		user, err := lookup(ctx)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Errorf("federated lookup failed: %v", err)
			return nil, apperror.New(apperror.ErrInternal, errInternalServer)
		}
	}
	return nil, nil
}

// Authenticate resolves a bearer token to its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseToken(accessToken)
	if err != nil {
		return nil, apperror.New(apperror.ErrAuth, "Not authorized, token failed")
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(apperror.ErrAuth, "Not authorized, user no longer exists")
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}
	return user, nil
}

// GetUserByID returns the stored record for id.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, msgUserNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s: %v", userID, err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}
	return user, nil
}

// UpdateProfile applies self-service edits, re-uploads documents with
// old-file cleanup, and returns a refreshed token for the same identity.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, in usecasecontract.UpdateProfileInput, files usecasecontract.UploadSet) (*usecasecontract.AuthPayload, error) {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	setString(&user.Name, in.Name)
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if err := uc.validator.ValidateEmail(email); err != nil {
			return nil, apperror.New(apperror.ErrValidation, "Invalid email format")
		}
		user.Email = email
	}
	setString(&user.Phone, in.Phone)
	setString(&user.State, in.State)
	setString(&user.District, in.District)
	setString(&user.Taluka, in.Taluka)
	setString(&user.Village, in.Village)
	setString(&user.Pincode, in.Pincode)

	// Role-specific fields: only the caller's own role is honored.
	switch user.Role {
	case entity.UserRoleBuyer:
		if in.GSTNumber != nil {
			if user.Buyer == nil {
				user.Buyer = &entity.BuyerProfile{}
			}
			user.Buyer.GSTNumber = *in.GSTNumber
		}
	case entity.UserRoleHelper:
		if in.Qualification != nil || in.Expertise != nil {
			if user.Helper == nil {
				user.Helper = &entity.HelperProfile{}
			}
			setString(&user.Helper.Qualification, in.Qualification)
			setString(&user.Helper.Expertise, in.Expertise)
		}
	}

	if in.Password != nil && *in.Password != "" {
		hashed, err := uc.hasher.HashPassword(*in.Password)
		if err != nil {
			uc.logger.Errorf("failed to hash password: %v", err)
			return nil, apperror.New(apperror.ErrInternal, "Error processing password")
		}
		user.PasswordHash = hashed
	}

	if err := uc.replaceUploads(user, files); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, err
		}
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to update profile")
	}

	token, err := uc.jwtService.GenerateToken(updated.ID, updated.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate token for user %s: %v", updated.ID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to generate authentication token")
	}

	return &usecasecontract.AuthPayload{User: updated, Token: token}, nil
}

// ListUsers returns every user record (administrator read).
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, apperror.New(apperror.ErrInternal, errInternalServer)
	}
	return users, nil
}

// AdminUpdateUser applies administrator edits to any field, including role
// and the verification flag. It does not issue a token.
func (uc *UserUsecase) AdminUpdateUser(ctx context.Context, targetID string, in usecasecontract.AdminUpdateInput) (*entity.User, error) {
	user, err := uc.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	verifiedBefore := user.IsVerified

	setString(&user.Name, in.Name)
	if in.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	setString(&user.Phone, in.Phone)
	setString(&user.State, in.State)
	setString(&user.District, in.District)
	setString(&user.Taluka, in.Taluka)
	setString(&user.Village, in.Village)
	setString(&user.Pincode, in.Pincode)

	if in.Role != nil && *in.Role != user.Role {
		if !entity.ValidRole(*in.Role) {
			return nil, apperror.Newf(apperror.ErrValidation, "Invalid role: %s", *in.Role)
		}
		user.RetagRole(*in.Role)
	}

	switch user.Role {
	case entity.UserRoleBuyer:
		if in.GSTNumber != nil {
			if user.Buyer == nil {
				user.Buyer = &entity.BuyerProfile{}
			}
			user.Buyer.GSTNumber = *in.GSTNumber
		}
	case entity.UserRoleHelper:
		if in.Qualification != nil || in.Expertise != nil {
			if user.Helper == nil {
				user.Helper = &entity.HelperProfile{}
			}
			setString(&user.Helper.Qualification, in.Qualification)
			setString(&user.Helper.Expertise, in.Expertise)
		}
	}

	if in.IsVerified != nil {
		user.IsVerified = *in.IsVerified
	}

	if in.Password != nil && *in.Password != "" {
		hashed, err := uc.hasher.HashPassword(*in.Password)
		if err != nil {
			uc.logger.Errorf("failed to hash password: %v", err)
			return nil, apperror.New(apperror.ErrInternal, "Error processing password")
		}
		user.PasswordHash = hashed
	}

	user.UpdatedAt = time.Now()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, err
		}
		uc.logger.Errorf("failed to update user %s: %v", targetID, err)
		return nil, apperror.New(apperror.ErrInternal, "Failed to update user")
	}

	// Verification flip notifies the user, best effort.
	if uc.mailService != nil && !verifiedBefore && updated.IsVerified && updated.Email != "" {
		body := fmt.Sprintf("Hi %s,\n\nYour Smart AgroConnect account has been verified. You can now use all marketplace features.\n\nThanks,\nThe Smart AgroConnect Team", updated.Name)
		if err := uc.mailService.SendEmail(ctx, updated.Email, "Account verified", body); err != nil {
			uc.logger.Warnf("failed to send verification notice to %s: %v", updated.Email, err)
		}
	}

	return updated, nil
}

// AdminDeleteUser removes the record and all of the user's on-disk
// artifacts, skipping any that no longer exist.
func (uc *UserUsecase) AdminDeleteUser(ctx context.Context, targetID string) error {
	user, err := uc.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}

	for _, path := range user.DocumentPaths() {
		if err := uc.fileStore.Delete(path); err != nil {
			uc.logger.Warnf("failed to delete file %s for user %s: %v", path, targetID, err)
		}
	}

	if err := uc.userRepo.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.New(apperror.ErrNotFound, msgUserNotFound)
		}
		uc.logger.Errorf("failed to delete user %s: %v", targetID, err)
		return apperror.New(apperror.ErrInternal, "Failed to delete user")
	}
	return nil
}

// storedPaths are the paths produced for a registration upload set.
type storedPaths struct {
	profileImage           string
	panCard                string
	cancelledCheque        string
	agricultureCertificate string
}

// storeUploads writes every provided file to disk. The certificate is
// written for any role; whether its path is recorded is the caller's call.
func (uc *UserUsecase) storeUploads(files usecasecontract.UploadSet) (storedPaths, error) {
	var stored storedPaths
	for _, f := range []struct {
		field string
		file  *multipart.FileHeader
		dst   *string
	}{
		{"profileImage", files.ProfileImage, &stored.profileImage},
		{"panCard", files.PanCard, &stored.panCard},
		{"cancelledCheque", files.CancelledCheque, &stored.cancelledCheque},
		{"agricultureCertificate", files.AgricultureCertificate, &stored.agricultureCertificate},
	} {
		if f.file == nil {
			continue
		}
		path, err := uc.fileStore.Save(f.field, f.file)
		if err != nil {
			return stored, err
		}
		*f.dst = path
	}
	return stored, nil
}

// replaceUploads stores any re-uploaded documents and deletes the replaced
// files, best effort.
func (uc *UserUsecase) replaceUploads(user *entity.User, files usecasecontract.UploadSet) error {
	replace := func(field string, file *multipart.FileHeader, current *string) error {
		if file == nil {
			return nil
		}
		path, err := uc.fileStore.Save(field, file)
		if err != nil {
			return err
		}
		if *current != "" {
			if err := uc.fileStore.Delete(*current); err != nil {
				uc.logger.Warnf("failed to delete old %s file %s: %v", field, *current, err)
			}
		}
		*current = path
		return nil
	}

	if err := replace("profileImage", files.ProfileImage, &user.ProfileImage); err != nil {
		return err
	}
	if err := replace("panCard", files.PanCard, &user.PanCard); err != nil {
		return err
	}
	if err := replace("cancelledCheque", files.CancelledCheque, &user.CancelledCheque); err != nil {
		return err
	}
	if user.Role == entity.UserRoleFarmer && files.AgricultureCertificate != nil {
		if user.Farmer == nil {
			user.Farmer = &entity.FarmerProfile{}
		}
		return replace("agricultureCertificate", files.AgricultureCertificate, &user.Farmer.AgricultureCertificate)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}
