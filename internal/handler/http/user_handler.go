package http

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-agroconnect/api/internal/domain/entity"
	"github.com/smart-agroconnect/api/internal/handler/http/dto"
	"github.com/smart-agroconnect/api/internal/infrastructure/metrics"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	FirebaseAuth(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
	AdminUpdateUser(*gin.Context)
	AdminDeleteUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// formFile returns the named upload or nil when the field is absent.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

func collectUploads(c *gin.Context) usecasecontract.UploadSet {
	return usecasecontract.UploadSet{
		ProfileImage:           formFile(c, "profileImage"),
		PanCard:                formFile(c, "panCard"),
		CancelledCheque:        formFile(c, "cancelledCheque"),
		AgricultureCertificate: formFile(c, "agricultureCertificate"),
	}
}

// Register handles user signup (multipart form with optional document uploads)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	in := usecasecontract.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          entity.UserRole(req.Role),
		Phone:         req.Phone,
		State:         req.State,
		District:      req.District,
		Taluka:        req.Taluka,
		Village:       req.Village,
		Pincode:       req.Pincode,
		GSTNumber:     req.GSTNumber,
		Qualification: req.Qualification,
		Expertise:     req.Expertise,
		FirebaseUID:   req.FirebaseUID,
	}

	payload, err := h.userUsecase.Register(c.Request.Context(), in, collectUploads(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	metrics.RegistrationsTotal.WithLabelValues(string(payload.User.Role)).Inc()
	SuccessHandler(c, http.StatusCreated, dto.ToAuthResponse(payload.User, payload.Token, payload.RequiresProfileCompletion))
}

// Login handles password authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	payload, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(payload.User, payload.Token, payload.RequiresProfileCompletion))
}

// FirebaseAuth handles federated-identity login. A first contact creates a
// minimal account and answers 201; a known identity answers 200.
func (h *UserHandler) FirebaseAuth(c *gin.Context) {
	var req dto.FirebaseAuthRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	payload, err := h.userUsecase.FirebaseAuth(c.Request.Context(), usecasecontract.FirebaseAuthInput{
		FirebaseUID: req.FirebaseUID,
		Email:       req.Email,
		Phone:       req.Phone,
		Name:        req.Name,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	status := http.StatusOK
	if payload.RequiresProfileCompletion {
		status = http.StatusCreated
		metrics.RegistrationsTotal.WithLabelValues(string(payload.User.Role)).Inc()
	}
	SuccessHandler(c, status, dto.ToAuthResponse(payload.User, payload.Token, payload.RequiresProfileCompletion))
}

// GetProfile returns the authenticated user's full record
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile handles self-service profile edits (multipart form, files optional)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	in := usecasecontract.UpdateProfileInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		State:         req.State,
		District:      req.District,
		Taluka:        req.Taluka,
		Village:       req.Village,
		Pincode:       req.Pincode,
		Password:      req.Password,
		GSTNumber:     req.GSTNumber,
		Qualification: req.Qualification,
		Expertise:     req.Expertise,
	}

	payload, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID.(string), in, collectUploads(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToAuthResponse(payload.User, payload.Token, payload.RequiresProfileCompletion))
}

// ListUsers returns every account (admin only)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ToUserResponse(&users[i]))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// GetUser returns a single account by ID (admin only)
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user))
}

// AdminUpdateUser applies administrator edits to any account
func (h *UserHandler) AdminUpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	in := usecasecontract.AdminUpdateInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		State:         req.State,
		District:      req.District,
		Taluka:        req.Taluka,
		Village:       req.Village,
		Pincode:       req.Pincode,
		IsVerified:    req.IsVerified,
		Password:      req.Password,
		GSTNumber:     req.GSTNumber,
		Qualification: req.Qualification,
		Expertise:     req.Expertise,
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		in.Role = &role
	}

	user, err := h.userUsecase.AdminUpdateUser(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAdminUserResponse(user))
}

// AdminDeleteUser removes an account and its stored documents
func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	if err := h.userUsecase.AdminDeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User removed")
}
