package dto

import (
	"time"

	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// AuthResponse is the session payload returned by register/login endpoints.
type AuthResponse struct {
	ID                        string `json:"_id"`
	Name                      string `json:"name"`
	Email                     string `json:"email"`
	Role                      string `json:"role"`
	Phone                     string `json:"phone"`
	Token                     string `json:"token"`
	RequiresProfileCompletion bool   `json:"requiresProfileCompletion,omitempty"`
}

// UserResponse is the full user record minus the credential, with the
// role-conditional fields flattened the way API clients expect them.
type UserResponse struct {
	ID                     string `json:"_id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Role                   string `json:"role"`
	State                  string `json:"state,omitempty"`
	District               string `json:"district,omitempty"`
	Taluka                 string `json:"taluka,omitempty"`
	Village                string `json:"village,omitempty"`
	Pincode                string `json:"pincode,omitempty"`
	ProfileImage           string `json:"profileImage,omitempty"`
	PanCard                string `json:"panCard,omitempty"`
	CancelledCheque        string `json:"cancelledCheque,omitempty"`
	AgricultureCertificate string `json:"agricultureCertificate,omitempty"`
	GSTNumber              string `json:"gstNumber,omitempty"`
	Qualification          string `json:"qualification,omitempty"`
	Expertise              string `json:"expertise,omitempty"`
	IsVerified             bool   `json:"isVerified"`
	FirebaseUID            string `json:"firebaseUid,omitempty"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`
}

// AdminUserResponse is the summary returned by administrator updates.
type AdminUserResponse struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	IsVerified bool   `json:"isVerified"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ToAuthResponse converts an auth payload to the session response shape.
func ToAuthResponse(user *entity.User, token string, requiresProfileCompletion bool) AuthResponse {
	return AuthResponse{
		ID:                        user.ID,
		Name:                      user.Name,
		Email:                     user.Email,
		Role:                      string(user.Role),
		Phone:                     user.Phone,
		Token:                     token,
		RequiresProfileCompletion: requiresProfileCompletion,
	}
}

// ToUserResponse converts an entity.User to the full-record response shape.
func ToUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		Role:            string(user.Role),
		State:           user.State,
		District:        user.District,
		Taluka:          user.Taluka,
		Village:         user.Village,
		Pincode:         user.Pincode,
		ProfileImage:    user.ProfileImage,
		PanCard:         user.PanCard,
		CancelledCheque: user.CancelledCheque,
		IsVerified:      user.IsVerified,
		FirebaseUID:     user.FirebaseUID,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       user.UpdatedAt.Format(time.RFC3339),
	}
	if user.Farmer != nil {
		resp.AgricultureCertificate = user.Farmer.AgricultureCertificate
	}
	if user.Buyer != nil {
		resp.GSTNumber = user.Buyer.GSTNumber
	}
	if user.Helper != nil {
		resp.Qualification = user.Helper.Qualification
		resp.Expertise = user.Helper.Expertise
	}
	return resp
}

// ToAdminUserResponse converts an entity.User to the admin-update summary.
func ToAdminUserResponse(user *entity.User) AdminUserResponse {
	return AdminUserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Phone:      user.Phone,
		IsVerified: user.IsVerified,
	}
}
