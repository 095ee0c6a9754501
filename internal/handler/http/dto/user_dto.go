package dto

// Request DTOs for User Handlers. Multipart endpoints bind with form tags;
// JSON endpoints with json tags. Validation happens before any side effect.

// RegisterRequest defines the multipart form for user registration. Required
// fields, role, and email format are checked in the usecase so each failure
// keeps its own message.
type RegisterRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
	Phone    string `form:"phone"`

	State    string `form:"state"`
	District string `form:"district"`
	Taluka   string `form:"taluka"`
	Village  string `form:"village"`
	Pincode  string `form:"pincode"`

	GSTNumber     string `form:"gstNumber"`
	Qualification string `form:"qualification"`
	Expertise     string `form:"expertise"`

	FirebaseUID string `form:"firebaseUid"`
}

// LoginRequest defines the JSON body for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FirebaseAuthRequest defines the JSON body for federated-identity login.
type FirebaseAuthRequest struct {
	FirebaseUID string `json:"firebaseUid" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Name        string `json:"name"`
}

// UpdateProfileRequest defines the multipart form for self-service profile
// edits. Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `form:"name"`
	Email    *string `form:"email" binding:"omitempty,email"`
	Phone    *string `form:"phone"`
	State    *string `form:"state"`
	District *string `form:"district"`
	Taluka   *string `form:"taluka"`
	Village  *string `form:"village"`
	Pincode  *string `form:"pincode"`
	Password *string `form:"password"`

	GSTNumber     *string `form:"gstNumber"`
	Qualification *string `form:"qualification"`
	Expertise     *string `form:"expertise"`
}

// AdminUpdateUserRequest defines the JSON body for administrator edits.
type AdminUpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role" binding:"omitempty,oneof=farmer buyer helper admin"`
	State      *string `json:"state"`
	District   *string `json:"district"`
	Taluka     *string `json:"taluka"`
	Village    *string `json:"village"`
	Pincode    *string `json:"pincode"`
	IsVerified *bool   `json:"isVerified"`
	Password   *string `json:"password"`

	GSTNumber     *string `json:"gstNumber"`
	Qualification *string `json:"qualification"`
	Expertise     *string `json:"expertise"`
}
