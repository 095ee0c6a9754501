package entity

import (
	"time"
)

// User represents a registered marketplace user. Exactly one of the role
// profile pointers is non-nil, matching Role (admin carries none).
type User struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Email        string   `bson:"email" json:"email"`
	PasswordHash string   `bson:"password" json:"-"`
	Phone        string   `bson:"phone" json:"phone"`
	Role         UserRole `bson:"role" json:"role"`

	// Address fields
	State    string `bson:"state,omitempty" json:"state,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	Taluka   string `bson:"taluka,omitempty" json:"taluka,omitempty"`
	Village  string `bson:"village,omitempty" json:"village,omitempty"`
	Pincode  string `bson:"pincode,omitempty" json:"pincode,omitempty"`

	// Document paths, collected for every role
	ProfileImage    string `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	PanCard         string `bson:"pan_card,omitempty" json:"panCard,omitempty"`
	CancelledCheque string `bson:"cancelled_cheque,omitempty" json:"cancelledCheque,omitempty"`

	// Role-conditional profile variants
	Farmer *FarmerProfile `bson:"farmer,omitempty" json:"farmer,omitempty"`
	Buyer  *BuyerProfile  `bson:"buyer,omitempty" json:"buyer,omitempty"`
	Helper *HelperProfile `bson:"helper,omitempty" json:"helper,omitempty"`

	IsVerified  bool   `bson:"is_verified" json:"isVerified"`
	FirebaseUID string `bson:"firebase_uid,omitempty" json:"firebaseUid,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FarmerProfile holds fields meaningful only for farmers.
type FarmerProfile struct {
	AgricultureCertificate string `bson:"agriculture_certificate,omitempty" json:"agricultureCertificate,omitempty"`
}

// BuyerProfile holds fields meaningful only for buyers.
type BuyerProfile struct {
	GSTNumber string `bson:"gst_number,omitempty" json:"gstNumber,omitempty"`
}

// HelperProfile holds fields meaningful only for helpers.
type HelperProfile struct {
	Qualification string `bson:"qualification,omitempty" json:"qualification,omitempty"`
	Expertise     string `bson:"expertise,omitempty" json:"expertise,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleFarmer UserRole = "farmer"
	UserRoleBuyer  UserRole = "buyer"
	UserRoleHelper UserRole = "helper"
	UserRoleAdmin  UserRole = "admin"
)

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleFarmer, UserRoleBuyer, UserRoleHelper, UserRoleAdmin:
		return true
	}
	return false
}

func DefaultRole() UserRole {
	return UserRoleBuyer
}

// DocumentPaths lists every on-disk artifact owned by the user, skipping
// empty entries.
func (u *User) DocumentPaths() []string {
	paths := make([]string, 0, 4)
	for _, p := range []string{u.ProfileImage, u.PanCard, u.CancelledCheque, u.AgricultureCertificate()} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// AgricultureCertificate returns the farmer certificate path, or "" when the
// user is not a farmer.
func (u *User) AgricultureCertificate() string {
	if u.Farmer == nil {
		return ""
	}
	return u.Farmer.AgricultureCertificate
}

// RetagRole switches the user's role and drops the profile variants that no
// longer match it.
func (u *User) RetagRole(role UserRole) {
	u.Role = role
	if role != UserRoleFarmer {
		u.Farmer = nil
	}
	if role != UserRoleBuyer {
		u.Buyer = nil
	}
	if role != UserRoleHelper {
		u.Helper = nil
	}
}
