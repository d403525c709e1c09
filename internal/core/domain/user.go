package domain

import (
	"errors"
	"time"
)

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	StatusPending UserStatus = "pending"
	StatusActive  UserStatus = "active"
)

var ErrMissingFields = errors.New("you should input all fields")
var ErrDuplicateUsername = errors.New("username should be unique")
var ErrDuplicateEmail = errors.New("email should be unique")
var ErrInvalidCredentials = errors.New("password or username are incorrect")
var ErrAccountNotActive = errors.New("account is not activated")
var ErrUserNotFound = errors.New("such user is not exists")
var ErrEmailNotFound = errors.New("no user with such email")
var ErrInvalidCode = errors.New("invalid code")
var ErrInvalidToken = errors.New("invalid token")
var ErrUnauthenticated = errors.New("you are not authorized")
var ErrForbidden = errors.New("not allowed")
var ErrSuperAdminImmutable = errors.New("super admin account cannot be modified")

// User is the account aggregate. Credential and lifecycle-code fields are
// excluded from JSON marshalling; Public() is the only view that may cross
// the API boundary.
type User struct {
	ID                  string     `json:"id" bson:"_id,omitempty"`
	Username            string     `json:"username" bson:"username"`
	FirstName           string     `json:"firstname" bson:"firstname"`
	LastName            string     `json:"lastname" bson:"lastname"`
	Email               string     `json:"email" bson:"email"`
	PasswordHash        string     `json:"-" bson:"password"`
	HashCost            int        `json:"-" bson:"salt"`
	Type                int        `json:"type" bson:"type"`
	Status              UserStatus `json:"status" bson:"status"`
	ActivationCode      string     `json:"-" bson:"activation_code,omitempty"`
	RestorePasswordCode string     `json:"-" bson:"restore_password_code,omitempty"`
	AvatarFileID        string     `json:"avatar_file_id,omitempty" bson:"avatar_file_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" bson:"updated_at"`
}

// PublicUser is the sanitized account view: no password hash, no hash cost,
// no activation or restore codes. Role and permissions are resolved from the
// static catalog so clients can render their UI without extra round trips.
type PublicUser struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	FirstName    string           `json:"firstname"`
	LastName     string           `json:"lastname"`
	Email        string           `json:"email"`
	Type         int              `json:"type"`
	Status       UserStatus       `json:"status"`
	Role         Role             `json:"role,omitempty"`
	Permissions  []PermissionView `json:"permissions,omitempty"`
	AvatarFileID string           `json:"avatar_file_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Public returns the sanitized view of the account. Unknown role types yield
// an empty role and no permission list rather than an error: redaction must
// never fail.
func (u *User) Public() PublicUser {
	pu := PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Type:         u.Type,
		Status:       u.Status,
		AvatarFileID: u.AvatarFileID,
		CreatedAt:    u.CreatedAt,
	}
	role, err := RoleForType(u.Type)
	if err != nil {
		return pu
	}
	pu.Role = role
	pu.Permissions = PermissionViews(role)
	return pu
}

// IsSuperAdmin reports whether the account holds the super-admin type.
// The designated super-admin account is protected from update and deletion.
func (u *User) IsSuperAdmin() bool {
	return u.Type == TypeSuperAdmin
}
