package domain

import "time"

type UserRole string

const (
	RoleBoater UserRole = "boater"
	RoleHost   UserRole = "host"
	RoleAdmin  UserRole = "admin"
)

// Actor is the authenticated caller, resolved from the access token.
// Services take it explicitly instead of reading ambient session state.
type Actor struct {
	UserID int64
	Role   UserRole
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	AvatarURL    string   `json:"avatar_url,omitempty"`

	IsHost      bool `json:"is_host"`
	IsSuperhost bool `json:"is_superhost"`
	IsVerified  bool `json:"is_verified"`

	IsSuspended      bool       `json:"is_suspended"`
	SuspendedAt      *time.Time `json:"suspended_at,omitempty"`
	SuspendedBy      *int64     `json:"suspended_by,omitempty"`
	SuspensionReason string     `json:"suspension_reason,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
