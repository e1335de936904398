package model

import "time"

// Role is the marketplace role attached to every account.
type Role string

const (
	RoleDesigner   Role = "designer"
	RoleSupplier   Role = "supplier"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsAdmin reports whether the role has back-office access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Profile carries the role-specific account details.
type Profile struct {
	CompanyName            string `json:"company_name,omitempty"`
	Location               string `json:"location,omitempty"`
	Bio                    string `json:"bio,omitempty"`
	InstagramHandle        string `json:"instagram_handle,omitempty"`
	HasCompletedOnboarding bool   `json:"has_completed_onboarding"`
}

// User is the authenticated account as returned by the marketplace API.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    string    `json:"status,omitempty"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OnboardingComplete treats a missing profile as not onboarded.
func (u *User) OnboardingComplete() bool {
	return u.Profile != nil && u.Profile.HasCompletedOnboarding
}

// LoginRequest is the credential payload for /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for /register.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 Role   `json:"role" validate:"required,oneof=designer supplier"`
}

// ResetPasswordRequest completes a forgot-password flow.
type ResetPasswordRequest struct {
	Token                string `json:"token" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserStatus is the account state managed from the back office.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// AdminStats is the back-office dashboard summary.
type AdminStats struct {
	TotalUsers          int   `json:"total_users"`
	Designers           int   `json:"designers"`
	Suppliers           int   `json:"suppliers"`
	ActiveSubscriptions int   `json:"active_subscriptions"`
	RevenueCents        int64 `json:"revenue_cents"`
}
