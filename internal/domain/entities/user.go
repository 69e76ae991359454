package entities

import (
	"time"
)

// User represents an account. Accounts are created inactive and must be
// activated through an emailed token before they can log in.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the one-to-one companion of a User.
type Profile struct {
	ID            uint `json:"id"`
	UserID        uint `json:"user"`
	EmailVerified bool `json:"email_verified"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name" binding:"required,max=255"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ActivationInput carries the uid/token pair from an activation link.
type ActivationInput struct {
	UID   string `json:"uid" binding:"required"`
	Token string `json:"token" binding:"required"`
}

// ChangePasswordInput represents input for an authenticated password change.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ResetPasswordRequestInput starts the password reset flow.
type ResetPasswordRequestInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordConfirmInput completes the password reset flow. NewPassword
// is checked after token verification so its absence reports a distinct
// error from an invalid link.
type ResetPasswordConfirmInput struct {
	UID         string `json:"uid" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password"`
}
