package handler

import "github.com/weblibrary/library-system/internal/core/domain"

type signupRequest struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type signinRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type activateRequest struct {
	ID   string `json:"id" validate:"required"`
	Code string `json:"code" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	ID       string `json:"id" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// successResponse is the flat acknowledgement envelope used by signup,
// forgot-password, and reset-password.
type successResponse struct {
	Success string `json:"success"`
}

// authResponse is the session envelope returned by signin and activation.
type authResponse struct {
	UserData domain.PublicUser `json:"userData"`
	Token    string            `json:"token"`
}
