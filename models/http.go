package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// EmailRequest is the body of the endpoints that only need an address:
// resend confirmation and forgot password.
type EmailRequest struct {
	Email string `json:"email"`
}

// PasswordResetRequest is the body of POST /api/auth/reset-password/{userId}.
// Token is the URL-safe encoded reset token received by email.
type PasswordResetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
