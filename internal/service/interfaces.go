package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthService runs the account workflows behind /api/auth.
//
// Expected failures (unknown user, bad credentials, rejected token) are
// reported in the returned [models.Result]; a non-nil error is an
// infrastructure fault.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (models.Result, error)
	Login(ctx context.Context, email, password string) (models.Result, error)
	ConfirmEmail(ctx context.Context, userID, token string) (models.Result, error)
	ResendConfirmEmailLink(ctx context.Context, email string) (models.Result, error)
	SendPasswordResetLink(ctx context.Context, email string) (models.Result, error)
	ResetPassword(ctx context.Context, userID, token, newPassword string) (models.Result, error)

	// ParseToken verifies a session token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService resolves the authenticated principal to the current account.
type UserService interface {
	// GetCurrentUser returns nil without error when the account no longer
	// exists or the principal was issued before its security stamp changed.
	GetCurrentUser(ctx context.Context, principal models.Token) (*models.CurrentUser, error)
}

// IdentityService manages accounts, passwords, roles and the single-use
// confirmation and reset tokens.
type IdentityService interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)
	Create(ctx context.Context, email, password string) (models.User, error)
	CheckPassword(ctx context.Context, user models.User, password string) (bool, error)

	AddToRole(ctx context.Context, user models.User, role string) error
	GetRoles(ctx context.Context, user models.User) ([]string, error)

	GenerateEmailConfirmationToken(ctx context.Context, user models.User) (string, error)
	ConfirmEmail(ctx context.Context, user models.User, token string) error

	GeneratePasswordResetToken(ctx context.Context, user models.User) (string, error)
	ResetPassword(ctx context.Context, user models.User, token, newPassword string) error
}

// NotificationService sends the account emails. token is already URL-safe
// encoded.
type NotificationService interface {
	SendEmailConfirmationMail(ctx context.Context, userID, email, token string) error
	SendForgotPasswordMail(ctx context.Context, userID, email, token string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
