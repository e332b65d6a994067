package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// UserRepository persists user accounts.
//
// Updates that rotate the security stamp are guarded by the stamp the caller
// read: if it changed in the meantime nothing is written and
// ErrStaleSecurityStamp is returned.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByNormalizedEmail(ctx context.Context, normalizedEmail string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ConfirmEmail(ctx context.Context, userID, oldStamp, newStamp string) error
	UpdatePassword(ctx context.Context, userID, oldStamp, passwordHash, newStamp string) error
}

// RoleRepository manages roles and user-role assignments.
type RoleRepository interface {
	FindRoleByName(ctx context.Context, normalizedName string) (models.Role, error)
	AddUserToRole(ctx context.Context, userID, normalizedRoleName string) error
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
}

// ErrorClassificator recognises driver-specific errors that repositories
// translate into store sentinels.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}
