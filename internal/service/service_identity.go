package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// identityService is the concrete implementation of IdentityService.
// It owns the password hashing and the security-stamp rotation that makes
// confirmation and reset tokens single-use.
type identityService struct {
	userRepository store.UserRepository
	roleRepository store.RoleRepository

	passwordHasher crypto.PasswordHasher
	tokenProvider  crypto.TokenProvider
	idGenerator    *utils.IDGenerator

	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService over the given
// repositories and crypto primitives.
func NewIdentityService(
	userRepository store.UserRepository,
	roleRepository store.RoleRepository,
	passwordHasher crypto.PasswordHasher,
	tokenProvider crypto.TokenProvider,
	logger *logger.Logger,
) IdentityService {
	return &identityService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		passwordHasher: passwordHasher,
		tokenProvider:  tokenProvider,
		idGenerator:    utils.NewIDGenerator(),
		logger:         logger,
	}
}

// FindByEmail looks the user up by the normalized form of email.
// Returns ErrUserNotFound if there is none.
func (s *identityService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.userRepository.FindUserByNormalizedEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return models.User{}, mapUserLookupError(err)
	}

	return user, nil
}

// FindByID returns the user with userID or ErrUserNotFound.
func (s *identityService) FindByID(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrUserNotFound
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapUserLookupError(err)
	}

	return user, nil
}

// Create stores a new unconfirmed account whose username is its email.
//
// Returns:
//   - ErrPasswordPolicy (wrapping the violated rule) if password is too weak.
//   - ErrEmailAlreadyExists if the normalized email is taken.
func (s *identityService) Create(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.CheckPasswordPolicy(password); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordPolicy, err)
	}

	passwordHash, err := s.passwordHasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:              s.idGenerator.NewID(),
		Email:           email,
		NormalizedEmail: utils.NormalizeEmail(email),
		UserName:        email,
		PasswordHash:    passwordHash,
		SecurityStamp:   s.idGenerator.NewSecurityStamp(),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("user_id", user.ID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (s *identityService) CheckPassword(ctx context.Context, user models.User, password string) (bool, error) {
	ok, err := s.passwordHasher.Compare(user.PasswordHash, password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("password comparison failed")
		return false, fmt.Errorf("password comparison failed: %w", err)
	}

	return ok, nil
}

func (s *identityService) AddToRole(ctx context.Context, user models.User, role string) error {
	if err := s.roleRepository.AddUserToRole(ctx, user.ID, models.NormalizeRoleName(role)); err != nil {
		return fmt.Errorf("adding user to role %q: %w", role, err)
	}

	return nil
}

func (s *identityService) GetRoles(ctx context.Context, user models.User) ([]string, error) {
	roles, err := s.roleRepository.GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("loading user roles: %w", err)
	}

	return roles, nil
}

func (s *identityService) GenerateEmailConfirmationToken(ctx context.Context, user models.User) (string, error) {
	token, err := s.tokenProvider.Generate(models.PurposeEmailConfirmation, user)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ConfirmEmail marks the email confirmed and rotates the security stamp.
// A user that is already confirmed is left unchanged.
//
// Returns ErrInvalidToken if the token is rejected or the stamp changed
// concurrently.
func (s *identityService) ConfirmEmail(ctx context.Context, user models.User, token string) error {
	if err := s.tokenProvider.Validate(models.PurposeEmailConfirmation, token, user); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("user_id", user.ID).Msg("confirmation token rejected")
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if user.EmailConfirmed {
		return nil
	}

	err := s.userRepository.ConfirmEmail(ctx, user.ID, user.SecurityStamp, s.idGenerator.NewSecurityStamp())
	if err != nil {
		if errors.Is(err, store.ErrStaleSecurityStamp) {
			return fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return fmt.Errorf("confirming email: %w", err)
	}

	return nil
}

func (s *identityService) GeneratePasswordResetToken(ctx context.Context, user models.User) (string, error) {
	token, err := s.tokenProvider.Generate(models.PurposePasswordReset, user)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResetPassword replaces the password hash and rotates the security stamp,
// which also invalidates every session issued before.
//
// Returns ErrInvalidToken if the token is rejected, the new password violates
// the policy (then ErrPasswordPolicy matches as well) or the stamp changed
// concurrently.
func (s *identityService) ResetPassword(ctx context.Context, user models.User, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := s.tokenProvider.Validate(models.PurposePasswordReset, token, user); err != nil {
		log.Debug().Err(err).Str("user_id", user.ID).Msg("reset token rejected")
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if err := validators.CheckPasswordPolicy(newPassword); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrInvalidToken, ErrPasswordPolicy, err)
	}

	passwordHash, err := s.passwordHasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	err = s.userRepository.UpdatePassword(ctx, user.ID, user.SecurityStamp, passwordHash, s.idGenerator.NewSecurityStamp())
	if err != nil {
		if errors.Is(err, store.ErrStaleSecurityStamp) {
			return fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}

	return fmt.Errorf("user lookup failed: %w", err)
}
