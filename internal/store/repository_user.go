// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// userRepository is the SQL implementation of [UserRepository] backed by the
// "users" table. Queries are built with squirrel using the placeholder
// format of the connected dialect.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser inserts user and returns it with CreatedAt and UpdatedAt set.
//
// Error handling:
//   - unique violation on normalized_email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := r.db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Email,
			user.NormalizedEmail,
			user.UserName,
			user.PasswordHash,
			user.EmailConfirmed,
			user.SecurityStamp,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByNormalizedEmail returns the user whose normalized email equals
// normalizedEmail, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByNormalizedEmail(ctx context.Context, normalizedEmail string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByNormalizedEmail", sq.Eq{"normalized_email": normalizedEmail})
}

// FindUserByID returns the user with the given id, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ConfirmEmail marks the email as confirmed and rotates the security stamp.
func (r *userRepository) ConfirmEmail(ctx context.Context, userID, oldStamp, newStamp string) error {
	return r.guardedUpdate(ctx, "*userRepository.ConfirmEmail", userID, oldStamp, map[string]any{
		"email_confirmed": true,
		"security_stamp":  newStamp,
	})
}

// UpdatePassword stores a new password hash and rotates the security stamp.
func (r *userRepository) UpdatePassword(ctx context.Context, userID, oldStamp, passwordHash, newStamp string) error {
	return r.guardedUpdate(ctx, "*userRepository.UpdatePassword", userID, oldStamp, map[string]any{
		"password_hash":  passwordHash,
		"security_stamp": newStamp,
	})
}

// guardedUpdate applies set to the user row only while its security stamp
// still equals oldStamp. Zero affected rows yields [ErrStaleSecurityStamp].
func (r *userRepository) guardedUpdate(ctx context.Context, funcName, userID, oldStamp string, set map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(usersTable).
		SetMap(set).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": userID, "security_stamp": oldStamp}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Str("user_id", userID).Msg("security stamp changed concurrently")
		return ErrStaleSecurityStamp
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.NormalizedEmail,
		&user.UserName,
		&user.PasswordHash,
		&user.EmailConfirmed,
		&user.SecurityStamp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
