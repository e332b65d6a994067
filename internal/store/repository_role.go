package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindRoleByName returns the role with the given normalized name, or
// [ErrRoleNotFound].
func (r *roleRepository) FindRoleByName(ctx context.Context, normalizedName string) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(roleColumns...).
		From(rolesTable).
		Where(sq.Eq{"normalized_name": normalizedName}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var role models.Role
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&role.ID, &role.Name, &role.NormalizedName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}
		log.Err(err).Str("func", "*roleRepository.FindRoleByName").Msg("error selecting role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return role, nil
}

// AddUserToRole assigns the role named normalizedRoleName to the user.
//
// Error handling:
//   - unknown role → [ErrRoleNotFound].
//   - existing assignment → [ErrUserAlreadyInRole].
func (r *roleRepository) AddUserToRole(ctx context.Context, userID, normalizedRoleName string) error {
	log := logger.FromContext(ctx)

	role, err := r.FindRoleByName(ctx, normalizedRoleName)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Insert(userRolesTable).
		Columns("user_id", "role_id").
		Values(userID, role.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrUserAlreadyInRole
		}
		log.Err(err).Str("func", "*roleRepository.AddUserToRole").Msg("error inserting user role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetUserRoles returns the names of all roles assigned to the user, sorted
// by name. A user without roles yields an empty slice.
func (r *roleRepository) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("r.name").
		From(rolesTable + " r").
		Join(userRolesTable + " ur ON ur.role_id = r.id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("r.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.GetUserRoles").Msg("error selecting user roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roles = append(roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}
