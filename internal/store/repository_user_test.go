// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	storemock "github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, DialectPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	repo := &userRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testUser() models.User {
	return models.User{
		ID:              "0197e84b-0000-7000-8000-000000000001",
		Email:           "John@Example.com",
		NormalizedEmail: "john@example.com",
		UserName:        "John@Example.com",
		PasswordHash:    "$2a$10$hash",
		SecurityStamp:   "stamp-1",
	}
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		u.ID, u.Email, u.NormalizedEmail, u.UserName, u.PasswordHash,
		u.EmailConfirmed, u.SecurityStamp, fixedNow, fixedNow,
	)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.NormalizedEmail, user.UserName, user.PasswordHash,
			false, user.SecurityStamp, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != user.ID {
		t.Errorf("expected ID=%s, got %s", user.ID, created.ID)
	}
	if !created.CreatedAt.Equal(fixedNow) || !created.UpdatedAt.Equal(fixedNow) {
		t.Errorf("expected timestamps to be set, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatal("network error must not be reported as a duplicate")
	}
}

// The repository must rely on the dialect classificator rather than on
// driver error types.
func TestCreateUser_DelegatesClassification(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	classificator := storemock.NewMockErrorClassificator(gomock.NewController(t))
	repo.db.errorClassificator = classificator

	dbErr := errors.New("duplicate key")
	mock.ExpectExec("INSERT INTO users").WillReturnError(dbErr)
	classificator.EXPECT().IsUniqueViolation(dbErr).Return(true)

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestFindUserByNormalizedEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	user.EmailConfirmed = true

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE normalized_email = \$1 LIMIT 1`).
		WithArgs("john@example.com").
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByNormalizedEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != user.ID || found.Email != user.Email {
		t.Errorf("unexpected user %+v", found)
	}
	if !found.EmailConfirmed {
		t.Error("expected EmailConfirmed=true")
	}
	if found.SecurityStamp != "stamp-1" {
		t.Errorf("expected stamp-1, got %s", found.SecurityStamp)
	}
}

func TestFindUserByNormalizedEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByNormalizedEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.NormalizedEmail != user.NormalizedEmail {
		t.Errorf("expected %s, got %s", user.NormalizedEmail, found.NormalizedEmail)
	}
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByID(context.Background(), "id")
	if err == nil || errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id")) // wrong shape

	_, err := repo.FindUserByID(context.Background(), "id")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestConfirmEmail(t *testing.T) {
	tests := []struct {
		name     string
		result   driver.Result
		execErr  error
		expected error
	}{
		{name: "confirmed", result: sqlmock.NewResult(0, 1)},
		{name: "stale stamp", result: sqlmock.NewResult(0, 0), expected: ErrStaleSecurityStamp},
		{name: "driver error", execErr: sql.ErrConnDone, expected: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec(`UPDATE users SET email_confirmed = \$1, security_stamp = \$2, updated_at = \$3 WHERE id = \$4 AND security_stamp = \$5`).
				WithArgs(true, "stamp-2", fixedNow, "user-1", "stamp-1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.ConfirmEmail(context.Background(), "user-1", "stamp-1", "stamp-2")
			if tt.expected == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users SET password_hash = \$1, security_stamp = \$2, updated_at = \$3 WHERE id = \$4 AND security_stamp = \$5`).
		WithArgs("new-hash", "stamp-2", fixedNow, "user-1", "stamp-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), "user-1", "stamp-1", "new-hash", "stamp-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdatePassword_StaleStamp(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET password_hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), "user-1", "old", "hash", "new")
	if !errors.Is(err, ErrStaleSecurityStamp) {
		t.Fatalf("expected ErrStaleSecurityStamp, got %v", err)
	}
}

func TestUpdatePassword_RowsAffectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no rows info")))

	err := repo.UpdatePassword(context.Background(), "user-1", "stamp-1", "hash", "stamp-2")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
