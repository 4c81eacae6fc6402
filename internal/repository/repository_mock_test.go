package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"course_enrollment/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB wires gorm's postgres dialect to sqlmock so driver failures can
// be injected.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = sqlDB.Close()
	}
	return gdb, mock, cleanup
}

func TestUserRepository_GetByUsername_QueryError(t *testing.T) {
	gdb, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnError(errors.New("connection reset"))

	u, err := NewUserRepository(gdb).GetByUsername(context.Background(), "bob")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if u != nil {
		t.Fatalf("expected user=nil on error, got %+v", u)
	}
	if !strings.Contains(err.Error(), "select user") || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserRepository_Create_TranslatesUniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantDup bool
	}{
		{name: "unique violation", dbErr: &pgconn.PgError{Code: "23505"}, wantDup: true},
		{name: "other failure", dbErr: errors.New("db exec failed"), wantDup: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb, mock, cleanup := newMockDB(t)
			defer cleanup()

			mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(tt.dbErr)

			err := NewUserRepository(gdb).Create(context.Background(), &models.User{
				Username: "alice", Email: "a@x.com", PasswordHash: "h",
			})
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if errors.Is(err, ErrDuplicate) != tt.wantDup {
				t.Fatalf("errors.Is(ErrDuplicate)=%v, want %v (err=%v)", !tt.wantDup, tt.wantDup, err)
			}
			if !strings.Contains(err.Error(), "insert user") {
				t.Fatalf("expected wrapped error, got %v", err)
			}
		})
	}
}

func TestEnrollmentRepository_ListByUser_QueryError(t *testing.T) {
	gdb, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT courses.id AS course_id`).
		WillReturnError(errors.New("db down"))

	_, err := NewEnrollmentRepository(gdb).ListByUser(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "list enrollments of user 1") {
		t.Fatalf("unexpected error: %v", err)
	}
}
