package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewUserRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectExec("^INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO users").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	err := repo.CreateUser(context.Background(), &models.User{
		Username: "alice",
		Email:    "alice@example.com",
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	testCases := []struct {
		name       string
		username   string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:     "Success",
			username: "alice",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
				rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "otp_secret", "created_at", "updated_at", "is_active"}).
					AddRow(userID, "alice", "alice@example.com", "$2a$10$hash", nil, time.Now(), time.Now(), true)
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("alice").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.False(t, user.OTPSecret.Valid)
			},
		},
		{
			name:     "Success - With TOTP Secret",
			username: "bob",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "otp_secret", "created_at", "updated_at", "is_active"}).
					AddRow(uuid.New(), "bob", "bob@example.com", "$2a$10$hash", "JBSWY3DPEHPK3PXP", time.Now(), time.Now(), true)
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("bob").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.True(t, user.OTPSecret.Valid)
				assert.Equal(t, "JBSWY3DPEHPK3PXP", user.OTPSecret.String)
			},
		},
		{
			name:     "Not Found",
			username: "ghost",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("ghost").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.ErrorIs(t, err, auth.ErrUserNotFound)
				assert.Nil(t, user)
			},
		},
		{
			name:     "DB Error",
			username: "alice",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("alice").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, auth.ErrUserNotFound)
				assert.Nil(t, user)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByUsername(context.Background(), tc.username)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateOTPSecret(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOTPSecret(context.Background(), "alice", "JBSWY3DPEHPK3PXP")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOTPSecret_UserNotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOTPSecret(context.Background(), "ghost", "JBSWY3DPEHPK3PXP")

	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
