package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
	"github.com/neuroscan-id/neuroscan/services/auth"
)

// CreateUser creates a new user in the database
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	query := `
		INSERT INTO users (id, username, email, password_hash, otp_secret,
			created_at, updated_at, is_active
		) VALUES (:id, :username, :email, :password_hash, :otp_secret,
			:created_at, :updated_at, :is_active)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, otp_secret, created_at, updated_at, is_active
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateOTPSecret persists the TOTP secret for a user
func (r *UserRepo) UpdateOTPSecret(ctx context.Context, username, secret string) error {
	query := `
		UPDATE users
		SET otp_secret = $1, updated_at = $2
		WHERE username = $3
	`

	result, err := r.db.ExecContext(ctx, query, secret, time.Now(), username)
	if err != nil {
		return fmt.Errorf("failed to update otp secret: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}
