package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/neuroscan-id/neuroscan/internal/pkg/database"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

// UserRepo implements the user store backed by PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ChallengeRepo implements the pending email-challenge store backed by Redis
type ChallengeRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewChallengeRepo creates a new challenge repository instance
func NewChallengeRepo(cfg *models.Config, redisClient *database.RedisClient) *ChallengeRepo {
	return &ChallengeRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
