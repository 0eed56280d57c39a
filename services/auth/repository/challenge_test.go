package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscan-id/neuroscan/internal/pkg/constants"
	"github.com/neuroscan-id/neuroscan/internal/pkg/database"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

func setupChallengeRepoTest(t *testing.T) (*ChallengeRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cfg := &models.Config{
		Auth: models.AuthConfig{
			OTPExpiryMinutes: 5,
		},
	}

	repo := NewChallengeRepo(cfg, &database.RedisClient{Client: client})

	return repo, mr
}

func TestStoreChallenge(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	challenge := &models.Challenge{
		Recipient: "alice@example.com",
		Code:      "123456",
	}

	err := repo.StoreChallenge(context.Background(), challenge)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserOTP, "alice@example.com")
	raw, err := mr.Get(key)
	require.NoError(t, err)

	var stored models.Challenge
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "123456", stored.Code)
	assert.Equal(t, "alice@example.com", stored.Recipient)
	assert.False(t, stored.IssuedAt.IsZero())
	assert.True(t, stored.ExpiresAt.After(stored.IssuedAt))

	// The key expires with the challenge
	assert.Equal(t, 5*time.Minute, mr.TTL(key))
}

func TestStoreChallenge_LastIssueWins(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	recipient := "alice@example.com"

	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: recipient, Code: "111111"}))
	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: recipient, Code: "222222"}))

	// The earlier code is gone
	ok, err := repo.ConsumeChallenge(ctx, recipient, "111111")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ConsumeChallenge(ctx, recipient, "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsumeChallenge_ExactMatch(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	recipient := "alice@example.com"

	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: recipient, Code: "123456"}))

	ok, err := repo.ConsumeChallenge(ctx, recipient, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	// Consumed challenges cannot be replayed
	ok, err = repo.ConsumeChallenge(ctx, recipient, "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsumeChallenge_WrongCodeDoesNotConsume(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	recipient := "alice@example.com"

	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: recipient, Code: "123456"}))

	ok, err := repo.ConsumeChallenge(ctx, recipient, "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	// The pending challenge survives wrong guesses
	ok, err = repo.ConsumeChallenge(ctx, recipient, "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsumeChallenge_NoPendingChallenge(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	ok, err := repo.ConsumeChallenge(context.Background(), "ghost@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsumeChallenge_Expired(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	recipient := "alice@example.com"

	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: recipient, Code: "123456"}))

	mr.FastForward(6 * time.Minute)

	ok, err := repo.ConsumeChallenge(ctx, recipient, "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsumeChallenge_DistinctRecipients(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: "alice@example.com", Code: "111111"}))
	require.NoError(t, repo.StoreChallenge(ctx, &models.Challenge{Recipient: "bob@example.com", Code: "222222"}))

	// Consuming one recipient's challenge leaves the other's intact
	ok, err := repo.ConsumeChallenge(ctx, "alice@example.com", "111111")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ConsumeChallenge(ctx, "bob@example.com", "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}
