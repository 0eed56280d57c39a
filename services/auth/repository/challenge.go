package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neuroscan-id/neuroscan/internal/pkg/constants"
	"github.com/neuroscan-id/neuroscan/internal/pkg/models"
)

// consumeScript deletes the pending challenge iff its stored code matches
// the claimed one. Running it server-side makes verification a single
// atomic step, so a code can be consumed at most once even under
// concurrent verify calls, while a mismatch leaves the challenge intact.
const consumeScript = `
local raw = redis.call('GET', KEYS[1])
if not raw then
	return 0
end
local challenge = cjson.decode(raw)
if challenge.code == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
return 0
`

// StoreChallenge stores the challenge as the sole pending one for its
// recipient. A plain SET means the last issue wins; the key TTL enforces
// expiry.
func (r *ChallengeRepo) StoreChallenge(ctx context.Context, challenge *models.Challenge) error {
	now := time.Now()
	expiry := time.Duration(r.cfg.Auth.OTPExpiryMinutes) * time.Minute
	challenge.IssuedAt = now
	challenge.ExpiresAt = now.Add(expiry)

	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, challenge.Recipient)
	if err := r.redisClient.Set(ctx, key, data, expiry); err != nil {
		return fmt.Errorf("failed to store challenge in Redis: %w", err)
	}

	return nil
}

// ConsumeChallenge atomically compares and deletes the pending challenge.
// Returns true only on an exact code match; no state changes otherwise.
func (r *ChallengeRepo) ConsumeChallenge(ctx context.Context, recipient, code string) (bool, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, recipient)

	res, err := r.redisClient.Eval(ctx, consumeScript, []string{key}, code)
	if err != nil {
		return false, fmt.Errorf("failed to consume challenge: %w", err)
	}

	matched, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected consume script result %T", res)
	}

	return matched == 1, nil
}
