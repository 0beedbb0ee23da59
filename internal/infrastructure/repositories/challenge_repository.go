package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/notesvc/domain"
)

// ChallengeRepositoryImpl implements domain.ChallengeRepository using
// Redis. One key per email means issuing a new challenge atomically
// replaces the previous one, which is the at-most-one-active invariant.
type ChallengeRepositoryImpl struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
}

// NewChallengeRepository creates a new challenge repository. The
// retention must exceed the challenge validity window: an expired
// challenge is kept readable so a late attempt gets an expiry failure
// instead of an invalid-code failure.
func NewChallengeRepository(client *redis.Client, retention time.Duration) domain.ChallengeRepository {
	return &ChallengeRepositoryImpl{
		client:    client,
		prefix:    "otp:",
		retention: retention,
	}
}

// Save implements domain.ChallengeRepository
func (r *ChallengeRepositoryImpl) Save(ctx context.Context, email string, challenge domain.Challenge) error {
	key := r.prefix + email
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	return r.client.Set(ctx, key, data, r.retention).Err()
}

// Find implements domain.ChallengeRepository
func (r *ChallengeRepositoryImpl) Find(ctx context.Context, email string) (*domain.Challenge, error) {
	key := r.prefix + email
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var challenge domain.Challenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// Delete implements domain.ChallengeRepository
func (r *ChallengeRepositoryImpl) Delete(ctx context.Context, email string) error {
	key := r.prefix + email
	return r.client.Del(ctx, key).Err()
}
