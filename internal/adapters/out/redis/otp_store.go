// Package redis holds the Redis-backed OTP store used by the admin
// login flow. Codes expire server-side so a stale entry can never
// verify.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"nexye/internal/pkg/errs"
)

// OTPTTL bounds how long a sent code stays valid.
const OTPTTL = 5 * time.Minute

const otpKeyPrefix = "otp:"

// OTPStore implements ports.OTPStore on a Redis client.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore creates a store with the default TTL.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client, ttl: OTPTTL}
}

// NewOTPStoreWithTTL creates a store with a custom TTL.
func NewOTPStoreWithTTL(client *redis.Client, ttl time.Duration) *OTPStore {
	return &OTPStore{client: client, ttl: ttl}
}

// Save stores the code for the email, replacing any previous one and
// restarting the expiry clock.
func (s *OTPStore) Save(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, otpKeyPrefix+email, code, s.ttl).Err()
}

// Load returns the stored code. Expired and never-sent codes both
// surface as ErrObjectNotFound.
func (s *OTPStore) Load(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, otpKeyPrefix+email).Result()
	if err == redis.Nil {
		return "", errs.NewObjectNotFoundError("otp", email)
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// Delete removes the code once consumed.
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKeyPrefix+email).Err()
}
