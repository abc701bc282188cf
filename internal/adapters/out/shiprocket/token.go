package shiprocket

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/singleflight"
)

// TokenTTL is how long an issued token stays valid. Shiprocket tokens
// live for 10 days; at exactly the boundary the token is refreshed.
const TokenTTL = 10 * 24 * time.Hour

// TokenRecord is the persisted token entry: the token itself plus the
// issue instant in epoch milliseconds. The record is overwritten
// wholesale on refresh, never partially updated.
type TokenRecord struct {
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
}

// TokenStore persists the single token record across restarts.
type TokenStore interface {
	Load() (TokenRecord, error)
	Save(record TokenRecord) error
}

// FileTokenStore keeps the token record in one JSON file, surviving
// process restarts the way the portal always has.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store backed by the given file path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the record. A missing or corrupt file is an error; the
// cache treats it as a miss.
func (s *FileTokenStore) Load() (TokenRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return TokenRecord{}, err
	}

	var record TokenRecord
	if err = json.Unmarshal(data, &record); err != nil {
		return TokenRecord{}, fmt.Errorf("decode token file: %w", err)
	}
	return record, nil
}

// Save overwrites the record atomically enough for a single-writer
// cache.
func (s *FileTokenStore) Save(record TokenRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// LoginFunc exchanges credentials for a fresh token.
type LoginFunc func(ctx context.Context) (string, error)

// TokenCache implements ports.TokenProvider over a TokenStore. A
// stored token is reused verbatim while younger than TokenTTL;
// otherwise one login refreshes it for all concurrent callers
// (single-flight), and the new record fully replaces the old one.
type TokenCache struct {
	store TokenStore
	login LoginFunc
	now   func() time.Time
	group singleflight.Group
}

// NewTokenCache creates a cache with the wall clock.
func NewTokenCache(store TokenStore, login LoginFunc) *TokenCache {
	return NewTokenCacheWithClock(store, login, time.Now)
}

// NewTokenCacheWithClock creates a cache with an injected clock.
func NewTokenCacheWithClock(store TokenStore, login LoginFunc, now func() time.Time) *TokenCache {
	return &TokenCache{
		store: store,
		login: login,
		now:   now,
	}
}

// Token returns a valid API token, refreshing through the login
// endpoint when the cached one is absent or expired.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	value, err, _ := c.group.Do("token", func() (any, error) {
		// A caller that queued behind the refresh finds it fresh.
		if token, ok := c.cached(); ok {
			return token, nil
		}

		token, err := c.login(ctx)
		if err != nil {
			return "", err
		}
		if err = c.store.Save(TokenRecord{Token: token, Timestamp: c.now().UnixMilli()}); err != nil {
			return "", fmt.Errorf("store token: %w", err)
		}
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

func (c *TokenCache) cached() (string, bool) {
	record, err := c.store.Load()
	if err != nil || record.Token == "" {
		return "", false
	}
	if c.now().UnixMilli()-record.Timestamp < TokenTTL.Milliseconds() {
		return record.Token, true
	}
	return "", false
}
