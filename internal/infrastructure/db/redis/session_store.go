package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/trendythreads/storefront/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps session records in Redis, one hash per session.
// Key format: session:<uuid>. Expiry is handled by the key TTL; there is
// no sweeper.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A non-positive ttl falls back to defaultSessionTTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create mints a new session for the user and stores it with the TTL.
func (s *SessionStore) Create(ctx context.Context, userID, username string) (*domain.Session, error) {
	id := uuid.NewString()
	key := s.key(id)

	if err := s.client.HSet(ctx, key, "user_id", userID, "username", username).Err(); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &domain.Session{ID: id, UserID: userID, Username: username}, nil
}

// Find loads the session record. A missing or expired key yields
// domain.ErrSessionNotFound.
func (s *SessionStore) Find(ctx context.Context, sessionID string) (*domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if len(fields) == 0 || fields["user_id"] == "" {
		return nil, domain.ErrSessionNotFound
	}

	return &domain.Session{
		ID:       sessionID,
		UserID:   fields["user_id"],
		Username: fields["username"],
	}, nil
}

// Destroy deletes the session record. Destroying a session that is
// already gone is not an error.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
