package ports

import (
	"context"

	"github.com/trendythreads/storefront/internal/core/domain"
)

// SessionStore manages server-side session records referenced by the
// token held in the client's cookie.
type SessionStore interface {
	Create(ctx context.Context, userID, username string) (*domain.Session, error)
	// Find returns the session for the given ID or domain.ErrSessionNotFound.
	Find(ctx context.Context, sessionID string) (*domain.Session, error)
	Destroy(ctx context.Context, sessionID string) error
}
