// Package session keeps the server-side record behind the login cookie.
package session

import (
	"context"
	"time"

	"scoreboard/internal/models"

	"github.com/google/uuid"
)

// Store persists sessions by id. Get returns (nil, nil) for an unknown or
// expired id. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Set(ctx context.Context, s models.Session) error
	Destroy(ctx context.Context, id string) error
}

// New builds a session for username/role valid for ttl from now.
func New(username, role string, ttl time.Duration, now time.Time) models.Session {
	now = now.UTC()
	return models.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
