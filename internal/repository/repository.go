package repository

import (
	"context"
	"database/sql"
	"time"

	"scoreboard/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash, role string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	SetRole(ctx context.Context, username, role string) error
}

type ScoreRepo interface {
	List(ctx context.Context) ([]models.Score, error)
	Update(ctx context.Context, house string, score int) (models.Score, error)
}

type EventRepo interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, e models.Event) (int, error)
	Update(ctx context.Context, e models.Event) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Auth      Authorization
	ScoreRepo ScoreRepo
	EventRepo EventRepo
}

// NewRepository wires every repository to the shared connection pool.
// queryTimeout bounds each statement, including the wait for a free connection.
func NewRepository(db *sql.DB, queryTimeout time.Duration) *Repository {
	return &Repository{
		Auth:      NewUserRepository(db, queryTimeout),
		ScoreRepo: NewScoreRepository(db, queryTimeout),
		EventRepo: NewEventRepository(db, queryTimeout),
	}
}

// withTimeout derives a statement context; a non-positive d leaves ctx as is.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
