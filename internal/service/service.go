package service

import (
	"context"

	"scoreboard/internal/models"
	"scoreboard/internal/repository"
	"scoreboard/internal/session"
)

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput, actor *models.Session) (models.User, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Lookup(ctx context.Context, sessionID string) (*models.Session, error)
	SetRole(ctx context.Context, actor *models.Session, username, role string) error
}

// Scores exposes the house scoreboard.
type Scores interface {
	List(ctx context.Context) ([]models.Score, error)
	Update(ctx context.Context, house string, score *int) (models.Score, error)
}

// Events manages the meet schedule.
type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, in EventInput) (int, error)
	Update(ctx context.Context, id int, in EventInput) error
	Delete(ctx context.Context, id int) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Scores
	Events
}

// NewService wires the repository layer and session store into concrete services.
func NewService(repos *repository.Repository, sessions session.Store, opts AuthOptions) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, sessions, opts),
		Scores:        NewScoreService(repos.ScoreRepo),
		Events:        NewEventService(repos.EventRepo),
	}
}
