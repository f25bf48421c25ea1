package service

import (
	"context"
	"errors"
	"fmt"

	"scoreboard/internal/models"
	"scoreboard/internal/repository"
)

const (
	msgScoreRequired = "House and score are required"
	msgHouseNotFound = "House not found"
)

type ScoreService struct {
	scoreRepo repository.ScoreRepo
}

func NewScoreService(scoreRepo repository.ScoreRepo) *ScoreService {
	return &ScoreService{scoreRepo: scoreRepo}
}

func (s *ScoreService) List(ctx context.Context) ([]models.Score, error) {
	scores, err := s.scoreRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return scores, nil
}

// Update overwrites the score of an existing house. Any integer is accepted,
// including negatives; score is a pointer so that 0 is distinguishable from absent.
func (s *ScoreService) Update(ctx context.Context, house string, score *int) (models.Score, error) {
	if house == "" || score == nil {
		return models.Score{}, newError(ErrValidation, msgScoreRequired)
	}
	updated, err := s.scoreRepo.Update(ctx, house, *score)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Score{}, newError(ErrNotFound, msgHouseNotFound)
		}
		return models.Score{}, fmt.Errorf("update score: %w", err)
	}
	return updated, nil
}
