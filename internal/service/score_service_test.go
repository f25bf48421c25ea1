package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"scoreboard/internal/models"
	"scoreboard/internal/repository"
)

// fakeScoreRepo keeps house scores in a map.
type fakeScoreRepo struct {
	scores  map[string]int
	listErr error
	calls   int
}

func (f *fakeScoreRepo) List(context.Context) ([]models.Score, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Score, 0, len(f.scores))
	for _, h := range models.DefaultHouses {
		if v, ok := f.scores[h]; ok {
			out = append(out, models.Score{House: h, Score: v})
		}
	}
	return out, nil
}

func (f *fakeScoreRepo) Update(_ context.Context, house string, score int) (models.Score, error) {
	f.calls++
	if _, ok := f.scores[house]; !ok {
		return models.Score{}, fmt.Errorf("house %q: %w", house, repository.ErrNotFound)
	}
	f.scores[house] = score
	return models.Score{House: house, Score: score}, nil
}

func seededScores() *fakeScoreRepo {
	return &fakeScoreRepo{scores: map[string]int{"Atigala": 0, "Parakrama": 5, "Vijaya": 9, "Gemunu": 1}}
}

func intPtr(v int) *int { return &v }

func TestScoreService_Update(t *testing.T) {
	repo := seededScores()
	svc := NewScoreService(repo)
	ctx := context.Background()

	got, err := svc.Update(ctx, "Atigala", intPtr(42))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Score != 42 {
		t.Fatalf("expected 42, got %+v", got)
	}
	if repo.scores["Parakrama"] != 5 || repo.scores["Vijaya"] != 9 || repo.scores["Gemunu"] != 1 {
		t.Fatalf("other houses changed: %+v", repo.scores)
	}

	if _, err := svc.Update(ctx, "Vijaya", intPtr(-3)); err != nil {
		t.Fatalf("negative scores are accepted: %v", err)
	}
	if _, err := svc.Update(ctx, "Gemunu", intPtr(0)); err != nil {
		t.Fatalf("zero is a present score: %v", err)
	}
}

func TestScoreService_Update_Errors(t *testing.T) {
	cases := []struct {
		name     string
		house    string
		score    *int
		wantKind error
		wantMsg  string
	}{
		{"missing score", "Atigala", nil, ErrValidation, msgScoreRequired},
		{"missing house", "", intPtr(1), ErrValidation, msgScoreRequired},
		{"unknown house", "Nonexistent", intPtr(1), ErrNotFound, msgHouseNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := seededScores()
			before := fmt.Sprint(repo.scores)

			_, err := NewScoreService(repo).Update(context.Background(), tc.house, tc.score)
			if !errors.Is(err, tc.wantKind) {
				t.Fatalf("expected %v, got %v", tc.wantKind, err)
			}
			if Message(err, "") != tc.wantMsg {
				t.Fatalf("message: want %q, got %q", tc.wantMsg, Message(err, ""))
			}
			if after := fmt.Sprint(repo.scores); after != before {
				t.Fatalf("scores modified: %s -> %s", before, after)
			}
		})
	}
}

func TestScoreService_List(t *testing.T) {
	svc := NewScoreService(seededScores())
	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Fatalf("repeated reads differ: %v vs %v", first, second)
	}

	failing := &fakeScoreRepo{listErr: errors.New("down")}
	if _, err := NewScoreService(failing).List(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
