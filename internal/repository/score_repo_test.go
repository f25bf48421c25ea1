package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"scoreboard/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestScoreRepository_List(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "house", "score"}).
		AddRow(1, "Atigala", 10).
		AddRow(2, "Parakrama", -3)
	mock.ExpectQuery(regexp.QuoteMeta(selectScoresSQL)).WillReturnRows(rows)

	got, err := NewScoreRepository(db, time.Second).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []models.Score{{ID: 1, House: "Atigala", Score: 10}, {ID: 2, House: "Parakrama", Score: -3}}
	if len(got) != len(want) {
		t.Fatalf("want %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestScoreRepository_List_QueryError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectScoresSQL)).WillReturnError(errors.New("down"))

	if _, err := NewScoreRepository(db, time.Second).List(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestScoreRepository_Update(t *testing.T) {
	tests := []struct {
		name       string
		house      string
		score      int
		mockExpect func(sqlmock.Sqlmock)
		want       models.Score
		wantErr    error
		anyErr     bool
	}{
		{
			name:  "success returns reloaded row",
			house: "Atigala",
			score: 42,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(updateScoreSQL)).
					WithArgs(42, "Atigala").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectQuery(regexp.QuoteMeta(selectScoreByHouseSQL)).
					WithArgs("Atigala").
					WillReturnRows(sqlmock.NewRows([]string{"id", "house", "score"}).AddRow(1, "Atigala", 42))
			},
			want: models.Score{ID: 1, House: "Atigala", Score: 42},
		},
		{
			name:  "unknown house",
			house: "Nonexistent",
			score: 1,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(updateScoreSQL)).
					WithArgs(1, "Nonexistent").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "exec error",
			house: "Vijaya",
			score: 5,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(updateScoreSQL)).
					WithArgs(5, "Vijaya").
					WillReturnError(errors.New("locked"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			tt.mockExpect(mock)

			got, err := NewScoreRepository(db, time.Second).Update(context.Background(), tt.house, tt.score)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.anyErr:
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if errors.Is(err, ErrNotFound) {
					t.Fatalf("store failure must not look like not-found: %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Fatalf("want %+v, got %+v", tt.want, got)
				}
			}
		})
	}
}
