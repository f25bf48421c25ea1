package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"scoreboard/internal/models"
	"scoreboard/internal/service"
)

func TestScoreHandlers_List(t *testing.T) {
	scores := &mockScores{scores: []models.Score{{ID: 1, House: "Atigala", Score: 10}, {ID: 2, House: "Vijaya", Score: -2}}}
	r := newTestRouter(&service.Service{Scores: scores})

	w := doJSON(r, http.MethodGet, "/api/scores", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var got []models.Score
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[1].Score != -2 {
		t.Fatalf("unexpected scores: %+v", got)
	}

	scores.listErr = errors.New("db down")
	w = doJSON(r, http.MethodGet, "/api/scores", "")
	if w.Code != http.StatusInternalServerError || messageOf(t, w) != "Error fetching scores" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestScoreHandlers_Update(t *testing.T) {
	cases := []struct {
		name      string
		sid       string
		body      string
		err       error
		wantCode  int
		wantMsg   string
		wantCalls int
	}{
		{"anonymous", "", `{"house":"Vijaya","score":5}`, nil, http.StatusForbidden, "Access denied", 0},
		{"plain user", userSID, `{"house":"Vijaya","score":5}`, nil, http.StatusForbidden, "Access denied", 0},
		{"admin", adminSID, `{"house":"Vijaya","score":5}`, nil, http.StatusOK, "Score updated successfully", 1},
		{"admin zero", adminSID, `{"house":"Vijaya","score":0}`, nil, http.StatusOK, "Score updated successfully", 1},
		{"missing score", adminSID, `{"house":"Vijaya"}`, svcErr(service.ErrValidation, "House and score are required"), http.StatusBadRequest, "House and score are required", 1},
		{"unknown house", adminSID, `{"house":"Nonexistent","score":1}`, svcErr(service.ErrNotFound, "House not found"), http.StatusNotFound, "House not found", 1},
		{"store failure", adminSID, `{"house":"Vijaya","score":1}`, errors.New("timeout"), http.StatusInternalServerError, "Error updating score", 1},
		{"score not a number", adminSID, `{"house":"Vijaya","score":"ten"}`, nil, http.StatusBadRequest, msgInvalidBody, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scores := &mockScores{updateErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: newMockAuth(), Scores: scores})

			var cookies []*http.Cookie
			if tc.sid != "" {
				cookies = append(cookies, sessionCookie(tc.sid))
			}
			w := doJSON(r, http.MethodPost, "/api/scores", tc.body, cookies...)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			if got := messageOf(t, w); got != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", got, tc.wantMsg)
			}
			if scores.updateCall != tc.wantCalls {
				t.Fatalf("Update calls=%d, want %d", scores.updateCall, tc.wantCalls)
			}
		})
	}
}
