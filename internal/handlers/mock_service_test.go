package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scoreboard/internal/models"
	"scoreboard/internal/service"
	"scoreboard/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	sessions map[string]*models.Session

	signUpUser models.User
	signUpErr  error
	loginSess  *models.Session
	loginErr   error
	logoutErr  error
	lookupErr  error
	setRoleErr error

	lastSignUp      service.SignUpInput
	lastSignUpActor *models.Session
	lastLoginUser   string
	lastLogoutID    string
	lastRoleActor   *models.Session
	lastRoleUser    string
	lastRole        string
	signUpCalls     int
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpInput, actor *models.Session) (models.User, error) {
	m.signUpCalls++
	m.lastSignUp = in
	m.lastSignUpActor = actor
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) Login(_ context.Context, username, _ string) (*models.Session, error) {
	m.lastLoginUser = username
	return m.loginSess, m.loginErr
}

func (m *mockAuth) Logout(_ context.Context, id string) error {
	m.lastLogoutID = id
	if m.logoutErr == nil {
		delete(m.sessions, id)
	}
	return m.logoutErr
}

func (m *mockAuth) Lookup(_ context.Context, id string) (*models.Session, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.sessions[id], nil
}

func (m *mockAuth) SetRole(_ context.Context, actor *models.Session, username, role string) error {
	m.lastRoleActor = actor
	m.lastRoleUser = username
	m.lastRole = role
	return m.setRoleErr
}

type mockScores struct {
	scores     []models.Score
	listErr    error
	updateErr  error
	lastHouse  string
	lastScore  *int
	updateCall int
}

func (m *mockScores) List(context.Context) ([]models.Score, error) {
	return m.scores, m.listErr
}

func (m *mockScores) Update(_ context.Context, house string, score *int) (models.Score, error) {
	m.updateCall++
	m.lastHouse = house
	m.lastScore = score
	if m.updateErr != nil {
		return models.Score{}, m.updateErr
	}
	return models.Score{House: house, Score: *score}, nil
}

type mockEvents struct {
	events    []models.Event
	createID  int
	err       error
	lastID    int
	lastInput service.EventInput
	calls     int
}

func (m *mockEvents) List(context.Context) ([]models.Event, error) {
	return m.events, m.err
}

func (m *mockEvents) Create(_ context.Context, in service.EventInput) (int, error) {
	m.calls++
	m.lastInput = in
	return m.createID, m.err
}

func (m *mockEvents) Update(_ context.Context, id int, in service.EventInput) error {
	m.calls++
	m.lastID = id
	m.lastInput = in
	return m.err
}

func (m *mockEvents) Delete(_ context.Context, id int) error {
	m.calls++
	m.lastID = id
	return m.err
}

// ---- Shared Test Helpers ----

const (
	adminSID = "admin-sid"
	userSID  = "user-sid"
)

var testCodec = session.NewCodec([]byte("handlers-test-secret"))

func newMockAuth() *mockAuth {
	return &mockAuth{sessions: map[string]*models.Session{
		adminSID: {ID: adminSID, Username: "root", Role: models.RoleAdmin},
		userSID:  {ID: userSID, Username: "bob", Role: models.RoleUser},
	}}
}

func testOptions() Options {
	return Options{Codec: testCodec}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, testOptions())
	return h.InitRoutes()
}

// sessionCookie signs sid the way the login handler does.
func sessionCookie(sid string) *http.Cookie {
	now := time.Now()
	token, err := testCodec.Encode(sid, now, now.Add(time.Hour))
	if err != nil {
		panic(err)
	}
	return &http.Cookie{Name: defaultCookieName, Value: token}
}

func doJSON(r http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return out.Message
}
