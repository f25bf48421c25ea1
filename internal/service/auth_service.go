package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scoreboard/internal/models"
	"scoreboard/internal/repository"
	"scoreboard/internal/session"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgUserExists          = "User already exists"
	msgUserNotFound        = "User not found"
	msgInvalidPassword     = "Invalid password"
	msgAccessDenied        = "Access denied"
	msgUnknownRole         = "Role must be admin or user"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// AuthOptions tunes hashing and session lifetime.
type AuthOptions struct {
	BcryptCost int
	SessionTTL time.Duration
}

// AuthService handles user auth logic
type AuthService struct {
	authRepo repository.Authorization
	sessions session.Store
	opts     AuthOptions
	now      func() time.Time
}

func NewAuthService(repo repository.Authorization, sessions session.Store, opts AuthOptions) *AuthService {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{authRepo: repo, sessions: sessions, opts: opts, now: time.Now}
}

// SignUpInput is the signup request after decoding.
type SignUpInput struct {
	Username string
	Password string
	Role     string
}

// Admit reports whether s may use admin-gated operations.
func Admit(s *models.Session) bool {
	return s != nil && s.Role == models.RoleAdmin
}

// SignUp hashes the password and creates a user. The admin role is granted
// only when actor is an admin session; every other request becomes a user.
// No session is created.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput, actor *models.Session) (models.User, error) {
	if in.Username == "" || in.Password == "" {
		return models.User{}, newError(ErrValidation, msgCredentialsRequired)
	}
	if len(in.Password) > maxPasswordBytes {
		return models.User{}, newError(ErrValidation, msgPasswordTooLong)
	}

	role := models.RoleUser
	if in.Role == models.RoleAdmin && Admit(actor) {
		role = models.RoleAdmin
	}

	existing, err := s.authRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("check user: %w", err)
	}
	if existing != nil {
		return models.User{}, newError(ErrConflict, msgUserExists)
	}

	hash, err := hashPassword(in.Password, s.opts.BcryptCost)
	if err != nil {
		return models.User{}, err
	}
	id, err := s.authRepo.Create(ctx, in.Username, hash, role)
	if err != nil {
		// lost a race with a concurrent signup of the same name
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, newError(ErrConflict, msgUserExists)
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return models.User{ID: id, Username: in.Username, Role: role}, nil
}

// Login verifies credentials and opens a session bound to the user's role.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, newError(ErrValidation, msgCredentialsRequired)
	}

	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if u == nil {
		return nil, newError(ErrNotFound, msgUserNotFound)
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, newError(ErrAuthentication, msgInvalidPassword)
	}

	sess := session.New(u.Username, u.Role, s.opts.SessionTTL, s.now())
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &sess, nil
}

// Logout destroys the session; unknown ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Lookup resolves a session id; (nil, nil) when absent or expired.
// Admin sessions are checked against the stored user so a revoked admin
// loses the role on the next request.
func (s *AuthService) Lookup(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !Admit(sess) {
		return sess, nil
	}

	u, err := s.authRepo.GetByUsername(ctx, sess.Username)
	if err != nil {
		return nil, fmt.Errorf("check session user: %w", err)
	}
	if u == nil {
		if err := s.sessions.Destroy(ctx, sess.ID); err != nil {
			return nil, fmt.Errorf("destroy session: %w", err)
		}
		return nil, nil
	}
	if !u.IsAdmin() {
		sess.Role = u.Role
		if err := s.sessions.Set(ctx, *sess); err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
	}
	return sess, nil
}

// SetRole lets an admin grant or revoke the admin role. A revoke takes
// effect on the target's next request; a grant needs a fresh login.
func (s *AuthService) SetRole(ctx context.Context, actor *models.Session, username, role string) error {
	if !Admit(actor) {
		return newError(ErrForbidden, msgAccessDenied)
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if username == "" || (role != models.RoleAdmin && role != models.RoleUser) {
		return newError(ErrValidation, msgUnknownRole)
	}
	if err := s.authRepo.SetRole(ctx, username, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(ErrNotFound, msgUserNotFound)
		}
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

// helper: hash password safely
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
