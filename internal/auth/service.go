package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fartec0/aigp-codex/internal/store"
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 24 * time.Hour

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 8

// Roles recognized by the portal.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrWeakPassword   = errors.New("password must be at least 8 characters")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers can't probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("operation requires admin role")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownUser        = errors.New("unknown user")
)

// Service authenticates callers and produces the stable identifiers that
// scope progress, notes, and quiz results.
type Service struct {
	users    store.UserRepo
	sessions store.SessionRepo
	now      func() time.Time
}

// NewService creates an authentication service over the given repositories.
func NewService(users store.UserRepo, sessions store.SessionRepo) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

// Register creates a new user. The returned User carries no credential
// material.
func (s *Service) Register(ctx context.Context, email, password string, profile map[string]string) (*store.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLen {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	salt, err := NewSalt()
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, store.NewUser{
		Email:        email,
		PasswordHash: HashPassword(password, salt),
		Salt:         salt,
		Role:         RoleStudent,
		Profile:      profile,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

// Authenticate verifies credentials and opens a session.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*store.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	creds, err := s.users.CredentialsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, ErrInvalidCredentials
	}
	if !creds.IsActive {
		return nil, ErrAccountDeactivated
	}
	if !VerifyPassword(password, creds.Salt, creds.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &store.Session{
		Token:     token,
		UserID:    creds.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	if err := s.users.TouchLogin(ctx, creds.UserID); err != nil {
		return nil, err
	}

	return sess, nil
}

// Validate resolves a session token to its user. Absent, unknown, and
// expired tokens all fail with ErrNotAuthenticated.
func (s *Service) Validate(ctx context.Context, token string) (*store.User, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	sess, err := s.sessions.ByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	if s.now().After(sess.ExpiresAt) {
		// Expired rows are garbage; drop them on sight.
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrNotAuthenticated
	}

	u, err := s.users.ByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotAuthenticated
	}
	return u, nil
}

// Logout removes the session. Logging out twice is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// SetRole changes a user's role. Only admins may call it.
func (s *Service) SetRole(ctx context.Context, actor *store.User, targetID int, role string) error {
	if actor == nil || actor.Role != RoleAdmin {
		return ErrForbidden
	}
	if role != RoleStudent && role != RoleAdmin {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	target, err := s.users.ByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUnknownUser
	}
	return s.users.UpdateRole(ctx, targetID, role)
}

// ChangePassword replaces a user's credential material after verifying
// the old password. A fresh salt is generated.
func (s *Service) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return ErrWeakPassword
	}

	creds, err := s.users.CredentialsByID(ctx, userID)
	if err != nil {
		return err
	}
	if creds == nil {
		return ErrUnknownUser
	}
	if !VerifyPassword(oldPassword, creds.Salt, creds.PasswordHash) {
		return ErrInvalidCredentials
	}

	salt, err := NewSalt()
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, HashPassword(newPassword, salt), salt)
}

// Deactivate disables a user account. Only admins may call it. The row
// remains so historical results keep their owner.
func (s *Service) Deactivate(ctx context.Context, actor *store.User, targetID int) error {
	if actor == nil || actor.Role != RoleAdmin {
		return ErrForbidden
	}

	target, err := s.users.ByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUnknownUser
	}
	return s.users.Deactivate(ctx, targetID)
}

// ListUsers returns all user rows. Only admins may call it.
func (s *Service) ListUsers(ctx context.Context, actor *store.User) ([]*store.User, error) {
	if actor == nil || actor.Role != RoleAdmin {
		return nil, ErrForbidden
	}
	return s.users.List(ctx)
}

// validEmail checks the portal's email rules: exactly one @, non-empty
// local part, and a domain containing a dot that neither starts nor ends
// with one.
func validEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
