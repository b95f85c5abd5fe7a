package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fartec0/aigp-codex/internal/store"
)

type fakeUserRepo struct {
	nextID int
	users  map[int]*store.User
	creds  map[int]*store.Credentials
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		nextID: 1,
		users:  make(map[int]*store.User),
		creds:  make(map[int]*store.Credentials),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, nu store.NewUser) (*store.User, error) {
	for _, u := range r.users {
		if u.Email == nu.Email {
			return nil, errors.New("unique constraint: email")
		}
	}
	u := &store.User{
		ID:        r.nextID,
		Email:     nu.Email,
		Role:      nu.Role,
		Profile:   nu.Profile,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	r.users[u.ID] = u
	r.creds[u.ID] = &store.Credentials{
		UserID:       u.ID,
		PasswordHash: nu.PasswordHash,
		Salt:         nu.Salt,
		IsActive:     true,
	}
	r.nextID++
	return u, nil
}

func (r *fakeUserRepo) ByEmail(_ context.Context, email string) (*store.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ByID(_ context.Context, id int) (*store.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) CredentialsByEmail(_ context.Context, email string) (*store.Credentials, error) {
	for id, u := range r.users {
		if u.Email == email {
			return r.creds[id], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CredentialsByID(_ context.Context, id int) (*store.Credentials, error) {
	return r.creds[id], nil
}

func (r *fakeUserRepo) TouchLogin(_ context.Context, id int) error {
	now := time.Now()
	r.users[id].LastLoginAt = &now
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id int, role string) error {
	r.users[id].Role = role
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int, hash, salt string) error {
	r.creds[id].PasswordHash = hash
	r.creds[id].Salt = salt
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, id int) error {
	r.users[id].IsActive = false
	r.creds[id].IsActive = false
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*store.User, error) {
	out := make([]*store.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[string]*store.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*store.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, sess *store.Session) error {
	r.sessions[sess.Token] = sess
	return nil
}

func (r *fakeSessionRepo) ByToken(_ context.Context, token string) (*store.Session, error) {
	return r.sessions[token], nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context, before time.Time) (int, error) {
	n := 0
	for tok, sess := range r.sessions {
		if sess.ExpiresAt.Before(before) {
			delete(r.sessions, tok)
			n++
		}
	}
	return n, nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return NewService(users, sessions), users, sessions
}

func TestRegisterEmailValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		email string
		valid bool
	}{
		{"sam@example.org", true},
		{"sam@sub.example.org", true},
		{"Sam@Example.ORG", true},
		{"", false},
		{"samexample.org", false},
		{"sam@@example.org", false},
		{"@example.org", false},
		{"sam@", false},
		{"sam@example", false},
		{"sam@.example.org", false},
		{"sam@example.org.", false},
	}

	// A fresh service per case: normalization maps differently-cased
	// addresses to the same account, which would trip the duplicate check.
	for _, tt := range tests {
		svc, _, _ := newTestService()
		_, err := svc.Register(ctx, tt.email, "password123", nil)
		if tt.valid && err != nil {
			t.Errorf("Register(%q): unexpected error %v", tt.email, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("Register(%q): err = %v, want ErrInvalidEmail", tt.email, err)
		}
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Sam@Example.ORG ", "password123", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "sam@example.org" {
		t.Fatalf("email = %q, want normalized", u.Email)
	}
	if u.Role != RoleStudent {
		t.Fatalf("role = %q, want student", u.Role)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Register(context.Background(), "sam@example.org", "short7!", nil)
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "sam@example.org", "password123", nil); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, "SAM@example.org", "password456", nil)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestAuthenticateLifecycle(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "sam@example.org", "password123", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := svc.Authenticate(ctx, "sam@example.org", "password123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if sess.UserID != u.ID {
		t.Fatalf("session user = %d, want %d", sess.UserID, u.ID)
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != SessionTTL {
		t.Fatalf("ttl = %v, want %v", got, SessionTTL)
	}
	if users.users[u.ID].LastLoginAt == nil {
		t.Fatal("last_login_at not updated")
	}

	got, err := svc.Validate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("validated user = %d, want %d", got.ID, u.ID)
	}

	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Validate(ctx, sess.Token); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("validate after logout: %v, want ErrNotAuthenticated", err)
	}

	// Double logout is a no-op.
	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestAuthenticateFailuresAreGeneric(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "sam@example.org", "password123", nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Authenticate(ctx, "nobody@example.org", "password123")
	_, errWrong := svc.Authenticate(ctx, "sam@example.org", "wrongpass123")
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown email: %v", errUnknown)
	}
	if !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", errWrong)
	}
}

func TestAuthenticateDeactivated(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "sam@example.org", "password123", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := users.Deactivate(ctx, u.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err = svc.Authenticate(ctx, "sam@example.org", "password123")
	if !errors.Is(err, ErrAccountDeactivated) {
		t.Fatalf("err = %v, want ErrAccountDeactivated", err)
	}
}

func TestValidateExpiredSession(t *testing.T) {
	svc, _, sessions := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "sam@example.org", "password123", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	sess, err := svc.Authenticate(ctx, "sam@example.org", "password123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	_ = u

	// Jump the clock past the TTL.
	svc.now = func() time.Time { return time.Now().Add(SessionTTL + time.Minute) }

	if _, err := svc.Validate(ctx, sess.Token); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
	if _, ok := sessions.sessions[sess.Token]; ok {
		t.Fatal("expired session row should be deleted")
	}
}

func TestValidateEmptyToken(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Validate(context.Background(), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestSetRoleRequiresAdmin(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	student, _ := svc.Register(ctx, "student@example.org", "password123", nil)
	target, _ := svc.Register(ctx, "target@example.org", "password123", nil)

	if err := svc.SetRole(ctx, student, target.ID, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("student actor: %v, want ErrForbidden", err)
	}
	if err := svc.SetRole(ctx, nil, target.ID, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("nil actor: %v, want ErrForbidden", err)
	}

	admin := &store.User{ID: 99, Role: RoleAdmin}
	if err := svc.SetRole(ctx, admin, target.ID, RoleAdmin); err != nil {
		t.Fatalf("admin actor: %v", err)
	}
	if users.users[target.ID].Role != RoleAdmin {
		t.Fatal("role not updated")
	}

	if err := svc.SetRole(ctx, admin, target.ID, "superuser"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("bad role: %v, want ErrUnknownRole", err)
	}
	if err := svc.SetRole(ctx, admin, 12345, RoleStudent); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("missing target: %v, want ErrUnknownUser", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, _ := svc.Register(ctx, "sam@example.org", "password123", nil)

	if err := svc.ChangePassword(ctx, u.ID, "wrongpass", "newpassword1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong old password: %v", err)
	}
	if err := svc.ChangePassword(ctx, u.ID, "password123", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password: %v", err)
	}
	if err := svc.ChangePassword(ctx, u.ID, "password123", "newpassword1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "sam@example.org", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "sam@example.org", "newpassword1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestDeactivateAndListRequireAdmin(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	target, _ := svc.Register(ctx, "target@example.org", "password123", nil)
	admin := &store.User{ID: 99, Role: RoleAdmin}

	if err := svc.Deactivate(ctx, target, target.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-admin deactivate: %v", err)
	}
	if err := svc.Deactivate(ctx, admin, target.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if users.users[target.ID].IsActive {
		t.Fatal("user still active")
	}

	if _, err := svc.ListUsers(ctx, target); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-admin list: %v", err)
	}
	list, err := svc.ListUsers(ctx, admin)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list len = %d, want 1", len(list))
	}
}
