package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fartec0/aigp-codex/ent"
	"github.com/fartec0/aigp-codex/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, nu NewUser) (*User, error) {
	builder := r.client.User.Create().
		SetEmail(nu.Email).
		SetPasswordHash(nu.PasswordHash).
		SetSalt(nu.Salt).
		SetRole(nu.Role)

	if len(nu.Profile) > 0 {
		builder = builder.SetProfile(nu.Profile)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) ByID(ctx context.Context, id int) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) CredentialsByEmail(ctx context.Context, email string) (*Credentials, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query credentials by email: %w", err)
	}
	return entUserToCredentials(u), nil
}

func (r *userRepo) CredentialsByID(ctx context.Context, id int) (*Credentials, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query credentials by id: %w", err)
	}
	return entUserToCredentials(u), nil
}

func (r *userRepo) TouchLogin(ctx context.Context, id int) error {
	err := r.client.User.UpdateOneID(id).
		SetLastLoginAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func (r *userRepo) UpdateRole(ctx context.Context, id int, role string) error {
	err := r.client.User.UpdateOneID(id).
		SetRole(role).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int, passwordHash, salt string) error {
	err := r.client.User.UpdateOneID(id).
		SetPasswordHash(passwordHash).
		SetSalt(salt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *userRepo) Deactivate(ctx context.Context, id int) error {
	err := r.client.User.UpdateOneID(id).
		SetIsActive(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]*User, error) {
	rows, err := r.client.User.Query().
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*User, len(rows))
	for i, u := range rows {
		out[i] = entUserToUser(u)
	}
	return out, nil
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		Profile:     u.Profile,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
		IsActive:    u.IsActive,
	}
}

func entUserToCredentials(u *ent.User) *Credentials {
	return &Credentials{
		UserID:       u.ID,
		PasswordHash: u.PasswordHash,
		Salt:         u.Salt,
		IsActive:     u.IsActive,
	}
}
