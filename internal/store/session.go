package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fartec0/aigp-codex/ent"
	"github.com/fartec0/aigp-codex/ent/authsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, sess *Session) error {
	_, err := r.client.AuthSession.Create().
		SetToken(sess.Token).
		SetUserID(sess.UserID).
		SetExpiresAt(sess.ExpiresAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) ByToken(ctx context.Context, token string) (*Session, error) {
	s, err := r.client.AuthSession.Query().
		Where(authsession.Token(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session by token: %w", err)
	}
	return &Session{
		Token:     s.Token,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.client.AuthSession.Delete().
		Where(authsession.Token(token)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	n, err := r.client.AuthSession.Delete().
		Where(authsession.ExpiresAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}
