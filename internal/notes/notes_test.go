package notes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fartec0/aigp-codex/internal/store"
)

type fakeNoteRepo struct {
	nextID int
	notes  map[int]*store.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[int]*store.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, n *store.Note) (*store.Note, error) {
	r.nextID++
	stored := *n
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.notes[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, id int, title, content string) (*store.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, errors.New("no such note")
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
	return n, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id int) error {
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) ListByUser(_ context.Context, userID, week int) ([]*store.Note, error) {
	var out []*store.Note
	for _, n := range r.notes {
		if n.UserID != nil && *n.UserID == userID && (week == 0 || n.WeekNumber == week) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) ListByName(_ context.Context, name string, week int) ([]*store.Note, error) {
	var out []*store.Note
	for _, n := range r.notes {
		if n.UserID == nil && n.StudentName == name && (week == 0 || n.WeekNumber == week) {
			out = append(out, n)
		}
	}
	return out, nil
}

func userOwner(id int) Owner {
	return Owner{UserID: &id}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeNoteRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		owner   Owner
		week    int
		title   string
		wantErr error
	}{
		{"no owner", Owner{}, 1, "t", ErrInvalidOwner},
		{"both owners", Owner{UserID: intPtr(1), StudentName: "sam"}, 1, "t", ErrInvalidOwner},
		{"blank name", Owner{StudentName: "   "}, 1, "t", ErrInvalidOwner},
		{"week zero", userOwner(1), 0, "t", ErrInvalidWeek},
		{"week thirteen", userOwner(1), 13, "t", ErrInvalidWeek},
		{"empty title", userOwner(1), 1, "  ", ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.owner, tt.week, tt.title, "body")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateAppendsRows(t *testing.T) {
	svc := NewService(newFakeNoteRepo())
	ctx := context.Background()
	owner := userOwner(1)

	// No uniqueness on week+owner: two notes for the same week coexist.
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(ctx, owner, 4, "thoughts", "body"); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	list, err := svc.List(ctx, owner, 4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}

func TestOwnersDoNotSeeEachOther(t *testing.T) {
	svc := NewService(newFakeNoteRepo())
	ctx := context.Background()

	authed := userOwner(1)
	anon := Owner{StudentName: "sam"}

	created, err := svc.Create(ctx, authed, 2, "mine", "body")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, anon, 2, "theirs", "body"); err != nil {
		t.Fatalf("create anon: %v", err)
	}

	anonList, err := svc.List(ctx, anon, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(anonList) != 1 || anonList[0].Title != "theirs" {
		t.Fatalf("anon list = %+v", anonList)
	}

	// The anonymous owner cannot update or delete the user's note.
	if _, err := svc.Update(ctx, anon, created.ID, "stolen", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner update: %v", err)
	}
	if err := svc.Delete(ctx, anon, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner delete: %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewService(repo)
	ctx := context.Background()
	owner := Owner{StudentName: "sam"}

	created, err := svc.Create(ctx, owner, 6, "draft", "v1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, owner, created.ID, "final", "v2")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "final" || updated.Content != "v2" {
		t.Fatalf("updated = %+v", updated)
	}

	if err := svc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := svc.List(ctx, owner, 0)
	if len(list) != 0 {
		t.Fatalf("list after delete = %+v", list)
	}
}

func TestSameAnonymousNameShares(t *testing.T) {
	svc := NewService(newFakeNoteRepo())
	ctx := context.Background()

	// Two different people typing the same name see each other's notes.
	// Weak identity, carried over deliberately.
	if _, err := svc.Create(ctx, Owner{StudentName: "sam"}, 1, "first", "a"); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := svc.List(ctx, Owner{StudentName: "sam"}, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
}

func intPtr(v int) *int { return &v }
