package store

import (
	"context"
	"fmt"

	"github.com/fartec0/aigp-codex/ent"
	"github.com/fartec0/aigp-codex/ent/note"
)

// noteRepo implements NoteRepo using the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) Create(ctx context.Context, n *Note) (*Note, error) {
	builder := r.client.Note.Create().
		SetWeekNumber(n.WeekNumber).
		SetTitle(n.Title).
		SetContent(n.Content)

	if n.UserID != nil {
		builder = builder.SetUserID(*n.UserID)
	} else {
		builder = builder.SetStudentName(n.StudentName)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return entNoteToNote(row), nil
}

func (r *noteRepo) Update(ctx context.Context, id int, title, content string) (*Note, error) {
	row, err := r.client.Note.UpdateOneID(id).
		SetTitle(title).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return entNoteToNote(row), nil
}

func (r *noteRepo) Delete(ctx context.Context, id int) error {
	if err := r.client.Note.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID, week int) ([]*Note, error) {
	q := r.client.Note.Query().
		Where(note.UserID(userID))
	if week > 0 {
		q = q.Where(note.WeekNumber(week))
	}
	rows, err := q.
		Order(ent.Asc(note.FieldWeekNumber), ent.Desc(note.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes by user: %w", err)
	}
	return entNotesToNotes(rows), nil
}

func (r *noteRepo) ListByName(ctx context.Context, name string, week int) ([]*Note, error) {
	q := r.client.Note.Query().
		Where(note.StudentName(name))
	if week > 0 {
		q = q.Where(note.WeekNumber(week))
	}
	rows, err := q.
		Order(ent.Asc(note.FieldWeekNumber), ent.Desc(note.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes by name: %w", err)
	}
	return entNotesToNotes(rows), nil
}

func entNoteToNote(n *ent.Note) *Note {
	return &Note{
		ID:          n.ID,
		UserID:      n.UserID,
		StudentName: n.StudentName,
		WeekNumber:  n.WeekNumber,
		Title:       n.Title,
		Content:     n.Content,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func entNotesToNotes(rows []*ent.Note) []*Note {
	out := make([]*Note, len(rows))
	for i, n := range rows {
		out[i] = entNoteToNote(n)
	}
	return out
}
