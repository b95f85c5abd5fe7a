// Package notes manages free-text notes attached to curriculum weeks.
// A note belongs to exactly one owner: an authenticated user id or an
// anonymous free-text student name. The anonymous name carries no
// identity guarantee; two people typing the same name share its notes.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fartec0/aigp-codex/internal/content"
	"github.com/fartec0/aigp-codex/internal/store"
)

var (
	ErrInvalidWeek  = errors.New("week number outside curriculum")
	ErrInvalidOwner = errors.New("note needs exactly one owner")
	ErrEmptyTitle   = errors.New("note title is required")
	ErrNotFound     = errors.New("note not found")
)

// Owner identifies who a note belongs to. Set exactly one field.
type Owner struct {
	UserID      *int
	StudentName string
}

func (o Owner) validate() error {
	hasUser := o.UserID != nil
	hasName := strings.TrimSpace(o.StudentName) != ""
	if hasUser == hasName {
		return ErrInvalidOwner
	}
	return nil
}

// Service manages week notes.
type Service struct {
	notes store.NoteRepo
}

func NewService(notes store.NoteRepo) *Service {
	return &Service{notes: notes}
}

// Create appends a new note. Multiple notes per week and owner are
// allowed.
func (s *Service) Create(ctx context.Context, owner Owner, week int, title, noteContent string) (*store.Note, error) {
	if err := owner.validate(); err != nil {
		return nil, err
	}
	if week < 1 || week > content.CurriculumWeeks {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	n := &store.Note{
		UserID:      owner.UserID,
		StudentName: strings.TrimSpace(owner.StudentName),
		WeekNumber:  week,
		Title:       title,
		Content:     noteContent,
	}
	return s.notes.Create(ctx, n)
}

// Update changes a note's title and content. Only the owner's notes are
// reachable, so the caller passes its owner key for the lookup.
func (s *Service) Update(ctx context.Context, owner Owner, noteID int, title, noteContent string) (*store.Note, error) {
	if err := owner.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	existing, err := s.find(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}
	return s.notes.Update(ctx, existing.ID, title, noteContent)
}

// Delete removes a note the owner holds.
func (s *Service) Delete(ctx context.Context, owner Owner, noteID int) error {
	if err := owner.validate(); err != nil {
		return err
	}
	existing, err := s.find(ctx, owner, noteID)
	if err != nil {
		return err
	}
	return s.notes.Delete(ctx, existing.ID)
}

// List returns the owner's notes, optionally limited to one week
// (week == 0 means all weeks).
func (s *Service) List(ctx context.Context, owner Owner, week int) ([]*store.Note, error) {
	if err := owner.validate(); err != nil {
		return nil, err
	}
	if week != 0 && (week < 1 || week > content.CurriculumWeeks) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}

	if owner.UserID != nil {
		return s.notes.ListByUser(ctx, *owner.UserID, week)
	}
	return s.notes.ListByName(ctx, strings.TrimSpace(owner.StudentName), week)
}

// find resolves a note id within the owner's own notes.
func (s *Service) find(ctx context.Context, owner Owner, noteID int) (*store.Note, error) {
	all, err := s.List(ctx, owner, 0)
	if err != nil {
		return nil, err
	}
	for _, n := range all {
		if n.ID == noteID {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, noteID)
}
