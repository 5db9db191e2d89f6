package repository

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"feedback_service/internal/domain"
	"feedback_service/internal/service"
)

// MemoryStore keeps feedback, ledger entries and users in process. It backs
// the "memory" storage driver and honours the same cascade and atomicity
// rules as the Postgres schema.
type MemoryStore struct {
	mu       sync.Mutex
	feedback map[uuid.UUID]*domain.Feedback
	entries  []*domain.ModerationEntry
	users    map[uuid.UUID]*domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		feedback: make(map[uuid.UUID]*domain.Feedback),
		users:    make(map[uuid.UUID]*domain.User),
	}
}

func cloneFeedback(f *domain.Feedback) *domain.Feedback {
	c := *f
	if f.AdminNote != nil {
		note := *f.AdminNote
		c.AdminNote = &note
	}
	return &c
}

func cloneEntry(e *domain.ModerationEntry) *domain.ModerationEntry {
	c := *e
	if e.Note != nil {
		note := *e.Note
		c.Note = &note
	}
	return &c
}

func (s *MemoryStore) Upsert(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.users[user.ID] = &u
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (s *MemoryStore) Create(_ context.Context, feedback *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feedback[feedback.ID]; ok {
		return ErrAlreadyExists
	}
	s.feedback[feedback.ID] = cloneFeedback(feedback)
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.feedback[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneFeedback(f), nil
}

func (s *MemoryStore) Update(_ context.Context, feedback *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feedback[feedback.ID]; !ok {
		return domain.ErrNotFound
	}
	s.feedback[feedback.ID] = cloneFeedback(feedback)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feedback[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.feedback, id)
	s.entries = slices.DeleteFunc(s.entries, func(e *domain.ModerationEntry) bool {
		return e.FeedbackID == id
	})
	return nil
}

func (s *MemoryStore) List(_ context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	items := make([]*domain.Feedback, 0)
	for _, f := range s.feedback {
		if matches(f, filter, search) {
			items = append(items, cloneFeedback(f))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID.String() > items[j].ID.String()
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func matches(f *domain.Feedback, filter domain.FeedbackFilter, search string) bool {
	if filter.SubmitterID != uuid.Nil && f.SubmitterID != filter.SubmitterID {
		return false
	}
	if filter.TargetID != uuid.Nil && f.TargetID != filter.TargetID {
		return false
	}
	if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, f.Status) {
		return false
	}
	if len(filter.Sentiments) > 0 && !slices.Contains(filter.Sentiments, f.Sentiment) {
		return false
	}
	if !filter.CreatedBefore.IsZero() && !f.CreatedAt.Before(filter.CreatedBefore) {
		return false
	}
	if search != "" {
		found := false
		for _, field := range []string{f.Body, f.Subject, f.Semester, f.Reason} {
			if strings.Contains(strings.ToLower(field), search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *MemoryStore) History(_ context.Context, feedbackID uuid.UUID) ([]*domain.ModerationEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]*domain.ModerationEntry, 0)
	for _, e := range s.entries {
		if e.FeedbackID == feedbackID {
			entries = append(entries, cloneEntry(e))
		}
	}
	return entries, nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]*domain.ModerationEntry, error) {
	if limit <= 0 {
		return []*domain.ModerationEntry{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]*domain.ModerationEntry, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, cloneEntry(s.entries[i]))
	}
	return entries, nil
}

// NewModerationTx holds the store lock until Commit or Rollback.
func (s *MemoryStore) NewModerationTx(_ context.Context) (service.ModerationTx, error) {
	s.mu.Lock()
	return &memoryTx{store: s}, nil
}

type memoryTx struct {
	store    *MemoryStore
	updated  *domain.Feedback
	appended []*domain.ModerationEntry
	done     bool
}

func (t *memoryTx) GetForUpdate(_ context.Context, id uuid.UUID) (*domain.Feedback, error) {
	f, ok := t.store.feedback[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneFeedback(f), nil
}

func (t *memoryTx) UpdateModeration(_ context.Context, feedback *domain.Feedback) error {
	if _, ok := t.store.feedback[feedback.ID]; !ok {
		return domain.ErrNotFound
	}
	t.updated = cloneFeedback(feedback)
	return nil
}

func (t *memoryTx) AppendEntry(_ context.Context, entry *domain.ModerationEntry) error {
	if _, ok := t.store.feedback[entry.FeedbackID]; !ok {
		return domain.ErrNotFound
	}
	t.appended = append(t.appended, cloneEntry(entry))
	return nil
}

func (t *memoryTx) Commit(_ context.Context) error {
	if t.done {
		return nil
	}
	if t.updated != nil {
		current := t.store.feedback[t.updated.ID]
		current.Status = t.updated.Status
		current.AdminNote = t.updated.AdminNote
		current.EditedAt = t.updated.EditedAt
	}
	t.store.entries = append(t.store.entries, t.appended...)
	t.finish()
	return nil
}

func (t *memoryTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.finish()
	return nil
}

func (t *memoryTx) finish() {
	t.done = true
	t.updated = nil
	t.appended = nil
	t.store.mu.Unlock()
}
