package layout

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// memStore is a transactional in-memory backend. RunInTx serialises
// transactions and restores the previous state when fn fails.
type memStore struct {
	mu      sync.Mutex
	models  map[uuid.UUID]domain.LayoutModel
	history []domain.LayoutHistoryEntry
	// failSetActive makes the next SetActive fail, after the other models
	// were already deactivated.
	failSetActive bool
}

var (
	_ modelRepo   = (*memStore)(nil)
	_ txManager   = (*memStore)(nil)
	_ historyRepo = memHistory{}
)

func newMemStore() *memStore {
	return &memStore{models: make(map[uuid.UUID]domain.LayoutModel)}
}

func (s *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	models := make(map[uuid.UUID]domain.LayoutModel, len(s.models))
	for k, v := range s.models {
		models[k] = v
	}
	history := slices.Clone(s.history)

	if err := fn(ctx); err != nil {
		s.models = models
		s.history = history
		return err
	}
	return nil
}

func (s *memStore) Create(_ context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error) {
	if _, ok := s.models[m.ID]; ok {
		return nil, domain.ErrAlreadyExists
	}
	s.models[m.ID] = *m
	out := *m
	return &out, nil
}

func (s *memStore) Update(_ context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error) {
	cur, ok := s.models[m.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.IsActive = cur.IsActive
	m.ActivatedAt = cur.ActivatedAt
	s.models[m.ID] = *m
	out := *m
	return &out, nil
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.LayoutModel, error) {
	m, ok := s.models[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (s *memStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error) {
	return s.GetByID(ctx, id)
}

func (s *memStore) GetActive(_ context.Context, curso string) (*domain.LayoutModel, error) {
	for _, m := range s.models {
		if m.Curso == curso && m.IsActive {
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) ListByCourse(_ context.Context, curso string) ([]*domain.LayoutModel, error) {
	var out []*domain.LayoutModel
	for _, m := range s.models {
		if m.Curso == curso {
			out = append(out, &m)
		}
	}
	slices.SortFunc(out, func(a, b *domain.LayoutModel) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (s *memStore) LockCourse(context.Context, string) error { return nil }

func (s *memStore) DeactivateOthers(_ context.Context, curso string, keep uuid.UUID) error {
	for id, m := range s.models {
		if m.Curso == curso && id != keep && m.IsActive {
			m.IsActive = false
			s.models[id] = m
		}
	}
	return nil
}

func (s *memStore) SetActive(_ context.Context, id uuid.UUID, at time.Time) (*domain.LayoutModel, error) {
	if s.failSetActive {
		s.failSetActive = false
		return nil, context.DeadlineExceeded
	}
	m, ok := s.models[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.IsActive = true
	m.ActivatedAt = &at
	m.UpdatedAt = at
	s.models[id] = m
	return &m, nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.models[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.models, id)
	return nil
}

func (s *memStore) Append(_ context.Context, entry domain.LayoutHistoryEntry) error {
	s.history = append(s.history, entry)
	return nil
}

// listHistory returns newest first; insertion order breaks ties.
func (s *memStore) listHistory(curso string) []domain.LayoutHistoryEntry {
	var out []domain.LayoutHistoryEntry
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Curso == curso {
			out = append(out, s.history[i])
		}
	}
	return out
}

func (s *memStore) activeCount(curso string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.models {
		if m.Curso == curso && m.IsActive {
			n++
		}
	}
	return n
}

// memHistory adapts memStore to historyRepo; ListByCourse clashes with the
// model listing on the same type.
type memHistory struct{ s *memStore }

func (h memHistory) Append(ctx context.Context, e domain.LayoutHistoryEntry) error {
	return h.s.Append(ctx, e)
}

func (h memHistory) ListByCourse(_ context.Context, curso string) ([]domain.LayoutHistoryEntry, error) {
	return h.s.listHistory(curso), nil
}
