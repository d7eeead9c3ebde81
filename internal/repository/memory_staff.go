package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// MemoryStaffRepo keeps staff in memory (unit tests / DB-less mode).
type MemoryStaffRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Staff
}

func NewMemoryStaffRepo() *MemoryStaffRepo {
	return &MemoryStaffRepo{items: map[string]domain.Staff{}}
}

var _ StaffRepository = (*MemoryStaffRepo)(nil)

func (r *MemoryStaffRepo) GetStaff(_ context.Context, id string) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemoryStaffRepo) ListStaff(_ context.Context) ([]*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Staff, 0, len(r.items))
	for _, s := range r.items {
		ss := s
		out = append(out, &ss)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryStaffRepo) CreateStaff(_ context.Context, s *domain.Staff) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().UTC()
	r.items[s.ID] = *s
	return s.ID, nil
}

func (r *MemoryStaffRepo) UpdateStaff(_ context.Context, s *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[s.ID]
	if !ok {
		return ErrNotFound
	}
	s.CreatedAt = old.CreatedAt
	r.items[s.ID] = *s
	return nil
}

func (r *MemoryStaffRepo) DeleteStaff(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
