package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// MemorySupportPlansRepo keeps support plans in memory (unit tests /
// DB-less mode).
type MemorySupportPlansRepo struct {
	mu    sync.RWMutex
	items map[string]domain.SupportPlan
}

func NewMemorySupportPlansRepo() *MemorySupportPlansRepo {
	return &MemorySupportPlansRepo{items: map[string]domain.SupportPlan{}}
}

var _ SupportPlansRepository = (*MemorySupportPlansRepo)(nil)

func (r *MemorySupportPlansRepo) GetSupportPlan(_ context.Context, id string) (*domain.SupportPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemorySupportPlansRepo) ListSupportPlansByUser(_ context.Context, userID string) ([]*domain.SupportPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.SupportPlan
	for _, p := range r.items {
		if p.UserID != userID {
			continue
		}
		pp := p
		out = append(out, &pp)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].PlanDate, out[j].PlanDate
		if di != nil && dj != nil && !di.Equal(*dj) {
			return di.After(*dj)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemorySupportPlansRepo) CreateSupportPlan(_ context.Context, p *domain.SupportPlan) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items[p.ID] = *p
	return p.ID, nil
}

func (r *MemorySupportPlansRepo) UpdateSupportPlan(_ context.Context, p *domain.SupportPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.items[p.ID] = *p
	return nil
}

func (r *MemorySupportPlansRepo) DeleteSupportPlan(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
