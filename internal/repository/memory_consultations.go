package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// MemoryConsultationsRepo keeps consultations in memory. Used by unit tests
// and when the service is started without a database.
type MemoryConsultationsRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Consultation
}

func NewMemoryConsultationsRepo() *MemoryConsultationsRepo {
	return &MemoryConsultationsRepo{items: map[string]domain.Consultation{}}
}

var _ ConsultationsRepository = (*MemoryConsultationsRepo)(nil)

func (r *MemoryConsultationsRepo) GetConsultation(_ context.Context, id string) (*domain.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryConsultationsRepo) ListConsultations(_ context.Context) ([]*domain.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Consultation, 0, len(r.items))
	for _, c := range r.items {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].ConsultationDate, out[j].ConsultationDate
		switch {
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.After(*dj)
		case di == nil && dj != nil:
			return false
		case di != nil && dj == nil:
			return true
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryConsultationsRepo) CreateConsultation(_ context.Context, c *domain.Consultation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.items[c.ID] = *c
	return c.ID, nil
}

func (r *MemoryConsultationsRepo) UpdateConsultation(_ context.Context, c *domain.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
	// user_idとnext_action_dateはフォーム更新の対象外（SetUserLinkと
	// 支援経過作成だけが動かす）
	c.UserID = old.UserID
	c.NextActionDate = old.NextActionDate
	c.UpdatedAt = time.Now().UTC()
	r.items[c.ID] = *c
	return nil
}

// applyEventState 支援経過作成時の親更新。Postgres実装がイベント挿入と同一
// トランザクションで発行するUPDATE文に対応する。
func (r *MemoryConsultationsRepo) applyEventState(consultationID, status string, staffID *string, nextActionDate *time.Time, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[consultationID]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	c.StaffID = staffID
	c.NextActionDate = nextActionDate
	c.UpdatedAt = at
	r.items[consultationID] = c
	return nil
}

func (r *MemoryConsultationsRepo) SetUserLink(_ context.Context, consultationID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[consultationID]
	if !ok {
		return ErrNotFound
	}
	c.UserID = &userID
	c.UpdatedAt = time.Now().UTC()
	r.items[consultationID] = c
	return nil
}

func (r *MemoryConsultationsRepo) DeleteConsultation(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
