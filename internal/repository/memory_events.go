package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// MemoryEventsRepo keeps progress notes in memory. It holds a reference to
// the consultations repo so CreateEvent can mirror the dual write the
// Postgres implementation performs in one transaction.
type MemoryEventsRepo struct {
	mu            sync.RWMutex
	items         map[string]domain.ConsultationEvent
	consultations *MemoryConsultationsRepo
}

func NewMemoryEventsRepo(consultations *MemoryConsultationsRepo) *MemoryEventsRepo {
	return &MemoryEventsRepo{
		items:         map[string]domain.ConsultationEvent{},
		consultations: consultations,
	}
}

var _ EventsRepository = (*MemoryEventsRepo)(nil)

func (r *MemoryEventsRepo) CreateEvent(_ context.Context, e *domain.ConsultationEvent) (string, error) {
	r.mu.Lock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	r.items[e.ID] = *e
	r.mu.Unlock()

	if err := r.consultations.applyEventState(e.ConsultationID, e.Status, e.StaffID, e.NextActionDate, e.CreatedAt); err != nil {
		// Roll the event back; the memory repo has no real transactions.
		r.mu.Lock()
		delete(r.items, e.ID)
		r.mu.Unlock()
		return "", err
	}
	return e.ID, nil
}

func (r *MemoryEventsRepo) ListEventsByConsultation(_ context.Context, consultationID string) ([]*domain.ConsultationEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.ConsultationEvent
	for _, e := range r.items {
		if e.ConsultationID != consultationID {
			continue
		}
		ee := e
		out = append(out, &ee)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryEventsRepo) DeleteEvent(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
