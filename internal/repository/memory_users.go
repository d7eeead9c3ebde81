package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// MemoryUsersRepo keeps end users in memory (unit tests / DB-less mode).
type MemoryUsersRepo struct {
	mu    sync.RWMutex
	items map[string]domain.EndUser
}

func NewMemoryUsersRepo() *MemoryUsersRepo {
	return &MemoryUsersRepo{items: map[string]domain.EndUser{}}
}

var _ UsersRepository = (*MemoryUsersRepo)(nil)

func (r *MemoryUsersRepo) GetUser(_ context.Context, id string) (*domain.EndUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUsersRepo) ListUsers(_ context.Context) ([]*domain.EndUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.EndUser, 0, len(r.items))
	for _, u := range r.items {
		uu := u
		out = append(out, &uu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (r *MemoryUsersRepo) ListUIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u.UID)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MemoryUsersRepo) CreateUser(_ context.Context, u *domain.EndUser) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.items[u.ID] = *u
	return u.ID, nil
}

func (r *MemoryUsersRepo) UpdateUser(_ context.Context, u *domain.EndUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[u.ID]
	if !ok {
		return ErrNotFound
	}
	u.CreatedAt = old.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.items[u.ID] = *u
	return nil
}

func (r *MemoryUsersRepo) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
