package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ViewCache caches rendered consultation views keyed by route and drops
// them after writes. Invalidation is best-effort: a failed delete is logged
// and swallowed, because the entries expire on their own TTL anyway.
type ViewCache struct {
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
}

const (
	consultationListKey   = "views:consultations"
	consultationDetailKey = "views:consultations:" // + id
)

func NewViewCache(kv KV, ttl time.Duration, logger *zap.Logger) *ViewCache {
	return &ViewCache{kv: kv, ttl: ttl, logger: logger}
}

// GetConsultationList returns the cached list view JSON, or ErrMiss.
func (v *ViewCache) GetConsultationList(ctx context.Context) (string, error) {
	return v.kv.Get(ctx, consultationListKey)
}

func (v *ViewCache) SetConsultationList(ctx context.Context, payload string) {
	if err := v.kv.Set(ctx, consultationListKey, payload, v.ttl); err != nil {
		v.logger.Warn("failed to cache consultation list view", zap.Error(err))
	}
}

// GetConsultationDetail returns the cached detail view JSON, or ErrMiss.
func (v *ViewCache) GetConsultationDetail(ctx context.Context, id string) (string, error) {
	return v.kv.Get(ctx, consultationDetailKey+id)
}

func (v *ViewCache) SetConsultationDetail(ctx context.Context, id, payload string) {
	if err := v.kv.Set(ctx, consultationDetailKey+id, payload, v.ttl); err != nil {
		v.logger.Warn("failed to cache consultation detail view", zap.Error(err))
	}
}

// InvalidateConsultation drops the detail view of id and the list view.
// Callers invoke this only after the underlying write has committed; a key
// that is already absent is not an error.
func (v *ViewCache) InvalidateConsultation(ctx context.Context, id string) {
	if err := v.kv.Del(ctx, consultationDetailKey+id, consultationListKey); err != nil {
		v.logger.Warn("failed to invalidate consultation views",
			zap.String("consultation_id", id),
			zap.Error(err),
		)
	}
}

// InvalidateAllConsultations drops every consultation view (used after
// batch imports touch many records at once).
func (v *ViewCache) InvalidateAllConsultations(ctx context.Context) {
	if err := v.kv.DelPattern(ctx, consultationDetailKey+"*"); err != nil {
		v.logger.Warn("failed to invalidate consultation detail views", zap.Error(err))
	}
	if err := v.kv.Del(ctx, consultationListKey); err != nil {
		v.logger.Warn("failed to invalidate consultation list view", zap.Error(err))
	}
}
