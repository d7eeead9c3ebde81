package repository

import (
	"context"

	"anshin-house-data/internal/domain"
)

// EventsRepository 支援経過Repository接口
type EventsRepository interface {
	// CreateEvent inserts the event and moves the parent consultation's
	// denormalized current state (status / staff_id / next_action_date) in a
	// single transaction. Either both writes commit or neither does; the
	// event history can therefore never disagree with the parent row.
	CreateEvent(ctx context.Context, e *domain.ConsultationEvent) (string, error)

	// ListEventsByConsultation 相談に紐づく経過メモ一覧（古い順）
	ListEventsByConsultation(ctx context.Context, consultationID string) ([]*domain.ConsultationEvent, error)

	// DeleteEvent 主キーで削除。存在しない場合は ErrNotFound。
	DeleteEvent(ctx context.Context, id string) error
}
