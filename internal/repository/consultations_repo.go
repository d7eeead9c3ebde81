package repository

import (
	"context"
	"errors"

	"anshin-house-data/internal/domain"
)

// ErrNotFound is returned by all repositories when the keyed row does not
// exist. Services translate it into a not-found response, distinct from
// validation and persistence failures.
var ErrNotFound = errors.New("record not found")

// ConsultationsRepository 相談Repository接口
// 使用强类型领域模型。Filtering beyond key lookups happens in-process
// (internal/search), so List returns the full table.
type ConsultationsRepository interface {
	// GetConsultation 根据id获取相談レコード
	GetConsultation(ctx context.Context, id string) (*domain.Consultation, error)

	// ListConsultations 全件取得（新しい順）。絞り込みは internal/search が行う。
	ListConsultations(ctx context.Context) ([]*domain.Consultation, error)

	// CreateConsultation 新規作成。id/created_at/updated_at はサーバー側で採番。
	CreateConsultation(ctx context.Context, c *domain.Consultation) (string, error)

	// UpdateConsultation 主キーで全列更新。user_id と next_action_date は
	// 対象外（前者は SetUserLink、後者はイベント作成が所有する）。
	// 存在しない場合は ErrNotFound。
	UpdateConsultation(ctx context.Context, c *domain.Consultation) error

	// SetUserLink 利用者登録時に user_id を設定する（昇格は一方向）
	SetUserLink(ctx context.Context, consultationID, userID string) error

	// DeleteConsultation 主キーで物理削除。存在しない場合は ErrNotFound。
	DeleteConsultation(ctx context.Context, id string) error
}
