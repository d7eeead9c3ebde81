package repository

import (
	"context"

	"anshin-house-data/internal/domain"
)

// SupportPlansRepository 支援計画Repository接口
type SupportPlansRepository interface {
	GetSupportPlan(ctx context.Context, id string) (*domain.SupportPlan, error)

	// ListSupportPlansByUser 利用者の支援計画一覧（作成日の新しい順）
	ListSupportPlansByUser(ctx context.Context, userID string) ([]*domain.SupportPlan, error)

	CreateSupportPlan(ctx context.Context, p *domain.SupportPlan) (string, error)

	UpdateSupportPlan(ctx context.Context, p *domain.SupportPlan) error

	DeleteSupportPlan(ctx context.Context, id string) error
}
