package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"anshin-house-data/internal/analytics"
	"anshin-house-data/internal/repository"
)

// AnalyticsService ダッシュボード集計サービス接口
type AnalyticsService interface {
	Dashboard(ctx context.Context, window string) (*analytics.Summary, error)
}

type analyticsService struct {
	consultations repository.ConsultationsRepository
	users         repository.UsersRepository
	logger        *zap.Logger
	now           func() time.Time
}

func NewAnalyticsService(
	consultations repository.ConsultationsRepository,
	users repository.UsersRepository,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsService{
		consultations: consultations,
		users:         users,
		logger:        logger,
		now:           time.Now,
	}
}

var _ AnalyticsService = (*analyticsService)(nil)

func (s *analyticsService) Dashboard(ctx context.Context, window string) (*analytics.Summary, error) {
	if window == "" {
		window = analytics.WindowThisMonth
	}
	if !analytics.ValidWindow(window) {
		return nil, &ValidationError{Problems: []string{"集計期間の指定が不正です: " + window}}
	}

	cs, err := s.consultations.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return analytics.Compute(cs, users, window, s.now()), nil
}
