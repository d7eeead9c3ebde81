package service

import (
	"context"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
)

// SupportPlanService 支援計画サービス接口
type SupportPlanService interface {
	ListSupportPlansByUser(ctx context.Context, userID string) ([]*domain.SupportPlan, error)
	GetSupportPlan(ctx context.Context, id string) (*domain.SupportPlan, error)
	CreateSupportPlan(ctx context.Context, p *domain.SupportPlan) (string, error)
	UpdateSupportPlan(ctx context.Context, p *domain.SupportPlan) error
	DeleteSupportPlan(ctx context.Context, id string) error
}

type supportPlanService struct {
	plans  repository.SupportPlansRepository
	users  repository.UsersRepository
	logger *zap.Logger
}

func NewSupportPlanService(
	plans repository.SupportPlansRepository,
	users repository.UsersRepository,
	logger *zap.Logger,
) SupportPlanService {
	return &supportPlanService{plans: plans, users: users, logger: logger}
}

var _ SupportPlanService = (*supportPlanService)(nil)

func (s *supportPlanService) ListSupportPlansByUser(ctx context.Context, userID string) ([]*domain.SupportPlan, error) {
	v := &validator{}
	v.requireUUID("利用者ID", userID)
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.plans.ListSupportPlansByUser(ctx, userID)
}

func (s *supportPlanService) GetSupportPlan(ctx context.Context, id string) (*domain.SupportPlan, error) {
	v := &validator{}
	v.requireUUID("支援計画ID", id)
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.plans.GetSupportPlan(ctx, id)
}

// CreateSupportPlan validates and snapshots the user's demographics when
// the caller left them empty.
func (s *supportPlanService) CreateSupportPlan(ctx context.Context, p *domain.SupportPlan) (string, error) {
	if err := s.validatePlan(p); err != nil {
		return "", err
	}

	// 基本情報が空なら利用者から引き写す
	if p.Name == "" {
		u, err := s.users.GetUser(ctx, p.UserID)
		if err != nil {
			return "", err
		}
		p.Name = u.Name
		p.Furigana = u.Furigana
		p.Gender = u.Gender
		p.BirthYear = u.BirthYear
		p.BirthMonth = u.BirthMonth
		p.BirthDay = u.BirthDay
		p.Address = u.Address
		p.Phone = u.Phone
	}

	return s.plans.CreateSupportPlan(ctx, p)
}

func (s *supportPlanService) UpdateSupportPlan(ctx context.Context, p *domain.SupportPlan) error {
	v := &validator{}
	v.requireUUID("支援計画ID", p.ID)
	if err := v.err(); err != nil {
		return err
	}
	if err := s.validatePlan(p); err != nil {
		return err
	}
	return s.plans.UpdateSupportPlan(ctx, p)
}

func (s *supportPlanService) DeleteSupportPlan(ctx context.Context, id string) error {
	v := &validator{}
	v.requireUUID("支援計画ID", id)
	if err := v.err(); err != nil {
		return err
	}
	return s.plans.DeleteSupportPlan(ctx, id)
}

func (s *supportPlanService) validatePlan(p *domain.SupportPlan) error {
	v := &validator{}
	v.requireUUID("利用者ID", p.UserID)
	v.optionalUUID("担当者ID", p.StaffID)
	if p.PlanDate == nil {
		v.addf("計画作成日は必須です")
	}
	v.maxLen("目標", p.Goals, maxTextLen)
	return v.err()
}
