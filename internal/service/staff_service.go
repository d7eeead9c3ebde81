package service

import (
	"context"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
)

// StaffService 担当者管理サービス接口
type StaffService interface {
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
	GetStaff(ctx context.Context, id string) (*domain.Staff, error)
	CreateStaff(ctx context.Context, st *domain.Staff) (string, error)
	UpdateStaff(ctx context.Context, st *domain.Staff) error
	DeleteStaff(ctx context.Context, id string) error
}

type staffService struct {
	staff  repository.StaffRepository
	logger *zap.Logger
}

func NewStaffService(staff repository.StaffRepository, logger *zap.Logger) StaffService {
	return &staffService{staff: staff, logger: logger}
}

var _ StaffService = (*staffService)(nil)

func (s *staffService) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	return s.staff.ListStaff(ctx)
}

func (s *staffService) GetStaff(ctx context.Context, id string) (*domain.Staff, error) {
	v := &validator{}
	v.requireUUID("担当者ID", id)
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.staff.GetStaff(ctx, id)
}

func (s *staffService) CreateStaff(ctx context.Context, st *domain.Staff) (string, error) {
	v := &validator{}
	if st.Name == "" {
		v.addf("氏名は必須です")
	}
	if err := v.err(); err != nil {
		return "", err
	}
	return s.staff.CreateStaff(ctx, st)
}

func (s *staffService) UpdateStaff(ctx context.Context, st *domain.Staff) error {
	v := &validator{}
	v.requireUUID("担当者ID", st.ID)
	if st.Name == "" {
		v.addf("氏名は必須です")
	}
	if err := v.err(); err != nil {
		return err
	}
	return s.staff.UpdateStaff(ctx, st)
}

func (s *staffService) DeleteStaff(ctx context.Context, id string) error {
	v := &validator{}
	v.requireUUID("担当者ID", id)
	if err := v.err(); err != nil {
		return err
	}
	return s.staff.DeleteStaff(ctx, id)
}
