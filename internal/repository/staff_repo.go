package repository

import (
	"context"

	"anshin-house-data/internal/domain"
)

// StaffRepository 担当者Repository接口
type StaffRepository interface {
	GetStaff(ctx context.Context, id string) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
	CreateStaff(ctx context.Context, s *domain.Staff) (string, error)
	UpdateStaff(ctx context.Context, s *domain.Staff) error
	DeleteStaff(ctx context.Context, id string) error
}
