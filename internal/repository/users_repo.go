package repository

import (
	"context"

	"anshin-house-data/internal/domain"
)

// UsersRepository 利用者Repository接口
type UsersRepository interface {
	GetUser(ctx context.Context, id string) (*domain.EndUser, error)

	// ListUsers 全件取得（UID昇順）
	ListUsers(ctx context.Context) ([]*domain.EndUser, error)

	// ListUIDs returns every assigned display UID. The importer fetches this
	// once per batch and tracks newly committed UIDs in memory instead of
	// re-querying per row.
	ListUIDs(ctx context.Context) ([]string, error)

	CreateUser(ctx context.Context, u *domain.EndUser) (string, error)

	UpdateUser(ctx context.Context, u *domain.EndUser) error

	DeleteUser(ctx context.Context, id string) error
}
