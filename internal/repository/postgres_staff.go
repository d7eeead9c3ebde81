package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// PostgresStaffRepository 担当者Repository実装
type PostgresStaffRepository struct {
	db *sql.DB
}

// NewPostgresStaffRepository 创建担当者Repository
func NewPostgresStaffRepository(db *sql.DB) *PostgresStaffRepository {
	return &PostgresStaffRepository{db: db}
}

var _ StaffRepository = (*PostgresStaffRepository)(nil)

func (r *PostgresStaffRepository) GetStaff(ctx context.Context, id string) (*domain.Staff, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	var s domain.Staff
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(role, ''), created_at FROM staff WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Role, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &s, nil
}

func (r *PostgresStaffRepository) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(role, ''), created_at FROM staff ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var out []*domain.Staff
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Role, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff: %w", err)
	}
	return out, nil
}

func (r *PostgresStaffRepository) CreateStaff(ctx context.Context, s *domain.Staff) (string, error) {
	if s.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO staff (id, name, email, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, s.Email, s.Role, s.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create staff: %w", err)
	}
	return s.ID, nil
}

func (r *PostgresStaffRepository) UpdateStaff(ctx context.Context, s *domain.Staff) error {
	if s.ID == "" {
		return fmt.Errorf("id is required")
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE staff SET name = $1, email = $2, role = $3 WHERE id = $4`,
		s.Name, s.Email, s.Role, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresStaffRepository) DeleteStaff(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
