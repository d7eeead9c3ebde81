package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// PostgresSupportPlansRepository 支援計画Repository実装
type PostgresSupportPlansRepository struct {
	db *sql.DB
}

// NewPostgresSupportPlansRepository 创建支援計画Repository
func NewPostgresSupportPlansRepository(db *sql.DB) *PostgresSupportPlansRepository {
	return &PostgresSupportPlansRepository{db: db}
}

var _ SupportPlansRepository = (*PostgresSupportPlansRepository)(nil)

var supportPlanCols = []string{
	"id", "user_id", "staff_id", "plan_date",
	"name", "furigana", "gender", "birth_year", "birth_month", "birth_day",
	"address", "phone",
	"care_level_none", "care_level_support1", "care_level_support2",
	"care_level_care1", "care_level_care2", "care_level_care3", "care_level_care4", "care_level_care5",
	"pension_national", "pension_employee", "pension_disability", "pension_none",
	"watch_phone", "watch_sensor", "watch_visit",
	"needs_financial", "needs_physical", "needs_mental", "needs_lifestyle", "needs_environment",
	"goals", "created_at", "updated_at",
}

func supportPlanFields(p *domain.SupportPlan) []any {
	return []any{
		&p.ID, &p.UserID, &p.StaffID, &p.PlanDate,
		&p.Name, &p.Furigana, &p.Gender, &p.BirthYear, &p.BirthMonth, &p.BirthDay,
		&p.Address, &p.Phone,
		&p.CareLevelNone, &p.CareLevelSupport1, &p.CareLevelSupport2,
		&p.CareLevelCare1, &p.CareLevelCare2, &p.CareLevelCare3, &p.CareLevelCare4, &p.CareLevelCare5,
		&p.PensionNational, &p.PensionEmployee, &p.PensionDisability, &p.PensionNone,
		&p.WatchPhone, &p.WatchSensor, &p.WatchVisit,
		&p.NeedsFinancial, &p.NeedsPhysical, &p.NeedsMental, &p.NeedsLifestyle, &p.NeedsEnvironment,
		&p.Goals, &p.CreatedAt, &p.UpdatedAt,
	}
}

func (r *PostgresSupportPlansRepository) GetSupportPlan(ctx context.Context, id string) (*domain.SupportPlan, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	query := `SELECT ` + strings.Join(supportPlanCols, ", ") + ` FROM support_plans WHERE id = $1`

	var p domain.SupportPlan
	err := r.db.QueryRowContext(ctx, query, id).Scan(supportPlanFields(&p)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get support plan: %w", err)
	}
	return &p, nil
}

func (r *PostgresSupportPlansRepository) ListSupportPlansByUser(ctx context.Context, userID string) ([]*domain.SupportPlan, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	query := `SELECT ` + strings.Join(supportPlanCols, ", ") + `
		FROM support_plans
		WHERE user_id = $1
		ORDER BY plan_date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list support plans: %w", err)
	}
	defer rows.Close()

	var out []*domain.SupportPlan
	for rows.Next() {
		var p domain.SupportPlan
		if err := rows.Scan(supportPlanFields(&p)...); err != nil {
			return nil, fmt.Errorf("failed to scan support plan: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate support plans: %w", err)
	}
	return out, nil
}

func (r *PostgresSupportPlansRepository) CreateSupportPlan(ctx context.Context, p *domain.SupportPlan) (string, error) {
	if p.UserID == "" {
		return "", fmt.Errorf("user_id is required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO support_plans (` + strings.Join(supportPlanCols, ", ") + `)
		VALUES (` + placeholders(len(supportPlanCols)) + `)`

	if _, err := r.db.ExecContext(ctx, query, supportPlanFields(p)...); err != nil {
		return "", fmt.Errorf("failed to create support plan: %w", err)
	}
	return p.ID, nil
}

func (r *PostgresSupportPlansRepository) UpdateSupportPlan(ctx context.Context, p *domain.SupportPlan) error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	p.UpdatedAt = time.Now().UTC()

	var set []string
	var args []any
	fields := supportPlanFields(p)
	for i, col := range supportPlanCols {
		if col == "id" || col == "created_at" {
			continue
		}
		args = append(args, fields[i])
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, p.ID)
	query := `UPDATE support_plans SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update support plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresSupportPlansRepository) DeleteSupportPlan(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM support_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete support plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
