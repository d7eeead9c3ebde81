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

// PostgresUsersRepository 利用者Repository実装
type PostgresUsersRepository struct {
	db *sql.DB
}

// NewPostgresUsersRepository 创建利用者Repository
func NewPostgresUsersRepository(db *sql.DB) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db}
}

var _ UsersRepository = (*PostgresUsersRepository)(nil)

var endUserCols = []string{
	"id", "uid", "consultation_id", "staff_id",
	"name", "furigana", "gender", "birth_year", "birth_month", "birth_day",
	"postal_code", "address", "phone", "phone_mobile",
	"property_name", "property_address", "floor_plan",
	"rent", "management_fee", "deposit", "key_money",
	"contract_date", "renewal_date", "monitoring_system",
	"proxy_payment_yes", "proxy_payment_no",
	"notes", "created_at", "updated_at",
}

// endUserFields returns pointers in endUserCols order (see the matching
// comment on consultationFields).
func endUserFields(u *domain.EndUser) []any {
	return []any{
		&u.ID, &u.UID, &u.ConsultationID, &u.StaffID,
		&u.Name, &u.Furigana, &u.Gender, &u.BirthYear, &u.BirthMonth, &u.BirthDay,
		&u.PostalCode, &u.Address, &u.Phone, &u.PhoneMobile,
		&u.PropertyName, &u.PropertyAddress, &u.FloorPlan,
		&u.Rent, &u.ManagementFee, &u.Deposit, &u.KeyMoney,
		&u.ContractDate, &u.RenewalDate, &u.MonitoringSystem,
		&u.ProxyPaymentYes, &u.ProxyPaymentNo,
		&u.Notes, &u.CreatedAt, &u.UpdatedAt,
	}
}

func (r *PostgresUsersRepository) GetUser(ctx context.Context, id string) (*domain.EndUser, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	query := `SELECT ` + strings.Join(endUserCols, ", ") + ` FROM end_users WHERE id = $1`

	var u domain.EndUser
	err := r.db.QueryRowContext(ctx, query, id).Scan(endUserFields(&u)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *PostgresUsersRepository) ListUsers(ctx context.Context) ([]*domain.EndUser, error) {
	query := `SELECT ` + strings.Join(endUserCols, ", ") + ` FROM end_users ORDER BY uid ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var out []*domain.EndUser
	for rows.Next() {
		var u domain.EndUser
		if err := rows.Scan(endUserFields(&u)...); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return out, nil
}

func (r *PostgresUsersRepository) ListUIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT uid FROM end_users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list uids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("failed to scan uid: %w", err)
		}
		out = append(out, uid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate uids: %w", err)
	}
	return out, nil
}

func (r *PostgresUsersRepository) CreateUser(ctx context.Context, u *domain.EndUser) (string, error) {
	if u.UID == "" {
		return "", fmt.Errorf("uid is required")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `INSERT INTO end_users (` + strings.Join(endUserCols, ", ") + `)
		VALUES (` + placeholders(len(endUserCols)) + `)`

	if _, err := r.db.ExecContext(ctx, query, endUserFields(u)...); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return u.ID, nil
}

func (r *PostgresUsersRepository) UpdateUser(ctx context.Context, u *domain.EndUser) error {
	if u.ID == "" {
		return fmt.Errorf("id is required")
	}
	u.UpdatedAt = time.Now().UTC()

	var set []string
	var args []any
	fields := endUserFields(u)
	for i, col := range endUserCols {
		if col == "id" || col == "created_at" {
			continue
		}
		args = append(args, fields[i])
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, u.ID)
	query := `UPDATE end_users SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresUsersRepository) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM end_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
