package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"anshin-house-data/internal/domain"
)

// PostgresEventsRepository 支援経過Repository実装
type PostgresEventsRepository struct {
	db *sql.DB
}

// NewPostgresEventsRepository 创建支援経過Repository
func NewPostgresEventsRepository(db *sql.DB) *PostgresEventsRepository {
	return &PostgresEventsRepository{db: db}
}

var _ EventsRepository = (*PostgresEventsRepository)(nil)

func (r *PostgresEventsRepository) CreateEvent(ctx context.Context, e *domain.ConsultationEvent) (string, error) {
	if e.ConsultationID == "" {
		return "", fmt.Errorf("consultation_id is required")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1) イベント挿入（先にイベント、次に親の現在状態。順序は固定）
	_, err = tx.ExecContext(ctx,
		`INSERT INTO consultation_events (id, consultation_id, status, staff_id, note, next_action_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.ConsultationID, e.Status, e.StaffID, e.Note, e.NextActionDate, e.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}

	// 2) 親相談の現在状態を更新（履歴から導出される非正規化列）
	res, err := tx.ExecContext(ctx,
		`UPDATE consultations
		 SET status = $1, staff_id = $2, next_action_date = $3, updated_at = $4
		 WHERE id = $5`,
		e.Status, e.StaffID, e.NextActionDate, e.CreatedAt, e.ConsultationID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to update parent consultation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return e.ID, nil
}

func (r *PostgresEventsRepository) ListEventsByConsultation(ctx context.Context, consultationID string) ([]*domain.ConsultationEvent, error) {
	if consultationID == "" {
		return nil, fmt.Errorf("consultation_id is required")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, consultation_id, status, staff_id, note, next_action_date, created_at
		 FROM consultation_events
		 WHERE consultation_id = $1
		 ORDER BY created_at ASC`,
		consultationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var out []*domain.ConsultationEvent
	for rows.Next() {
		var e domain.ConsultationEvent
		if err := rows.Scan(&e.ID, &e.ConsultationID, &e.Status, &e.StaffID, &e.Note, &e.NextActionDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return out, nil
}

func (r *PostgresEventsRepository) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultation_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
