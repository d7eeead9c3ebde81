package domain

import "time"

// ConsultationEvent 支援経過メモ（consultation_events テーブル）
// Append-only: rows are inserted, never updated. Inserting one also moves the
// parent consultation's current status/staff, inside the same transaction
// (see repository.EventsRepository.CreateEvent).
type ConsultationEvent struct {
	ID             string     `db:"id" json:"id"`                             // UUID, PRIMARY KEY
	ConsultationID string     `db:"consultation_id" json:"consultation_id"`   // UUID, NOT NULL FK -> consultations
	Status         string     `db:"status" json:"status"`                     // status at the time of the note
	StaffID        *string    `db:"staff_id" json:"staff_id"`                 // who logged the note
	Note           string     `db:"note" json:"note"`                         // TEXT, <= 5000 chars
	NextActionDate *time.Time `db:"next_action_date" json:"next_action_date"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
