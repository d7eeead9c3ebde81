package domain

import "time"

// Staff 支援担当者（staff テーブル）
// Referenced by consultations, consultation_events and support_plans.
type Staff struct {
	ID        string    `db:"id" json:"id"`                 // UUID, PRIMARY KEY
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
