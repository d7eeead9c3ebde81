package domain

import "time"

// SupportPlan 支援計画（support_plans テーブル）
// One plan per end user per creation date. Demographics are a denormalized
// snapshot taken when the plan is written, not a live join.
type SupportPlan struct {
	ID       string     `db:"id" json:"id"`               // UUID, PRIMARY KEY
	UserID   string     `db:"user_id" json:"user_id"`     // UUID, NOT NULL FK -> end_users
	StaffID  *string    `db:"staff_id" json:"staff_id"`
	PlanDate *time.Time `db:"plan_date" json:"plan_date"` // DATE, NOT NULL

	// 作成時点の基本情報スナップショット
	Name       string `db:"name" json:"name"`
	Furigana   string `db:"furigana" json:"furigana"`
	Gender     string `db:"gender" json:"gender"`
	BirthYear  *int   `db:"birth_year" json:"birth_year"`
	BirthMonth *int   `db:"birth_month" json:"birth_month"`
	BirthDay   *int   `db:"birth_day" json:"birth_day"`
	Address    string `db:"address" json:"address"`
	Phone      string `db:"phone" json:"phone"`

	// 要介護度（排他グループ、forms.CareLevel で変換）
	CareLevelNone     bool `db:"care_level_none" json:"care_level_none"`         // 自立
	CareLevelSupport1 bool `db:"care_level_support1" json:"care_level_support1"` // 要支援1
	CareLevelSupport2 bool `db:"care_level_support2" json:"care_level_support2"` // 要支援2
	CareLevelCare1    bool `db:"care_level_care1" json:"care_level_care1"`       // 要介護1
	CareLevelCare2    bool `db:"care_level_care2" json:"care_level_care2"`
	CareLevelCare3    bool `db:"care_level_care3" json:"care_level_care3"`
	CareLevelCare4    bool `db:"care_level_care4" json:"care_level_care4"`
	CareLevelCare5    bool `db:"care_level_care5" json:"care_level_care5"`

	// 年金種別（複数選択）
	PensionNational   bool `db:"pension_national" json:"pension_national"`     // 国民年金
	PensionEmployee   bool `db:"pension_employee" json:"pension_employee"`     // 厚生年金
	PensionDisability bool `db:"pension_disability" json:"pension_disability"` // 障害年金
	PensionNone       bool `db:"pension_none" json:"pension_none"`

	// 見守りサービス（複数選択）
	WatchPhone  bool `db:"watch_phone" json:"watch_phone"`   // 電話確認
	WatchSensor bool `db:"watch_sensor" json:"watch_sensor"` // センサー
	WatchVisit  bool `db:"watch_visit" json:"watch_visit"`   // 訪問

	// ニーズ（5分類）と目標
	NeedsFinancial   string `db:"needs_financial" json:"needs_financial"`
	NeedsPhysical    string `db:"needs_physical" json:"needs_physical"`
	NeedsMental      string `db:"needs_mental" json:"needs_mental"`
	NeedsLifestyle   string `db:"needs_lifestyle" json:"needs_lifestyle"`
	NeedsEnvironment string `db:"needs_environment" json:"needs_environment"`
	Goals            string `db:"goals" json:"goals"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
