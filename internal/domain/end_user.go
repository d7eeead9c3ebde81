package domain

import "time"

// EndUser 利用者（end_users テーブル）
// A consultation is promoted to an end user once the organization formally
// registers the consulter; demographics are copied at promotion time and a
// human-readable UID (YYYY-NNNN) is assigned. Uniqueness of the UID is
// enforced at the application layer (import + promote paths).
type EndUser struct {
	ID             string  `db:"id" json:"id"`                           // UUID, PRIMARY KEY
	UID            string  `db:"uid" json:"uid"`                         // 表示用ID '0000-0000' 形式, NOT NULL
	ConsultationID *string `db:"consultation_id" json:"consultation_id"`
	StaffID        *string `db:"staff_id" json:"staff_id"`

	// 基本情報
	Name        string `db:"name" json:"name"`
	Furigana    string `db:"furigana" json:"furigana"`
	Gender      string `db:"gender" json:"gender"`
	BirthYear   *int   `db:"birth_year" json:"birth_year"`
	BirthMonth  *int   `db:"birth_month" json:"birth_month"`
	BirthDay    *int   `db:"birth_day" json:"birth_day"`
	PostalCode  string `db:"postal_code" json:"postal_code"`
	Address     string `db:"address" json:"address"`
	Phone       string `db:"phone" json:"phone"`
	PhoneMobile string `db:"phone_mobile" json:"phone_mobile"`

	// 入居物件・契約
	PropertyName     string     `db:"property_name" json:"property_name"`
	PropertyAddress  string     `db:"property_address" json:"property_address"`
	FloorPlan        string     `db:"floor_plan" json:"floor_plan"`
	Rent             *int64     `db:"rent" json:"rent"`                           // 家賃（円）
	ManagementFee    *int64     `db:"management_fee" json:"management_fee"`       // 共益費（円）
	Deposit          *int64     `db:"deposit" json:"deposit"`                     // 敷金（円）
	KeyMoney         *int64     `db:"key_money" json:"key_money"`                 // 礼金（円）
	ContractDate     *time.Time `db:"contract_date" json:"contract_date"`         // 契約日
	RenewalDate      *time.Time `db:"renewal_date" json:"renewal_date"`           // 次回更新日
	MonitoringSystem string     `db:"monitoring_system" json:"monitoring_system"` // 見守りシステム名

	// 代理納付（家賃を福祉事務所が直接支払う制度）
	ProxyPaymentYes bool `db:"proxy_payment_yes" json:"proxy_payment_yes"`
	ProxyPaymentNo  bool `db:"proxy_payment_no" json:"proxy_payment_no"`

	Notes string `db:"notes" json:"notes"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
