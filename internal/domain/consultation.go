package domain

import "time"

// Consultation status values (consultations.status / consultation_events.status).
// The first five are the active pipeline in order; the last two are terminal.
const (
	StatusInitialInterview = "初回面談"
	StatusConsidering      = "支援検討中"
	StatusPropertySearch   = "物件探し中"
	StatusApplication      = "申込・審査中"
	StatusFollowUp         = "入居後フォロー中"
	StatusClosed           = "支援終了"
	StatusExcluded         = "対象外・辞退"
)

// AllStatuses 相談ステータス一覧（表示順）
var AllStatuses = []string{
	StatusInitialInterview,
	StatusConsidering,
	StatusPropertySearch,
	StatusApplication,
	StatusFollowUp,
	StatusClosed,
	StatusExcluded,
}

// TerminalStatuses are excluded from the default "active" list view.
var TerminalStatuses = []string{StatusClosed, StatusExcluded}

// IsValidStatus reports whether s is a known consultation status.
func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Consultation 相談受付レコード（consultations テーブル）
// Boolean groups mirror the storage schema one-to-one; the forms package
// converts them to and from the UI-facing status enums.
type Consultation struct {
	ID string `db:"id" json:"id"` // UUID, PRIMARY KEY

	// 分類
	Status  string  `db:"status" json:"status"`     // NOT NULL, one of AllStatuses
	StaffID *string `db:"staff_id" json:"staff_id"` // UUID, nullable FK -> staff

	// 受付
	ConsultationDate *time.Time `db:"consultation_date" json:"consultation_date"` // DATE, NOT NULL

	// 相談者基本情報
	Name        string `db:"name" json:"name"`
	Furigana    string `db:"furigana" json:"furigana"`
	Gender      string `db:"gender" json:"gender"`             // 'male' | 'female' | 'other' | ''
	BirthYear   *int   `db:"birth_year" json:"birth_year"`
	BirthMonth  *int   `db:"birth_month" json:"birth_month"`
	BirthDay    *int   `db:"birth_day" json:"birth_day"`
	AgeGroup    string `db:"age_group" json:"age_group"`       // 年代（生年月日不明時の概算、例 '60代'）
	PostalCode  string `db:"postal_code" json:"postal_code"`
	Address     string `db:"address" json:"address"`
	Phone       string `db:"phone" json:"phone"`
	PhoneMobile string `db:"phone_mobile" json:"phone_mobile"`

	// 相談経路（複数選択）
	RouteSelf             bool   `db:"route_self" json:"route_self"`
	RouteFamily           bool   `db:"route_family" json:"route_family"`
	RouteCareManager      bool   `db:"route_care_manager" json:"route_care_manager"`
	RouteElderlyCenter    bool   `db:"route_elderly_center" json:"route_elderly_center"`       // 地域包括支援センター
	RouteDisabilityCenter bool   `db:"route_disability_center" json:"route_disability_center"` // 障害相談支援事業所
	RouteGovernment       bool   `db:"route_government" json:"route_government"`
	RouteGovernmentText   string `db:"route_government_text" json:"route_government_text"`
	RouteHospital         bool   `db:"route_hospital" json:"route_hospital"`                   // 医療機関
	RouteRealEstate       bool   `db:"route_real_estate" json:"route_real_estate"`
	RouteWelfareOffice    bool   `db:"route_welfare_office" json:"route_welfare_office"`       // 生活保護担当
	RouteOther            bool   `db:"route_other" json:"route_other"`
	RouteOtherText        string `db:"route_other_text" json:"route_other_text"`

	// 属性（複数選択）
	AttrElderly                bool `db:"attr_elderly" json:"attr_elderly"`
	AttrDisability             bool `db:"attr_disability" json:"attr_disability"`
	AttrDisabilityPhysical     bool `db:"attr_disability_physical" json:"attr_disability_physical"`
	AttrDisabilityIntellectual bool `db:"attr_disability_intellectual" json:"attr_disability_intellectual"`
	AttrDisabilityMental       bool `db:"attr_disability_mental" json:"attr_disability_mental"`
	AttrChildcare              bool `db:"attr_childcare" json:"attr_childcare"`
	AttrSingleParent           bool `db:"attr_single_parent" json:"attr_single_parent"`
	AttrDV                     bool `db:"attr_dv" json:"attr_dv"`
	AttrForeigner              bool `db:"attr_foreigner" json:"attr_foreigner"`
	AttrPoverty                bool `db:"attr_poverty" json:"attr_poverty"`
	AttrLowIncome              bool `db:"attr_low_income" json:"attr_low_income"`
	AttrLGBT                   bool `db:"attr_lgbt" json:"attr_lgbt"`
	AttrWelfare                bool `db:"attr_welfare" json:"attr_welfare"`                                 // 生活保護受給中

	// 世帯構成（複数選択）
	HouseholdSingle      bool   `db:"household_single" json:"household_single"`
	HouseholdCouple      bool   `db:"household_couple" json:"household_couple"`
	HouseholdParentChild bool   `db:"household_parent_child" json:"household_parent_child"`
	HouseholdSiblings    bool   `db:"household_siblings" json:"household_siblings"`
	HouseholdRelatives   bool   `db:"household_relatives" json:"household_relatives"`
	HouseholdFriends     bool   `db:"household_friends" json:"household_friends"`
	HouseholdOther       bool   `db:"household_other" json:"household_other"`
	HouseholdOtherText   string `db:"household_other_text" json:"household_other_text"`

	// ADL/IADL 状況（各グループは排他、forms.AssistStatus で変換）
	MobilityIndependent   bool   `db:"mobility_independent" json:"mobility_independent"`
	MobilityPartialAssist bool   `db:"mobility_partial_assist" json:"mobility_partial_assist"`
	MobilityFullAssist    bool   `db:"mobility_full_assist" json:"mobility_full_assist"`
	MobilityOther         bool   `db:"mobility_other" json:"mobility_other"`
	MobilityOtherText     string `db:"mobility_other_text" json:"mobility_other_text"`

	EatingIndependent   bool   `db:"eating_independent" json:"eating_independent"`
	EatingPartialAssist bool   `db:"eating_partial_assist" json:"eating_partial_assist"`
	EatingFullAssist    bool   `db:"eating_full_assist" json:"eating_full_assist"`
	EatingOther         bool   `db:"eating_other" json:"eating_other"`
	EatingOtherText     string `db:"eating_other_text" json:"eating_other_text"`

	ExcretionIndependent   bool   `db:"excretion_independent" json:"excretion_independent"`
	ExcretionPartialAssist bool   `db:"excretion_partial_assist" json:"excretion_partial_assist"`
	ExcretionFullAssist    bool   `db:"excretion_full_assist" json:"excretion_full_assist"`
	ExcretionOther         bool   `db:"excretion_other" json:"excretion_other"`
	ExcretionOtherText     string `db:"excretion_other_text" json:"excretion_other_text"`

	BathingIndependent   bool   `db:"bathing_independent" json:"bathing_independent"`
	BathingPartialAssist bool   `db:"bathing_partial_assist" json:"bathing_partial_assist"`
	BathingFullAssist    bool   `db:"bathing_full_assist" json:"bathing_full_assist"`
	BathingOther         bool   `db:"bathing_other" json:"bathing_other"`
	BathingOtherText     string `db:"bathing_other_text" json:"bathing_other_text"`

	ShoppingIndependent   bool   `db:"shopping_independent" json:"shopping_independent"`
	ShoppingPartialAssist bool   `db:"shopping_partial_assist" json:"shopping_partial_assist"`
	ShoppingFullAssist    bool   `db:"shopping_full_assist" json:"shopping_full_assist"`
	ShoppingOther         bool   `db:"shopping_other" json:"shopping_other"`
	ShoppingOtherText     string `db:"shopping_other_text" json:"shopping_other_text"`

	GarbageIndependent   bool   `db:"garbage_independent" json:"garbage_independent"`
	GarbagePartialAssist bool   `db:"garbage_partial_assist" json:"garbage_partial_assist"`
	GarbageFullAssist    bool   `db:"garbage_full_assist" json:"garbage_full_assist"`
	GarbageOther         bool   `db:"garbage_other" json:"garbage_other"`
	GarbageOtherText     string `db:"garbage_other_text" json:"garbage_other_text"`

	StairsIndependent   bool   `db:"stairs_independent" json:"stairs_independent"`       // 2階への移動
	StairsPartialAssist bool   `db:"stairs_partial_assist" json:"stairs_partial_assist"`
	StairsFullAssist    bool   `db:"stairs_full_assist" json:"stairs_full_assist"`
	StairsOther         bool   `db:"stairs_other" json:"stairs_other"`
	StairsOtherText     string `db:"stairs_other_text" json:"stairs_other_text"`

	// 介護・医療
	CareManagerName    string `db:"care_manager_name" json:"care_manager_name"`
	CareManagerOffice  string `db:"care_manager_office" json:"care_manager_office"`
	MedicalInstitution string `db:"medical_institution" json:"medical_institution"`
	MedicalContact     string `db:"medical_contact" json:"medical_contact"`

	// 住まい
	RentArrearsYes      bool   `db:"rent_arrears_yes" json:"rent_arrears_yes"`
	RentArrearsNo       bool   `db:"rent_arrears_no" json:"rent_arrears_no"`
	RentArrearsDuration string `db:"rent_arrears_duration" json:"rent_arrears_duration"`
	RentArrearsDetail   string `db:"rent_arrears_detail" json:"rent_arrears_detail"`

	PetYes    bool   `db:"pet_yes" json:"pet_yes"`
	PetNo     bool   `db:"pet_no" json:"pet_no"`
	PetDetail string `db:"pet_detail" json:"pet_detail"`

	VehicleCar        bool `db:"vehicle_car" json:"vehicle_car"`
	VehicleMotorcycle bool `db:"vehicle_motorcycle" json:"vehicle_motorcycle"`
	VehicleBicycle    bool `db:"vehicle_bicycle" json:"vehicle_bicycle"`

	FloorPlan     string     `db:"floor_plan" json:"floor_plan"`         // 間取り（例 1K）
	Rent          *int64     `db:"rent" json:"rent"`                     // 円
	EvictionDate  *time.Time `db:"eviction_date" json:"eviction_date"`
	EvictionNotes string     `db:"eviction_notes" json:"eviction_notes"`

	RelocationYes          bool   `db:"relocation_yes" json:"relocation_yes"`                     // 転居希望
	RelocationNo           bool   `db:"relocation_no" json:"relocation_no"`
	RelocationAdminOpinion string `db:"relocation_admin_opinion" json:"relocation_admin_opinion"` // labels.AdminOpinionLabel のコード
	RelocationCostBearer   string `db:"relocation_cost_bearer" json:"relocation_cost_bearer"`     // labels.CostBearerLabel のコード
	RelocationReason       string `db:"relocation_reason" json:"relocation_reason"`

	// 自由記述
	ConsultationContent string `db:"consultation_content" json:"consultation_content"`
	ConsultationResult  string `db:"consultation_result" json:"consultation_result"`
	Notes               string `db:"notes" json:"notes"`

	// 緊急連絡先
	EmergencyName        string `db:"emergency_name" json:"emergency_name"`
	EmergencyRelation    string `db:"emergency_relation" json:"emergency_relation"`
	EmergencyAddress     string `db:"emergency_address" json:"emergency_address"`
	EmergencyPhone       string `db:"emergency_phone" json:"emergency_phone"`
	EmergencyPhoneMobile string `db:"emergency_phone_mobile" json:"emergency_phone_mobile"`
	EmergencyEmail       string `db:"emergency_email" json:"emergency_email"`

	// 利用者登録済みの場合のみ設定される
	UserID *string `db:"user_id" json:"user_id"` // UUID, nullable FK -> end_users

	NextActionDate *time.Time `db:"next_action_date" json:"next_action_date"` // 次回対応予定日（最新イベント由来）

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
