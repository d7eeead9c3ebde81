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

// PostgresConsultationsRepository 相談Repository実装
type PostgresConsultationsRepository struct {
	db *sql.DB
}

// NewPostgresConsultationsRepository 创建相談Repository
func NewPostgresConsultationsRepository(db *sql.DB) *PostgresConsultationsRepository {
	return &PostgresConsultationsRepository{db: db}
}

// 确保实现了接口
var _ ConsultationsRepository = (*PostgresConsultationsRepository)(nil)

// consultationCols lists every column of the consultations table. The order
// here is the single source of truth: consultationFields must return the
// matching struct fields in exactly the same order.
var consultationCols = []string{
	"id", "status", "staff_id", "consultation_date",
	"name", "furigana", "gender", "birth_year", "birth_month", "birth_day",
	"age_group", "postal_code", "address", "phone", "phone_mobile",
	"route_self", "route_family", "route_care_manager", "route_elderly_center",
	"route_disability_center", "route_government", "route_government_text",
	"route_hospital", "route_real_estate", "route_welfare_office",
	"route_other", "route_other_text",
	"attr_elderly", "attr_disability", "attr_disability_physical",
	"attr_disability_intellectual", "attr_disability_mental", "attr_childcare",
	"attr_single_parent", "attr_dv", "attr_foreigner", "attr_poverty",
	"attr_low_income", "attr_lgbt", "attr_welfare",
	"household_single", "household_couple", "household_parent_child",
	"household_siblings", "household_relatives", "household_friends",
	"household_other", "household_other_text",
	"mobility_independent", "mobility_partial_assist", "mobility_full_assist", "mobility_other", "mobility_other_text",
	"eating_independent", "eating_partial_assist", "eating_full_assist", "eating_other", "eating_other_text",
	"excretion_independent", "excretion_partial_assist", "excretion_full_assist", "excretion_other", "excretion_other_text",
	"bathing_independent", "bathing_partial_assist", "bathing_full_assist", "bathing_other", "bathing_other_text",
	"shopping_independent", "shopping_partial_assist", "shopping_full_assist", "shopping_other", "shopping_other_text",
	"garbage_independent", "garbage_partial_assist", "garbage_full_assist", "garbage_other", "garbage_other_text",
	"stairs_independent", "stairs_partial_assist", "stairs_full_assist", "stairs_other", "stairs_other_text",
	"care_manager_name", "care_manager_office", "medical_institution", "medical_contact",
	"rent_arrears_yes", "rent_arrears_no", "rent_arrears_duration", "rent_arrears_detail",
	"pet_yes", "pet_no", "pet_detail",
	"vehicle_car", "vehicle_motorcycle", "vehicle_bicycle",
	"floor_plan", "rent", "eviction_date", "eviction_notes",
	"relocation_yes", "relocation_no", "relocation_admin_opinion", "relocation_cost_bearer", "relocation_reason",
	"consultation_content", "consultation_result", "notes",
	"emergency_name", "emergency_relation", "emergency_address",
	"emergency_phone", "emergency_phone_mobile", "emergency_email",
	"user_id", "next_action_date", "created_at", "updated_at",
}

// consultationFields returns pointers to every field of c in consultationCols
// order. The same slice serves Scan destinations and Exec arguments
// (database/sql dereferences pointer arguments; nil pointers become NULL).
func consultationFields(c *domain.Consultation) []any {
	return []any{
		&c.ID, &c.Status, &c.StaffID, &c.ConsultationDate,
		&c.Name, &c.Furigana, &c.Gender, &c.BirthYear, &c.BirthMonth, &c.BirthDay,
		&c.AgeGroup, &c.PostalCode, &c.Address, &c.Phone, &c.PhoneMobile,
		&c.RouteSelf, &c.RouteFamily, &c.RouteCareManager, &c.RouteElderlyCenter,
		&c.RouteDisabilityCenter, &c.RouteGovernment, &c.RouteGovernmentText,
		&c.RouteHospital, &c.RouteRealEstate, &c.RouteWelfareOffice,
		&c.RouteOther, &c.RouteOtherText,
		&c.AttrElderly, &c.AttrDisability, &c.AttrDisabilityPhysical,
		&c.AttrDisabilityIntellectual, &c.AttrDisabilityMental, &c.AttrChildcare,
		&c.AttrSingleParent, &c.AttrDV, &c.AttrForeigner, &c.AttrPoverty,
		&c.AttrLowIncome, &c.AttrLGBT, &c.AttrWelfare,
		&c.HouseholdSingle, &c.HouseholdCouple, &c.HouseholdParentChild,
		&c.HouseholdSiblings, &c.HouseholdRelatives, &c.HouseholdFriends,
		&c.HouseholdOther, &c.HouseholdOtherText,
		&c.MobilityIndependent, &c.MobilityPartialAssist, &c.MobilityFullAssist, &c.MobilityOther, &c.MobilityOtherText,
		&c.EatingIndependent, &c.EatingPartialAssist, &c.EatingFullAssist, &c.EatingOther, &c.EatingOtherText,
		&c.ExcretionIndependent, &c.ExcretionPartialAssist, &c.ExcretionFullAssist, &c.ExcretionOther, &c.ExcretionOtherText,
		&c.BathingIndependent, &c.BathingPartialAssist, &c.BathingFullAssist, &c.BathingOther, &c.BathingOtherText,
		&c.ShoppingIndependent, &c.ShoppingPartialAssist, &c.ShoppingFullAssist, &c.ShoppingOther, &c.ShoppingOtherText,
		&c.GarbageIndependent, &c.GarbagePartialAssist, &c.GarbageFullAssist, &c.GarbageOther, &c.GarbageOtherText,
		&c.StairsIndependent, &c.StairsPartialAssist, &c.StairsFullAssist, &c.StairsOther, &c.StairsOtherText,
		&c.CareManagerName, &c.CareManagerOffice, &c.MedicalInstitution, &c.MedicalContact,
		&c.RentArrearsYes, &c.RentArrearsNo, &c.RentArrearsDuration, &c.RentArrearsDetail,
		&c.PetYes, &c.PetNo, &c.PetDetail,
		&c.VehicleCar, &c.VehicleMotorcycle, &c.VehicleBicycle,
		&c.FloorPlan, &c.Rent, &c.EvictionDate, &c.EvictionNotes,
		&c.RelocationYes, &c.RelocationNo, &c.RelocationAdminOpinion, &c.RelocationCostBearer, &c.RelocationReason,
		&c.ConsultationContent, &c.ConsultationResult, &c.Notes,
		&c.EmergencyName, &c.EmergencyRelation, &c.EmergencyAddress,
		&c.EmergencyPhone, &c.EmergencyPhoneMobile, &c.EmergencyEmail,
		&c.UserID, &c.NextActionDate, &c.CreatedAt, &c.UpdatedAt,
	}
}

// placeholders returns "$1, $2, ..., $n".
func placeholders(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		b.WriteString("$")
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func (r *PostgresConsultationsRepository) GetConsultation(ctx context.Context, id string) (*domain.Consultation, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	query := `SELECT ` + strings.Join(consultationCols, ", ") + ` FROM consultations WHERE id = $1`

	var c domain.Consultation
	err := r.db.QueryRowContext(ctx, query, id).Scan(consultationFields(&c)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	return &c, nil
}

func (r *PostgresConsultationsRepository) ListConsultations(ctx context.Context) ([]*domain.Consultation, error) {
	query := `SELECT ` + strings.Join(consultationCols, ", ") + `
		FROM consultations
		ORDER BY consultation_date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Consultation
	for rows.Next() {
		var c domain.Consultation
		if err := rows.Scan(consultationFields(&c)...); err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate consultations: %w", err)
	}
	return out, nil
}

func (r *PostgresConsultationsRepository) CreateConsultation(ctx context.Context, c *domain.Consultation) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO consultations (` + strings.Join(consultationCols, ", ") + `)
		VALUES (` + placeholders(len(consultationCols)) + `)`

	if _, err := r.db.ExecContext(ctx, query, consultationFields(c)...); err != nil {
		return "", fmt.Errorf("failed to create consultation: %w", err)
	}
	return c.ID, nil
}

func (r *PostgresConsultationsRepository) UpdateConsultation(ctx context.Context, c *domain.Consultation) error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}
	c.UpdatedAt = time.Now().UTC()

	// SET句はid/created_atを除く全列（列順はconsultationColsに従う）。
	// user_idとnext_action_dateも除外: 前者はSetUserLink、後者は支援経過の
	// 作成（イベントと同一トランザクションの親更新）だけが動かす。
	var set []string
	var args []any
	fields := consultationFields(c)
	for i, col := range consultationCols {
		switch col {
		case "id", "created_at", "user_id", "next_action_date":
			continue
		}
		args = append(args, fields[i])
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, c.ID)
	query := `UPDATE consultations SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update consultation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresConsultationsRepository) SetUserLink(ctx context.Context, consultationID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE consultations SET user_id = $1, updated_at = $2 WHERE id = $3`,
		userID, time.Now().UTC(), consultationID,
	)
	if err != nil {
		return fmt.Errorf("failed to link consultation to user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresConsultationsRepository) DeleteConsultation(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete consultation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
