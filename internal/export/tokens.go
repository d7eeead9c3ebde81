package export

import (
	"strconv"
	"strings"
	"time"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/forms"
	"anshin-house-data/internal/labels"
)

// RecordTokens builds the {{token}} substitution table for the per-record
// export. Every form field has a token; unset fields map to the empty string
// so the placeholder disappears from the output instead of leaking.
func RecordTokens(c *domain.Consultation, staffName string, today time.Time) map[string]string {
	t := map[string]string{
		"consultation_date": dateString(c.ConsultationDate),
		"status":            c.Status,
		"staff_name":        staffName,

		"name":         c.Name,
		"furigana":     c.Furigana,
		"gender":       labels.GenderLabel(c.Gender),
		"birth_date":   forms.BirthDateString(c.BirthYear, c.BirthMonth, c.BirthDay),
		"age":          ageString(c, today),
		"age_bracket":  forms.AgeBracketOf(c, today),
		"postal_code":  c.PostalCode,
		"address":      c.Address,
		"phone":        c.Phone,
		"phone_mobile": c.PhoneMobile,

		"routes":                strings.Join(labels.RouteLabels(c), "、"),
		"route_government_text": c.RouteGovernmentText,
		"route_other_text":      c.RouteOtherText,
		"attributes":            strings.Join(labels.AttributeLabels(c), "、"),
		"household":             strings.Join(labels.HouseholdLabels(c), "、"),

		"care_manager_name":   c.CareManagerName,
		"care_manager_office": c.CareManagerOffice,
		"medical_institution": c.MedicalInstitution,
		"medical_contact":     c.MedicalContact,

		"rent_arrears":          labels.YesNoLabel(string(forms.RentArrears(c).Status())),
		"rent_arrears_duration": c.RentArrearsDuration,
		"rent_arrears_detail":   c.RentArrearsDetail,
		"pet":                   labels.YesNoLabel(string(forms.Pet(c).Status())),
		"pet_detail":            c.PetDetail,
		"vehicles":              strings.Join(labels.VehicleLabels(c), "、"),

		"floor_plan":     c.FloorPlan,
		"rent":           yenString(c.Rent),
		"eviction_date":  dateString(c.EvictionDate),
		"eviction_notes": c.EvictionNotes,

		"relocation":               labels.YesNoLabel(string(forms.Relocation(c).Status())),
		"relocation_admin_opinion": labels.AdminOpinionLabel(c.RelocationAdminOpinion, ""),
		"relocation_cost_bearer":   labels.CostBearerLabel(c.RelocationCostBearer, ""),
		"relocation_reason":        c.RelocationReason,

		"consultation_content": c.ConsultationContent,
		"consultation_result":  c.ConsultationResult,
		"notes":                c.Notes,

		"emergency_name":         c.EmergencyName,
		"emergency_relation":     c.EmergencyRelation,
		"emergency_address":      c.EmergencyAddress,
		"emergency_phone":        c.EmergencyPhone,
		"emergency_phone_mobile": c.EmergencyPhoneMobile,
		"emergency_email":        c.EmergencyEmail,

		"next_action_date": dateString(c.NextActionDate),
		"created_at":       c.CreatedAt.Format("2006-01-02"),

		// 丸付けセル（紙様式のチェック欄）
		"gender_male":      circle(c.Gender == "male"),
		"gender_female":    circle(c.Gender == "female"),
		"gender_other":     circle(c.Gender == "other"),
		"rent_arrears_yes": circle(forms.RentArrears(c).Status() == forms.Yes),
		"rent_arrears_no":  circle(forms.RentArrears(c).Status() == forms.No),
		"pet_yes":          circle(forms.Pet(c).Status() == forms.Yes),
		"pet_no":           circle(forms.Pet(c).Status() == forms.No),
		"relocation_yes":   circle(forms.Relocation(c).Status() == forms.Yes),
		"relocation_no":    circle(forms.Relocation(c).Status() == forms.No),
	}

	// ADL groups: {{mobility}}, {{mobility_detail}}, and the per-flag circle
	// marks {{mobility_independent}} etc. that the layout uses for checkbox
	// cells.
	for _, g := range forms.AssistGroups(c) {
		status := g.Group.Status()
		t[g.Key] = labels.AssistLabel(string(status), g.Group.Detail())
		t[g.Key+"_detail"] = g.Group.Detail()
		t[g.Key+"_independent"] = circle(status == forms.AssistIndependent)
		t[g.Key+"_partial_assist"] = circle(status == forms.AssistPartialAssist)
		t[g.Key+"_full_assist"] = circle(status == forms.AssistFullAssist)
		t[g.Key+"_other"] = circle(status == forms.AssistOther)
	}

	return t
}

// circle renders a checkbox cell: ○ when selected, empty otherwise.
func circle(on bool) string {
	if on {
		return "○"
	}
	return ""
}

func dateString(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}

func ageString(c *domain.Consultation, today time.Time) string {
	if age := forms.AgeOf(c.BirthYear, c.BirthMonth, c.BirthDay, today); age != nil {
		return strconv.Itoa(*age)
	}
	return ""
}

func yenString(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// substituteTokens replaces every {{token}} in s using the table; unknown
// tokens are replaced with the empty string so a template typo never ships a
// raw placeholder to the end user.
func substituteTokens(s string, tokens map[string]string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	var b strings.Builder
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}}")
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		name := strings.TrimSpace(s[start+2 : start+end])
		b.WriteString(tokens[name])
		s = s[start+end+2:]
	}
}
