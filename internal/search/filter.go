// Package search filters and sorts consultation collections in-process.
// The repositories return whole tables; every predicate here is pure and
// the filters compose by AND in a fixed order.
package search

import (
	"strings"
	"time"

	"anshin-house-data/internal/domain"
)

// StatusFilterAll disables status filtering entirely. An empty status
// filter means the default "active" view: terminal statuses and records
// already promoted to a user are hidden.
const StatusFilterAll = "all"

// Filter 相談一覧の絞り込み条件（すべてAND結合）
type Filter struct {
	Status        string // "" = 対応中のみ, StatusFilterAll = 全件, その他 = 完全一致
	StaffID       string // 担当者IDの完全一致
	Query         string // フリーテキスト検索
	Month         string // "YYYY-MM" 相談日の月一致
	HasNextAction bool   // 次回対応予定日が設定されている相談のみ
}

// Apply filters cs without mutating it. Filter order is fixed: status →
// assignee → free text → month → next-action.
func Apply(cs []*domain.Consultation, f Filter) []*domain.Consultation {
	out := make([]*domain.Consultation, 0, len(cs))
	for _, c := range cs {
		if !matchStatus(c, f.Status) {
			continue
		}
		if f.StaffID != "" && (c.StaffID == nil || *c.StaffID != f.StaffID) {
			continue
		}
		if f.Query != "" && !MatchQuery(c, f.Query) {
			continue
		}
		if f.Month != "" && !matchMonth(c.ConsultationDate, f.Month) {
			continue
		}
		if f.HasNextAction && c.NextActionDate == nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchStatus(c *domain.Consultation, filter string) bool {
	switch filter {
	case StatusFilterAll:
		return true
	case "":
		// デフォルトは「対応中」: 終了系ステータスと利用者登録済みを除外
		if c.UserID != nil {
			return false
		}
		for _, s := range domain.TerminalStatuses {
			if c.Status == s {
				return false
			}
		}
		return true
	default:
		return c.Status == filter
	}
}

// phoneFields are matched with hyphens stripped from both sides, so
// "090-1234" and "09012345678" find the same stored numbers.
func phoneFields(c *domain.Consultation) []string {
	return []string{c.Phone, c.PhoneMobile, c.EmergencyPhone, c.EmergencyPhoneMobile}
}

func textFields(c *domain.Consultation) []string {
	return []string{
		c.Name,
		c.Furigana,
		c.Address,
		c.EmergencyName,
		c.CareManagerName,
		c.MedicalInstitution,
		c.MedicalContact,
		c.ConsultationContent,
		c.ConsultationResult,
		c.ID,
	}
}

// MatchQuery reports whether c matches the free-text query
// (case-insensitive substring; symmetric hyphen stripping on phone fields
// only).
func MatchQuery(c *domain.Consultation, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range textFields(c) {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	qPhone := stripHyphens(q)
	if qPhone == "" {
		return false
	}
	for _, f := range phoneFields(c) {
		if f != "" && strings.Contains(stripHyphens(strings.ToLower(f)), qPhone) {
			return true
		}
	}
	return false
}

func stripHyphens(s string) string {
	return strings.NewReplacer("-", "", "ー", "", "−", "").Replace(s)
}

func matchMonth(d *time.Time, month string) bool {
	if d == nil {
		return false
	}
	return strings.HasPrefix(d.Format("2006-01-02"), month)
}
