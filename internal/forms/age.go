package forms

import (
	"strconv"
	"time"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/labels"
)

// Age returns whole years lived as of today. The year ticks over on the
// birthday itself, so the day before a birthday still reports the old age.
func Age(year, month, day int, today time.Time) int {
	age := today.Year() - year
	birthdayThisYear := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
	if today.Before(birthdayThisYear) {
		age--
	}
	return age
}

// AgeOf derives the age of a consultation subject, or nil when the birth
// year is unknown. Missing month/day default to January 1st.
func AgeOf(year, month, day *int, today time.Time) *int {
	if year == nil {
		return nil
	}
	m, d := 1, 1
	if month != nil {
		m = *month
	}
	if day != nil {
		d = *day
	}
	age := Age(*year, m, d, today)
	if age < 0 {
		return nil
	}
	return &age
}

// AgeBracketOf returns the display bracket for a consultation: the decade
// derived from the birth date when known, otherwise the approximate bracket
// the intake form recorded.
func AgeBracketOf(c *domain.Consultation, today time.Time) string {
	if age := AgeOf(c.BirthYear, c.BirthMonth, c.BirthDay, today); age != nil {
		return labels.AgeBracketLabel(*age)
	}
	return c.AgeGroup
}

// BirthDateString 生年月日の表示用文字列（例 1955年3月10日）
func BirthDateString(year, month, day *int) string {
	if year == nil {
		return ""
	}
	s := strconv.Itoa(*year) + "年"
	if month != nil {
		s += strconv.Itoa(*month) + "月"
	}
	if day != nil {
		s += strconv.Itoa(*day) + "日"
	}
	return s
}
