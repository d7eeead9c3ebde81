package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"anshin-house-data/internal/domain"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// The year ticks over on the birthday itself.
func TestAgeBirthdayBoundary(t *testing.T) {
	assert.Equal(t, 33, Age(1990, 6, 15, date(2024, 6, 14)))
	assert.Equal(t, 34, Age(1990, 6, 15, date(2024, 6, 15)))
	assert.Equal(t, 34, Age(1990, 6, 15, date(2024, 6, 16)))
}

func TestAgeOf(t *testing.T) {
	y, m, d := 1955, 3, 10
	age := AgeOf(&y, &m, &d, date(2026, 9, 1))
	assert.NotNil(t, age)
	assert.Equal(t, 71, *age)

	// 生年不明なら nil
	assert.Nil(t, AgeOf(nil, &m, &d, date(2026, 9, 1)))

	// 月日不明は1月1日扱い
	age = AgeOf(&y, nil, nil, date(2026, 9, 1))
	assert.NotNil(t, age)
	assert.Equal(t, 71, *age)
}

func TestAgeBracketOfFallsBackToRecordedGroup(t *testing.T) {
	y := 1950
	c := &domain.Consultation{BirthYear: &y}
	assert.Equal(t, "70代", AgeBracketOf(c, date(2026, 9, 1)))

	c = &domain.Consultation{AgeGroup: "60代"}
	assert.Equal(t, "60代", AgeBracketOf(c, date(2026, 9, 1)))
}

func TestBirthDateString(t *testing.T) {
	y, m, d := 1955, 3, 10
	assert.Equal(t, "1955年3月10日", BirthDateString(&y, &m, &d))
	assert.Equal(t, "1955年3月", BirthDateString(&y, &m, nil))
	assert.Equal(t, "", BirthDateString(nil, &m, &d))
}
