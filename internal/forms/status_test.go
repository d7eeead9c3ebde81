package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anshin-house-data/internal/domain"
)

// Every valid status must survive a status→booleans→status round trip,
// including the unset state.
func TestAssistStatusRoundTrip(t *testing.T) {
	all := append([]AssistStatus{AssistUnset}, AssistStatuses...)
	for _, s := range all {
		got := AssistFromBooleans(s.Booleans())
		assert.Equal(t, s, got, string(s))
	}
}

// A corrupted row (more than one flag set) resolves by the fixed priority,
// and writing it back normalizes the row.
func TestAssistFromBooleansPriority(t *testing.T) {
	assert.Equal(t, AssistIndependent, AssistFromBooleans(true, true, true, true))
	assert.Equal(t, AssistPartialAssist, AssistFromBooleans(false, true, true, true))
	assert.Equal(t, AssistFullAssist, AssistFromBooleans(false, false, true, true))
	assert.Equal(t, AssistOther, AssistFromBooleans(false, false, false, true))
	assert.Equal(t, AssistUnset, AssistFromBooleans(false, false, false, false))
}

func TestAssistGroupSetClearsDetail(t *testing.T) {
	c := &domain.Consultation{}
	g := Mobility(c)

	g.Set(AssistOther, "車椅子")
	assert.Equal(t, AssistOther, g.Status())
	assert.Equal(t, "車椅子", g.Detail())

	g.Set(AssistIndependent, "残ってはいけない")
	assert.Equal(t, AssistIndependent, g.Status())
	assert.Equal(t, "", c.MobilityOtherText)
}

func TestAssistGroupsCoverEveryGroup(t *testing.T) {
	c := &domain.Consultation{
		EatingFullAssist: true,
		StairsOther:      true,
		StairsOtherText:  "手すりがあれば可",
	}
	groups := AssistGroups(c)
	assert.Len(t, groups, 7)

	byKey := map[string]NamedAssistGroup{}
	for _, g := range groups {
		byKey[g.Key] = g
	}
	assert.Equal(t, AssistFullAssist, byKey["eating"].Group.Status())
	assert.Equal(t, "手すりがあれば可", byKey["stairs"].Group.Detail())
	assert.Equal(t, AssistUnset, byKey["bathing"].Group.Status())
}

func TestYesNoRoundTrip(t *testing.T) {
	for _, s := range []YesNoStatus{YesNoUnset, Yes, No} {
		assert.Equal(t, s, YesNoFromBooleans(s.Booleans()))
	}
	// yes wins on corrupted rows
	assert.Equal(t, Yes, YesNoFromBooleans(true, true))
}

func TestCareLevelRoundTrip(t *testing.T) {
	levels := []CareLevel{
		CareLevelUnset, CareLevelNone, CareLevelSupport1, CareLevelSupport2,
		CareLevelCare1, CareLevelCare2, CareLevelCare3, CareLevelCare4, CareLevelCare5,
	}
	for _, level := range levels {
		p := &domain.SupportPlan{}
		SetCareLevel(p, level)
		assert.Equal(t, level, CareLevelOf(p), string(level))
	}
}
