package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anshin-house-data/internal/domain"
)

func TestGenderLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"male", "男性"},
		{"female", "女性"},
		{"other", "その他"},
		{"", ""},
		{"unknown_code", "unknown_code"}, // 未知コードはそのまま
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenderLabel(tt.code))
	}
}

func TestAssistLabel(t *testing.T) {
	tests := []struct {
		code   string
		detail string
		want   string
	}{
		{"independent", "", "自立"},
		{"partial_assist", "", "一部介助"},
		{"full_assist", "", "全介助"},
		{"other", "見守りが必要", "その他（見守りが必要）"},
		{"other", "", "その他"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AssistLabel(tt.code, tt.detail))
	}
}

func TestYesNoLabel(t *testing.T) {
	assert.Equal(t, "あり", YesNoLabel("yes"))
	assert.Equal(t, "なし", YesNoLabel("no"))
	assert.Equal(t, "", YesNoLabel(""))
}

func TestCostBearerLabel(t *testing.T) {
	tests := []struct {
		code   string
		detail string
		want   string
	}{
		{"previous_city", "", "転居前自治体"},
		{"next_city", "", "転居先自治体"},
		{"self", "", "本人負担"},
		{"pending", "", "未定"},
		{"other", "社協", "その他（社協）"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CostBearerLabel(tt.code, tt.detail))
	}
}

func TestAdminOpinionLabel(t *testing.T) {
	assert.Equal(t, "転居が必要", AdminOpinionLabel("relocation_needed", ""))
	assert.Equal(t, "転居が望ましい", AdminOpinionLabel("relocation_preferred", ""))
	assert.Equal(t, "現状維持が妥当", AdminOpinionLabel("stay", ""))
	assert.Equal(t, "未確認", AdminOpinionLabel("undecided", ""))
}

func TestAgeBracketLabel(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{0, "0〜9歳"},
		{9, "0〜9歳"},
		{10, "10代"},
		{45, "40代"},
		{89, "80代"},
		{90, "90代以上"},
		{103, "90代以上"},
		{-1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeBracketLabel(tt.age))
	}
}

func TestRouteLabels(t *testing.T) {
	c := &domain.Consultation{
		RouteSelf:           true,
		RouteGovernment:     true,
		RouteGovernmentText: "市福祉課",
		RouteOther:          true,
	}
	assert.Equal(t, []string{"本人", "行政機関（市福祉課）", "その他"}, RouteLabels(c))
}

func TestRouteFlagValuesAlignment(t *testing.T) {
	c := &domain.Consultation{RouteCareManager: true}
	names := RouteNames()
	vals := RouteFlagValues(c)
	assert.Len(t, vals, len(names))
	for i, n := range names {
		assert.Equal(t, n == "ケアマネジャー", vals[i], n)
	}
}

func TestAttributeLabels(t *testing.T) {
	c := &domain.Consultation{AttrElderly: true, AttrLowIncome: true}
	assert.Equal(t, []string{"高齢", "低所得"}, AttributeLabels(c))

	vals := AttributeFlagValues(c)
	assert.Len(t, vals, len(AttributeNames()))
}

func TestHouseholdLabels(t *testing.T) {
	c := &domain.Consultation{
		HouseholdSingle:    true,
		HouseholdOther:     true,
		HouseholdOtherText: "ルームシェア",
	}
	assert.Equal(t, []string{"単身", "その他（ルームシェア）"}, HouseholdLabels(c))
}

func TestGenderBucket(t *testing.T) {
	assert.Equal(t, "男性", GenderBucket("male"))
	assert.Equal(t, "不明", GenderBucket(""))
	// 未知コードもGenderNamesにあるバケットへ落とす
	assert.Equal(t, "不明", GenderBucket("unknown-code"))
}
