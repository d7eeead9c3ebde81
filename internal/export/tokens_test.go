package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"anshin-house-data/internal/domain"
)

var today = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestRecordTokens(t *testing.T) {
	y, m, d := 1955, 3, 10
	rent := int64(45000)
	c := &domain.Consultation{
		Name:                  "山田太郎",
		Furigana:              "ヤマダタロウ",
		Gender:                "male",
		BirthYear:             &y,
		BirthMonth:            &m,
		BirthDay:              &d,
		RouteCareManager:      true,
		AttrElderly:           true,
		AttrLowIncome:         true,
		MobilityPartialAssist: true,
		RentArrearsYes:        true,
		Rent:                  &rent,
	}

	tokens := RecordTokens(c, "佐藤", today)

	assert.Equal(t, "山田太郎", tokens["name"])
	assert.Equal(t, "男性", tokens["gender"])
	assert.Equal(t, "1955年3月10日", tokens["birth_date"])
	assert.Equal(t, "71", tokens["age"])
	assert.Equal(t, "ケアマネジャー", tokens["routes"])
	assert.Equal(t, "高齢、低所得", tokens["attributes"])
	assert.Equal(t, "一部介助", tokens["mobility"])
	assert.Equal(t, "○", tokens["mobility_partial_assist"])
	assert.Equal(t, "", tokens["mobility_independent"])
	assert.Equal(t, "あり", tokens["rent_arrears"])
	assert.Equal(t, "○", tokens["rent_arrears_yes"])
	assert.Equal(t, "45000", tokens["rent"])
	assert.Equal(t, "佐藤", tokens["staff_name"])
	assert.Equal(t, "○", tokens["gender_male"])
	assert.Equal(t, "", tokens["gender_female"])
}

func TestSubstituteTokens(t *testing.T) {
	tokens := map[string]string{"name": "山田", "age": "71"}

	assert.Equal(t, "氏名: 山田（71歳）", substituteTokens("氏名: {{name}}（{{age}}歳）", tokens))
	// 未知トークンは空文字に置換（テンプレートの誤記をそのまま出さない）
	assert.Equal(t, "X: ", substituteTokens("X: {{typo}}", tokens))
	// プレースホルダなしはそのまま
	assert.Equal(t, "変更なし", substituteTokens("変更なし", tokens))
	// 閉じ忘れはそのまま返す
	assert.Equal(t, "{{broken", substituteTokens("{{broken", tokens))
}
