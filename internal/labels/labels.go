// Package labels is the single source of truth for mapping stored enum codes
// and boolean flags to their Japanese display strings. Display components,
// the export engine and the importer must all go through this package so the
// tables cannot drift apart.
package labels

import (
	"fmt"

	"anshin-house-data/internal/domain"
)

// GenderLabel 性別コード → 表示名
func GenderLabel(code string) string {
	switch code {
	case "male":
		return "男性"
	case "female":
		return "女性"
	case "other":
		return "その他"
	case "":
		return ""
	}
	return code // 未知コードはそのまま表示（エラーにしない）
}

// AssistLabel ADL介助レベルコード → 表示名
// code は forms.AssistStatus の文字列値。'other' のときのみ detail を付記する。
func AssistLabel(code string, detail string) string {
	switch code {
	case "independent":
		return "自立"
	case "partial_assist":
		return "一部介助"
	case "full_assist":
		return "全介助"
	case "other":
		if detail != "" {
			return "その他（" + detail + "）"
		}
		return "その他"
	case "":
		return ""
	}
	return code
}

// YesNoLabel あり／なし 2値グループ → 表示名
func YesNoLabel(code string) string {
	switch code {
	case "yes":
		return "あり"
	case "no":
		return "なし"
	case "":
		return ""
	}
	return code
}

// CostBearerLabel 転居費用負担者コード → 表示名
func CostBearerLabel(code string, detail string) string {
	switch code {
	case "previous_city":
		return "転居前自治体"
	case "next_city":
		return "転居先自治体"
	case "self":
		return "本人負担"
	case "pending":
		return "未定"
	case "other":
		if detail != "" {
			return "その他（" + detail + "）"
		}
		return "その他"
	case "":
		return ""
	}
	return code
}

// AdminOpinionLabel 転居に関する行政意見コード → 表示名
func AdminOpinionLabel(code string, detail string) string {
	switch code {
	case "relocation_needed":
		return "転居が必要"
	case "relocation_preferred":
		return "転居が望ましい"
	case "stay":
		return "現状維持が妥当"
	case "undecided":
		return "未確認"
	case "other":
		if detail != "" {
			return "その他（" + detail + "）"
		}
		return "その他"
	case "":
		return ""
	}
	return code
}

// CareLevelLabel 要介護度コード → 表示名
func CareLevelLabel(code string) string {
	switch code {
	case "none":
		return "自立"
	case "support1":
		return "要支援1"
	case "support2":
		return "要支援2"
	case "care1":
		return "要介護1"
	case "care2":
		return "要介護2"
	case "care3":
		return "要介護3"
	case "care4":
		return "要介護4"
	case "care5":
		return "要介護5"
	case "":
		return ""
	}
	return code
}

// AgeBracketLabel 年齢 → 年代ラベル（0〜9歳, 10代, …, 90代以上）
func AgeBracketLabel(age int) string {
	switch {
	case age < 0:
		return ""
	case age < 10:
		return "0〜9歳"
	case age >= 90:
		return "90代以上"
	default:
		return fmt.Sprintf("%d代", age/10*10)
	}
}

// AgeBrackets 年代ラベル一覧（集計表示順）
var AgeBrackets = []string{
	"0〜9歳", "10代", "20代", "30代", "40代",
	"50代", "60代", "70代", "80代", "90代以上",
}

// routeFlag 相談経路フラグと表示名の対応
type routeFlag struct {
	Label string
	Set   func(*domain.Consultation) bool
	// Detail returns the free-text supplement, if the flag carries one.
	Detail func(*domain.Consultation) string
}

var routeFlags = []routeFlag{
	{Label: "本人", Set: func(c *domain.Consultation) bool { return c.RouteSelf }},
	{Label: "家族", Set: func(c *domain.Consultation) bool { return c.RouteFamily }},
	{Label: "ケアマネジャー", Set: func(c *domain.Consultation) bool { return c.RouteCareManager }},
	{Label: "地域包括支援センター", Set: func(c *domain.Consultation) bool { return c.RouteElderlyCenter }},
	{Label: "障害相談支援事業所", Set: func(c *domain.Consultation) bool { return c.RouteDisabilityCenter }},
	{
		Label:  "行政機関",
		Set:    func(c *domain.Consultation) bool { return c.RouteGovernment },
		Detail: func(c *domain.Consultation) string { return c.RouteGovernmentText },
	},
	{Label: "医療機関", Set: func(c *domain.Consultation) bool { return c.RouteHospital }},
	{Label: "不動産業者", Set: func(c *domain.Consultation) bool { return c.RouteRealEstate }},
	{Label: "生活保護担当", Set: func(c *domain.Consultation) bool { return c.RouteWelfareOffice }},
	{
		Label:  "その他",
		Set:    func(c *domain.Consultation) bool { return c.RouteOther },
		Detail: func(c *domain.Consultation) string { return c.RouteOtherText },
	},
}

// RouteLabels 相談経路の表示名リスト（設定されたフラグのみ、定義順）
func RouteLabels(c *domain.Consultation) []string {
	var out []string
	for _, f := range routeFlags {
		if !f.Set(c) {
			continue
		}
		label := f.Label
		if f.Detail != nil {
			if d := f.Detail(c); d != "" {
				label += "（" + d + "）"
			}
		}
		out = append(out, label)
	}
	return out
}

// RouteNames 相談経路カテゴリ名一覧（集計表示順）
func RouteNames() []string {
	names := make([]string, len(routeFlags))
	for i, f := range routeFlags {
		names[i] = f.Label
	}
	return names
}

// RouteFlagValues RouteNames と同じ順序のフラグ値（集計用）
func RouteFlagValues(c *domain.Consultation) []bool {
	vals := make([]bool, len(routeFlags))
	for i, f := range routeFlags {
		vals[i] = f.Set(c)
	}
	return vals
}

type attrFlag struct {
	Label string
	Set   func(*domain.Consultation) bool
}

var attrFlags = []attrFlag{
	{"高齢", func(c *domain.Consultation) bool { return c.AttrElderly }},
	{"障がい", func(c *domain.Consultation) bool { return c.AttrDisability }},
	{"障がい（身体）", func(c *domain.Consultation) bool { return c.AttrDisabilityPhysical }},
	{"障がい（知的）", func(c *domain.Consultation) bool { return c.AttrDisabilityIntellectual }},
	{"障がい（精神）", func(c *domain.Consultation) bool { return c.AttrDisabilityMental }},
	{"子育て", func(c *domain.Consultation) bool { return c.AttrChildcare }},
	{"ひとり親", func(c *domain.Consultation) bool { return c.AttrSingleParent }},
	{"DV", func(c *domain.Consultation) bool { return c.AttrDV }},
	{"外国人", func(c *domain.Consultation) bool { return c.AttrForeigner }},
	{"生活困窮", func(c *domain.Consultation) bool { return c.AttrPoverty }},
	{"低所得", func(c *domain.Consultation) bool { return c.AttrLowIncome }},
	{"LGBT", func(c *domain.Consultation) bool { return c.AttrLGBT }},
	{"生活保護受給", func(c *domain.Consultation) bool { return c.AttrWelfare }},
}

// AttributeLabels 属性の表示名リスト（設定されたフラグのみ、定義順）
func AttributeLabels(c *domain.Consultation) []string {
	var out []string
	for _, f := range attrFlags {
		if f.Set(c) {
			out = append(out, f.Label)
		}
	}
	return out
}

// AttributeNames 属性カテゴリ名一覧（集計表示順）
func AttributeNames() []string {
	names := make([]string, len(attrFlags))
	for i, f := range attrFlags {
		names[i] = f.Label
	}
	return names
}

// AttributeFlagValues AttributeNames と同じ順序のフラグ値（集計用）
func AttributeFlagValues(c *domain.Consultation) []bool {
	vals := make([]bool, len(attrFlags))
	for i, f := range attrFlags {
		vals[i] = f.Set(c)
	}
	return vals
}

type householdFlag struct {
	Label string
	Set   func(*domain.Consultation) bool
}

var householdFlags = []householdFlag{
	{"単身", func(c *domain.Consultation) bool { return c.HouseholdSingle }},
	{"夫婦", func(c *domain.Consultation) bool { return c.HouseholdCouple }},
	{"親子", func(c *domain.Consultation) bool { return c.HouseholdParentChild }},
	{"兄弟姉妹", func(c *domain.Consultation) bool { return c.HouseholdSiblings }},
	{"親族", func(c *domain.Consultation) bool { return c.HouseholdRelatives }},
	{"友人・知人", func(c *domain.Consultation) bool { return c.HouseholdFriends }},
	{"その他", func(c *domain.Consultation) bool { return c.HouseholdOther }},
}

// HouseholdLabels 世帯構成の表示名リスト
func HouseholdLabels(c *domain.Consultation) []string {
	var out []string
	for _, f := range householdFlags {
		if !f.Set(c) {
			continue
		}
		label := f.Label
		if label == "その他" && c.HouseholdOtherText != "" {
			label += "（" + c.HouseholdOtherText + "）"
		}
		out = append(out, label)
	}
	return out
}

// VehicleLabels 所有車両の表示名リスト
func VehicleLabels(c *domain.Consultation) []string {
	var out []string
	if c.VehicleCar {
		out = append(out, "自動車")
	}
	if c.VehicleMotorcycle {
		out = append(out, "バイク")
	}
	if c.VehicleBicycle {
		out = append(out, "自転車")
	}
	return out
}

// GenderNames 性別バケット一覧（集計表示順）。未設定は「不明」に集計する。
var GenderNames = []string{"男性", "女性", "その他", "不明"}

// GenderBucket 集計用の性別バケット名。GenderLabelと違い未知コードを
// そのまま返さない: GenderNames以外の名前は集計表から消えてしまうため、
// 未設定・未知コードはまとめて「不明」に落とす。
func GenderBucket(code string) string {
	switch code {
	case "male", "female", "other":
		return GenderLabel(code)
	}
	return "不明"
}
