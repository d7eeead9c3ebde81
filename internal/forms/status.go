// Package forms converts between the UI-facing status enums and the flat
// boolean-flag storage columns. The boolean encoding is a storage detail;
// everything above the repository layer works with the enums defined here.
package forms

import "anshin-house-data/internal/domain"

// AssistStatus ADL/IADL 介助レベル（排他）
type AssistStatus string

const (
	AssistUnset         AssistStatus = ""
	AssistIndependent   AssistStatus = "independent"
	AssistPartialAssist AssistStatus = "partial_assist"
	AssistFullAssist    AssistStatus = "full_assist"
	AssistOther         AssistStatus = "other"
)

// AssistStatuses 有効な介助レベル一覧（優先順）
var AssistStatuses = []AssistStatus{
	AssistIndependent,
	AssistPartialAssist,
	AssistFullAssist,
	AssistOther,
}

// AssistFromBooleans resolves a stored boolean group to its status.
// If no flag is set the result is AssistUnset. If more than one flag is set
// (a corrupted row; the exclusivity is only a UI convention) the first match
// in independent → partial → full → other order wins. The same priority is
// used on the write path so a read-modify-write cycle cannot oscillate.
func AssistFromBooleans(independent, partialAssist, fullAssist, other bool) AssistStatus {
	switch {
	case independent:
		return AssistIndependent
	case partialAssist:
		return AssistPartialAssist
	case fullAssist:
		return AssistFullAssist
	case other:
		return AssistOther
	}
	return AssistUnset
}

// Booleans returns the storage encoding: exactly one true flag, or none for
// AssistUnset.
func (s AssistStatus) Booleans() (independent, partialAssist, fullAssist, other bool) {
	switch s {
	case AssistIndependent:
		independent = true
	case AssistPartialAssist:
		partialAssist = true
	case AssistFullAssist:
		fullAssist = true
	case AssistOther:
		other = true
	}
	return
}

// Valid reports whether s is a known assist status (including unset).
func (s AssistStatus) Valid() bool {
	switch s {
	case AssistUnset, AssistIndependent, AssistPartialAssist, AssistFullAssist, AssistOther:
		return true
	}
	return false
}

// AssistGroup binds one ADL boolean group on a Consultation.
type AssistGroup struct {
	Independent   *bool
	PartialAssist *bool
	FullAssist    *bool
	Other         *bool
	OtherText     *string
}

// Status reads the group as a status enum.
func (g AssistGroup) Status() AssistStatus {
	return AssistFromBooleans(*g.Independent, *g.PartialAssist, *g.FullAssist, *g.Other)
}

// Set writes the group from a status enum. The detail text is stored only
// for AssistOther and cleared otherwise, so stale free text cannot survive a
// status change.
func (g AssistGroup) Set(s AssistStatus, detail string) {
	*g.Independent, *g.PartialAssist, *g.FullAssist, *g.Other = s.Booleans()
	if s == AssistOther {
		*g.OtherText = detail
	} else {
		*g.OtherText = ""
	}
}

// Detail returns the free text, which is meaningful only when the group
// reads as AssistOther.
func (g AssistGroup) Detail() string {
	if g.Status() == AssistOther {
		return *g.OtherText
	}
	return ""
}

// Mobility 移動
func Mobility(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.MobilityIndependent, &c.MobilityPartialAssist, &c.MobilityFullAssist, &c.MobilityOther, &c.MobilityOtherText}
}

// Eating 食事
func Eating(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.EatingIndependent, &c.EatingPartialAssist, &c.EatingFullAssist, &c.EatingOther, &c.EatingOtherText}
}

// Excretion 排泄
func Excretion(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.ExcretionIndependent, &c.ExcretionPartialAssist, &c.ExcretionFullAssist, &c.ExcretionOther, &c.ExcretionOtherText}
}

// Bathing 入浴
func Bathing(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.BathingIndependent, &c.BathingPartialAssist, &c.BathingFullAssist, &c.BathingOther, &c.BathingOtherText}
}

// Shopping 買い物
func Shopping(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.ShoppingIndependent, &c.ShoppingPartialAssist, &c.ShoppingFullAssist, &c.ShoppingOther, &c.ShoppingOtherText}
}

// Garbage ゴミ出し
func Garbage(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.GarbageIndependent, &c.GarbagePartialAssist, &c.GarbageFullAssist, &c.GarbageOther, &c.GarbageOtherText}
}

// Stairs 2階への移動
func Stairs(c *domain.Consultation) AssistGroup {
	return AssistGroup{&c.StairsIndependent, &c.StairsPartialAssist, &c.StairsFullAssist, &c.StairsOther, &c.StairsOtherText}
}

// NamedAssistGroup is used by callers that iterate every ADL group (export
// tokens, tests).
type NamedAssistGroup struct {
	Key   string // snake_case key used by export tokens
	Label string // 項目名
	Group AssistGroup
}

// AssistGroups returns every ADL group of c in a fixed order.
func AssistGroups(c *domain.Consultation) []NamedAssistGroup {
	return []NamedAssistGroup{
		{"mobility", "移動", Mobility(c)},
		{"eating", "食事", Eating(c)},
		{"excretion", "排泄", Excretion(c)},
		{"bathing", "入浴", Bathing(c)},
		{"shopping", "買い物", Shopping(c)},
		{"garbage", "ゴミ出し", Garbage(c)},
		{"stairs", "2階への移動", Stairs(c)},
	}
}

// YesNoStatus あり／なし 2値グループ（排他）
type YesNoStatus string

const (
	YesNoUnset YesNoStatus = ""
	Yes        YesNoStatus = "yes"
	No         YesNoStatus = "no"
)

// YesNoFromBooleans resolves a two-flag group; yes wins on corrupted rows,
// mirroring the write path.
func YesNoFromBooleans(yes, no bool) YesNoStatus {
	switch {
	case yes:
		return Yes
	case no:
		return No
	}
	return YesNoUnset
}

// Booleans returns the storage encoding of the two-flag group.
func (s YesNoStatus) Booleans() (yes, no bool) {
	switch s {
	case Yes:
		yes = true
	case No:
		no = true
	}
	return
}

// Valid reports whether s is a known yes/no status (including unset).
func (s YesNoStatus) Valid() bool {
	return s == YesNoUnset || s == Yes || s == No
}

// YesNoGroup binds one two-flag group.
type YesNoGroup struct {
	Yes *bool
	No  *bool
}

func (g YesNoGroup) Status() YesNoStatus { return YesNoFromBooleans(*g.Yes, *g.No) }

func (g YesNoGroup) Set(s YesNoStatus) { *g.Yes, *g.No = s.Booleans() }

// RentArrears 家賃滞納
func RentArrears(c *domain.Consultation) YesNoGroup {
	return YesNoGroup{&c.RentArrearsYes, &c.RentArrearsNo}
}

// Pet ペット飼育
func Pet(c *domain.Consultation) YesNoGroup {
	return YesNoGroup{&c.PetYes, &c.PetNo}
}

// Relocation 転居希望
func Relocation(c *domain.Consultation) YesNoGroup {
	return YesNoGroup{&c.RelocationYes, &c.RelocationNo}
}

// ProxyPayment 代理納付
func ProxyPayment(u *domain.EndUser) YesNoGroup {
	return YesNoGroup{&u.ProxyPaymentYes, &u.ProxyPaymentNo}
}

// CareLevel 要介護度（排他）
type CareLevel string

const (
	CareLevelUnset    CareLevel = ""
	CareLevelNone     CareLevel = "none"
	CareLevelSupport1 CareLevel = "support1"
	CareLevelSupport2 CareLevel = "support2"
	CareLevelCare1    CareLevel = "care1"
	CareLevelCare2    CareLevel = "care2"
	CareLevelCare3    CareLevel = "care3"
	CareLevelCare4    CareLevel = "care4"
	CareLevelCare5    CareLevel = "care5"
)

// CareLevelOf resolves the care-level boolean group of a support plan; the
// first set flag in 自立 → 要支援 → 要介護 order wins.
func CareLevelOf(p *domain.SupportPlan) CareLevel {
	switch {
	case p.CareLevelNone:
		return CareLevelNone
	case p.CareLevelSupport1:
		return CareLevelSupport1
	case p.CareLevelSupport2:
		return CareLevelSupport2
	case p.CareLevelCare1:
		return CareLevelCare1
	case p.CareLevelCare2:
		return CareLevelCare2
	case p.CareLevelCare3:
		return CareLevelCare3
	case p.CareLevelCare4:
		return CareLevelCare4
	case p.CareLevelCare5:
		return CareLevelCare5
	}
	return CareLevelUnset
}

// SetCareLevel writes the care-level boolean group of a support plan.
func SetCareLevel(p *domain.SupportPlan, level CareLevel) {
	p.CareLevelNone = level == CareLevelNone
	p.CareLevelSupport1 = level == CareLevelSupport1
	p.CareLevelSupport2 = level == CareLevelSupport2
	p.CareLevelCare1 = level == CareLevelCare1
	p.CareLevelCare2 = level == CareLevelCare2
	p.CareLevelCare3 = level == CareLevelCare3
	p.CareLevelCare4 = level == CareLevelCare4
	p.CareLevelCare5 = level == CareLevelCare5
}

// ValidCareLevel reports whether level is a known care level (including unset).
func ValidCareLevel(level CareLevel) bool {
	switch level {
	case CareLevelUnset, CareLevelNone, CareLevelSupport1, CareLevelSupport2,
		CareLevelCare1, CareLevelCare2, CareLevelCare3, CareLevelCare4, CareLevelCare5:
		return true
	}
	return false
}
