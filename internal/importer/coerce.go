package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseYen parses a currency/count cell. Commas, yen signs and surrounding
// whitespace are tolerated. A negative value is kept but reported as a
// warning, not an error.
func parseYen(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	cleaned := strings.NewReplacer(",", "", "，", "", "円", "", "¥", "", " ", "", "　", "").Replace(s)
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("数値として読み取れません: %q", s)
	}
	return &v, nil
}

// parseBool accepts true/1 and the affirmative Japanese tokens used in the
// source spreadsheets. Everything else is false.
func parseBool(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "true", "1", "yes", "あり", "はい", "○", "〇":
		return true
	}
	return false
}

// dateLayouts are tried in order: ISO first, then the formats Excel and
// hand-edited CSVs commonly produce.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"2006年1月2日",
	"01-02-06", // excelize renders date cells in its default short format
}

// parseDate parses a date cell, nil when empty. An unparseable value is an
// error so a typo does not silently drop a contract date.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("日付として読み取れません: %q", s)
}

// genderSynonyms maps the spellings found in real files to the stored code.
var genderSynonyms = map[string]string{
	"male": "male", "m": "male", "男": "male", "男性": "male",
	"female": "female", "f": "female", "女": "female", "女性": "female",
	"other": "other", "その他": "other",
}

// parseGender best-effort maps a gender cell; unknown values downgrade to
// unset with ok=false so the caller can record a warning instead of failing
// the row.
func parseGender(s string) (code string, ok bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", true
	}
	if code, found := genderSynonyms[s]; found {
		return code, true
	}
	return "", false
}

// parseBirthDate splits a date cell into the year/month/day columns the
// storage schema uses.
func parseBirthDate(s string) (year, month, day *int, err error) {
	d, err := parseDate(s)
	if err != nil || d == nil {
		return nil, nil, nil, err
	}
	y, m, dd := d.Year(), int(d.Month()), d.Day()
	return &y, &m, &dd, nil
}
