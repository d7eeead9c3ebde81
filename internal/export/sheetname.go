package export

import (
	"strconv"
	"strings"
)

// Excel limits sheet names to 31 characters and forbids a handful of
// punctuation characters.
const maxSheetNameLen = 31

var sheetNameSanitizer = strings.NewReplacer(
	":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "", "'", "",
)

// SanitizeSheetName strips forbidden characters and truncates to the Excel
// limit. An empty result falls back to a fixed placeholder so a record with
// no name still produces a valid sheet.
func SanitizeSheetName(name string) string {
	s := strings.TrimSpace(sheetNameSanitizer.Replace(name))
	if s == "" {
		s = "無題"
	}
	return truncateRunes(s, maxSheetNameLen)
}

// sheetNamer hands out unique sheet names: the second "Taro" becomes
// "Taro(2)", still within the 31-character limit.
type sheetNamer struct {
	used map[string]int
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: map[string]int{}}
}

func (n *sheetNamer) name(raw string) string {
	base := SanitizeSheetName(raw)
	n.used[base]++
	if n.used[base] == 1 {
		return base
	}
	suffix := "(" + strconv.Itoa(n.used[base]) + ")"
	trimmed := truncateRunes(base, maxSheetNameLen-len([]rune(suffix)))
	return trimmed + suffix
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
