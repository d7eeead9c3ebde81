package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "山田太郎", SanitizeSheetName("山田太郎"))
	assert.Equal(t, "AB", SanitizeSheetName("A[]:*?/\\'B"))
	assert.Equal(t, "無題", SanitizeSheetName("   "))

	long := strings.Repeat("あ", 40)
	got := SanitizeSheetName(long)
	assert.Len(t, []rune(got), 31)
}

// The second identical name gets a (2) suffix and still fits the limit.
func TestSheetNamerDedup(t *testing.T) {
	n := newSheetNamer()
	assert.Equal(t, "Taro", n.name("Taro"))
	assert.Equal(t, "Taro(2)", n.name("Taro"))
	assert.Equal(t, "Taro(3)", n.name("Taro"))
	assert.Equal(t, "Hanako", n.name("Hanako"))
}

func TestSheetNamerDedupLongNames(t *testing.T) {
	n := newSheetNamer()
	long := strings.Repeat("あ", 40)

	first := n.name(long)
	second := n.name(long)
	assert.Len(t, []rune(first), 31)
	assert.True(t, strings.HasSuffix(second, "(2)"))
	assert.LessOrEqual(t, len([]rune(second)), 31)
	assert.NotEqual(t, first, second)
}
