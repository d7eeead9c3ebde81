package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
)

func csvFile(rows ...string) []byte {
	return []byte(strings.Join(rows, "\n"))
}

var csvHeader = strings.Join(RequiredHeaders, ",")

// dataRow builds a minimal row: UID, name, and empty cells for the rest.
func dataRow(uid, name string) string {
	cells := make([]string, len(RequiredHeaders))
	cells[0] = uid
	cells[1] = name
	return strings.Join(cells, ",")
}

func newImporter(t *testing.T) (*Importer, *repository.MemoryUsersRepo) {
	t.Helper()
	users := repository.NewMemoryUsersRepo()
	return New(users, zap.NewNop()), users
}

func TestImportMissingHeadersRejectedWholesale(t *testing.T) {
	im, _ := newImporter(t)

	// 利用者ID と 家賃 を欠いたヘッダー
	var kept []string
	for _, h := range RequiredHeaders {
		if h != "利用者ID" && h != "家賃" {
			kept = append(kept, h)
		}
	}
	data := csvFile(strings.Join(kept, ","), strings.Repeat(",", len(kept)-1))

	_, err := im.Import(context.Background(), "users.csv", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "利用者ID")
	assert.Contains(t, err.Error(), "家賃")
}

func TestImportMalformedUIDRejectedWithRowNumber(t *testing.T) {
	im, _ := newImporter(t)
	data := csvFile(csvHeader, dataRow("12345678", "山田太郎"))

	_, err := im.Import(context.Background(), "users.csv", data)
	require.Error(t, err)
	// ヘッダー行込みの1始まり: 最初のデータ行は「行2」
	assert.Contains(t, err.Error(), "行2")
	assert.Contains(t, err.Error(), "12345678")
}

func TestImportDuplicateUIDsInBatchBothFail(t *testing.T) {
	im, users := newImporter(t)
	data := csvFile(csvHeader,
		dataRow("2026-0001", "山田太郎"),
		dataRow("2026-0001", "鈴木花子"),
	)

	_, err := im.Import(context.Background(), "users.csv", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "行2")
	assert.Contains(t, err.Error(), "行3")
	assert.Contains(t, err.Error(), "重複")

	// バッチ検証で弾かれた場合は何も書き込まれない
	stored, _ := users.ListUsers(context.Background())
	assert.Empty(t, stored)
}

func TestImportStoredDuplicateDoesNotBlockSiblings(t *testing.T) {
	im, users := newImporter(t)
	_, err := users.CreateUser(context.Background(), &domain.EndUser{UID: "2026-0001", Name: "既存"})
	require.NoError(t, err)

	data := csvFile(csvHeader,
		dataRow("2026-0001", "山田太郎"), // 既存と衝突
		dataRow("2026-0002", "鈴木花子"),
	)

	res, err := im.Import(context.Background(), "users.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0], "既に登録されています")
	assert.Contains(t, res.Messages[0], "行2")

	stored, _ := users.ListUsers(context.Background())
	assert.Len(t, stored, 2)
}

func TestImportCoercion(t *testing.T) {
	im, users := newImporter(t)

	cells := make([]string, len(RequiredHeaders))
	for i, h := range RequiredHeaders {
		switch h {
		case "利用者ID":
			cells[i] = "2026-0003"
		case "氏名":
			cells[i] = "山田太郎"
		case "性別":
			cells[i] = "男" // 同義語マッピング
		case "生年月日":
			cells[i] = "1955/03/10"
		case "家賃":
			cells[i] = "45000"
		case "契約日":
			cells[i] = "2026-04-01"
		case "代理納付":
			cells[i] = "あり"
		}
	}
	data := csvFile(csvHeader, strings.Join(cells, ","))

	res, err := im.Import(context.Background(), "users.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)

	stored, _ := users.ListUsers(context.Background())
	require.Len(t, stored, 1)
	u := stored[0]
	assert.Equal(t, "male", u.Gender)
	require.NotNil(t, u.BirthYear)
	assert.Equal(t, 1955, *u.BirthYear)
	require.NotNil(t, u.Rent)
	assert.Equal(t, int64(45000), *u.Rent)
	require.NotNil(t, u.ContractDate)
	assert.True(t, u.ProxyPaymentYes)
}

func TestImportUnknownGenderDowngradesWithWarning(t *testing.T) {
	im, users := newImporter(t)

	cells := make([]string, len(RequiredHeaders))
	cells[0] = "2026-0004"
	cells[1] = "山田太郎"
	for i, h := range RequiredHeaders {
		if h == "性別" {
			cells[i] = "不詳"
		}
	}
	data := csvFile(csvHeader, strings.Join(cells, ","))

	res, err := im.Import(context.Background(), "users.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "性別")

	stored, _ := users.ListUsers(context.Background())
	assert.Equal(t, "", stored[0].Gender)
}

func TestImportFailureSampleCap(t *testing.T) {
	im, users := newImporter(t)
	for i := 1; i <= 8; i++ {
		_, err := users.CreateUser(context.Background(), &domain.EndUser{
			UID:  fmt.Sprintf("2026-%04d", i),
			Name: "既存",
		})
		require.NoError(t, err)
	}

	rows := []string{csvHeader}
	for i := 1; i <= 8; i++ {
		rows = append(rows, dataRow(fmt.Sprintf("2026-%04d", i), "重複"))
	}
	res, err := im.Import(context.Background(), "users.csv", csvFile(rows...))
	require.NoError(t, err)
	assert.Equal(t, 8, res.FailureCount)
	// サンプル5件 + 「ほか3件」
	require.Len(t, res.Messages, 6)
	assert.Contains(t, res.Messages[5], "ほか3件")
}

func TestImportUnsupportedExtension(t *testing.T) {
	im, _ := newImporter(t)
	_, err := im.Import(context.Background(), "users.pdf", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "対応していないファイル形式")
}

func TestImportSkipsEmptyRows(t *testing.T) {
	im, _ := newImporter(t)
	data := csvFile(csvHeader,
		strings.Repeat(",", len(RequiredHeaders)-1),
		dataRow("2026-0005", "山田太郎"),
	)
	res, err := im.Import(context.Background(), "users.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 0, res.FailureCount)
}
