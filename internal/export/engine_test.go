package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"anshin-house-data/internal/config"
	"anshin-house-data/internal/domain"
)

func writeTemplate(t *testing.T, dir, file, sheet string, cells map[string]string) {
	t.Helper()
	f := excelize.NewFile()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")
	for cell, val := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, val))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, file)))
	require.NoError(t, f.Close())
}

func templateConfig(dir string) config.TemplateConfig {
	return config.TemplateConfig{
		Dir:             dir,
		MonthlyFile:     "monthly.xlsx",
		MonthlySheet:    "月次報告",
		MonthlyStyleRow: 4,
		RecordFile:      "record.xlsx",
		RecordSheet:     "相談記録票",
	}
}

func openOutput(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestMonthlyReport(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "monthly.xlsx", "月次報告", map[string]string{
		"A1": "{{year}}年{{month}}月 月次報告",
		"A5": "以上", // テンプレート行の直下のフッター
	})
	e := NewEngine(templateConfig(dir))
	e.now = func() time.Time { return today }

	y1950 := 1950
	d1 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cs := []*domain.Consultation{
		{
			ConsultationDate:    &d1,
			Name:                "山田太郎",
			BirthYear:           &y1950,
			Status:              domain.StatusInitialInterview,
			RouteSelf:           true,
			ConsultationContent: "立ち退きを求められている",
		},
		{
			ConsultationDate: &d2,
			Name:             "鈴木花子",
			Status:           domain.StatusPropertySearch,
		},
	}

	out, err := e.MonthlyReport(cs, 2026, 9)
	require.NoError(t, err)

	f := openOutput(t, out)
	header, err := f.GetCellValue("月次報告", "A1")
	require.NoError(t, err)
	assert.Equal(t, "2026年9月 月次報告", header)

	// 1件目はテンプレート行（4行目）を上書き、2件目は挿入された5行目
	v, _ := f.GetCellValue("月次報告", "B4")
	assert.Equal(t, "山田太郎", v)
	v, _ = f.GetCellValue("月次報告", "B5")
	assert.Equal(t, "鈴木花子", v)

	// フッターは上書きされず押し下げられる
	v, _ = f.GetCellValue("月次報告", "A6")
	assert.Equal(t, "以上", v)

	note, _ := f.GetCellValue("月次報告", "D4")
	assert.Contains(t, note, "本人より相談")
	assert.Contains(t, note, "76歳") // 固定クロック（2026-09-01）基準の年齢
	assert.Contains(t, note, "相談内容：立ち退きを求められている")
	// 空ブロックは改行ごと省かれる
	assert.NotContains(t, note, "\n\n")
}

func TestMonthlyReportMissingSheet(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "monthly.xlsx", "別のシート名", nil)
	e := NewEngine(templateConfig(dir))

	_, err := e.MonthlyReport(nil, 2026, 9)
	require.Error(t, err)
	// 存在するシート名を列挙して運用者の診断を助ける
	assert.Contains(t, err.Error(), "別のシート名")
}

// Excelとして不正なシート名が設定されていても、存在するシートの列挙で
// 運用者に知らせる（GetSheetIndexのエラーも欠落と同じ扱い）。
func TestMonthlyReportInvalidSheetName(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "monthly.xlsx", "月次報告", nil)
	cfg := templateConfig(dir)
	cfg.MonthlySheet = "月次:報告"
	e := NewEngine(cfg)

	_, err := e.MonthlyReport(nil, 2026, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "月次報告")
}

func TestMonthlyReportMissingFile(t *testing.T) {
	e := NewEngine(templateConfig(t.TempDir()))
	_, err := e.MonthlyReport(nil, 2026, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly.xlsx")
}

func TestRecordBook(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "record.xlsx", "相談記録票", map[string]string{
		"A1": "氏名: {{name}}",
		"B2": "移動: {{mobility}}",
		"C3": "担当: {{staff_name}}",
	})
	e := NewEngine(templateConfig(dir))

	staffID := "staff-1"
	cs := []*domain.Consultation{
		{Name: "山田太郎", MobilityIndependent: true, StaffID: &staffID},
		{Name: "山田太郎"}, // 同名 → シート名は (2) 付き
	}
	staffNames := map[string]string{"staff-1": "佐藤"}

	out, err := e.RecordBook(cs, staffNames, today)
	require.NoError(t, err)

	f := openOutput(t, out)
	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "山田太郎")
	assert.Contains(t, sheets, "山田太郎(2)")
	// テンプレートシートは出力に残さない
	assert.NotContains(t, sheets, "相談記録票")

	v, _ := f.GetCellValue("山田太郎", "A1")
	assert.Equal(t, "氏名: 山田太郎", v)
	v, _ = f.GetCellValue("山田太郎", "B2")
	assert.Equal(t, "移動: 自立", v)
	v, _ = f.GetCellValue("山田太郎", "C3")
	assert.Equal(t, "担当: 佐藤", v)

	v, _ = f.GetCellValue("山田太郎(2)", "B2")
	assert.Equal(t, "移動: ", v)
}

// Zero matching records renames the template sheet instead of shipping an
// unpopulated template or an empty workbook.
func TestRecordBookNoData(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "record.xlsx", "相談記録票", map[string]string{
		"A1": "氏名: {{name}}",
	})
	e := NewEngine(templateConfig(dir))

	out, err := e.RecordBook(nil, nil, today)
	require.NoError(t, err)

	f := openOutput(t, out)
	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "データなし")
	assert.NotContains(t, sheets, "相談記録票")
}

func TestFlatDumps(t *testing.T) {
	rent := int64(50000)
	cs := []*domain.Consultation{
		{ID: "id-1", Status: domain.StatusInitialInterview, Name: "山田太郎", Rent: &rent, RouteSelf: true},
	}

	csvData, err := FlatCSV(cs)
	require.NoError(t, err)
	text := string(csvData)
	assert.Contains(t, text, "id,status,staff_id")
	assert.Contains(t, text, "山田太郎")
	assert.Contains(t, text, "50000")

	xlsxData, err := FlatXLSX(cs)
	require.NoError(t, err)
	f := openOutput(t, xlsxData)
	v, _ := f.GetCellValue("consultations", "A1")
	assert.Equal(t, "id", v)
	v, _ = f.GetCellValue("consultations", "A2")
	assert.Equal(t, "id-1", v)
}
