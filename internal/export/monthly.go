package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"anshin-house-data/internal/config"
	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/labels"
)

// Engine renders the two templated reports. The template files are a
// contract: sheet names and the styled template row come from configuration
// and a mismatch aborts the export with the available sheet names in the
// message.
type Engine struct {
	cfg config.TemplateConfig
	now func() time.Time
}

func NewEngine(cfg config.TemplateConfig) *Engine {
	return &Engine{cfg: cfg, now: time.Now}
}

func sheetNotFound(f *excelize.File, sheet string) error {
	return fmt.Errorf("シート %q がテンプレートに見つかりません（存在するシート: %s）",
		sheet, strings.Join(f.GetSheetList(), ", "))
}

// MonthlyReport fills the monthly report template with one row per
// consultation. The first record overwrites the styled template row; every
// further record gets a fresh row carrying the template row's cell styles,
// so the document looks the same whether it has one row or fifty.
func (e *Engine) MonthlyReport(cs []*domain.Consultation, year, month int) ([]byte, error) {
	path := filepath.Join(e.cfg.Dir, e.cfg.MonthlyFile)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("月次報告テンプレートを開けません %s: %w", path, err)
	}
	defer f.Close()

	sheet := e.cfg.MonthlySheet
	// GetSheetIndexは不正なシート名でもエラーを返す。どちらの場合も
	// 存在するシート名の列挙で運用者に知らせる。
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, sheetNotFound(f, sheet)
	}

	if err := e.substituteHeader(f, sheet, year, month); err != nil {
		return nil, err
	}

	styleRow := e.cfg.MonthlyStyleRow
	styles, err := rowStyles(f, sheet, styleRow, monthlyColumns)
	if err != nil {
		return nil, err
	}

	today := e.now()
	for i, c := range cs {
		row := styleRow + i
		if i > 0 {
			// 2件目以降は行を挿入してから書く。テンプレート行の下に
			// フッターがあっても押し下げられるだけで壊れない。
			if err := f.InsertRows(sheet, row, 1); err != nil {
				return nil, fmt.Errorf("failed to insert row: %w", err)
			}
			for col := 1; col <= monthlyColumns; col++ {
				cell, err := excelize.CoordinatesToCellName(col, row)
				if err != nil {
					return nil, fmt.Errorf("failed to convert coordinates: %w", err)
				}
				if err := f.SetCellStyle(sheet, cell, cell, styles[col-1]); err != nil {
					return nil, fmt.Errorf("failed to copy row style: %w", err)
				}
			}
		}
		if err := e.writeMonthlyRow(f, sheet, row, c, today); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// monthlyColumns is the template row's width: 日付 / 氏名 / ステータス / 対応内容.
const monthlyColumns = 4

// substituteHeader replaces the {{year}}/{{month}} placeholders in the rows
// above the template row. The substitution happens exactly once.
func (e *Engine) substituteHeader(f *excelize.File, sheet string, year, month int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read template sheet: %w", err)
	}
	repl := strings.NewReplacer(
		"{{year}}", strconv.Itoa(year),
		"{{month}}", strconv.Itoa(month),
	)
	for r, row := range rows {
		if r+1 >= e.cfg.MonthlyStyleRow {
			break
		}
		for c, val := range row {
			if !strings.Contains(val, "{{") {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, repl.Replace(val)); err != nil {
				return fmt.Errorf("failed to substitute header cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func rowStyles(f *excelize.File, sheet string, row, cols int) ([]int, error) {
	styles := make([]int, cols)
	for col := 1; col <= cols; col++ {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		id, err := f.GetCellStyle(sheet, cell)
		if err != nil {
			return nil, fmt.Errorf("failed to read template row style: %w", err)
		}
		styles[col-1] = id
	}
	return styles, nil
}

func (e *Engine) writeMonthlyRow(f *excelize.File, sheet string, row int, c *domain.Consultation, today time.Time) error {
	values := []any{
		dateString(c.ConsultationDate),
		c.Name,
		c.Status,
		monthlyNote(c, today),
	}
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

// monthlyNote joins up to four text blocks, skipping empty ones so the cell
// never contains stray blank lines.
func monthlyNote(c *domain.Consultation, today time.Time) string {
	blocks := make([]string, 0, 4)

	identity := identityLine(c, today)
	if routes := strings.Join(labels.RouteLabels(c), "、"); routes != "" {
		blocks = append(blocks, routes+"より相談（"+identity+"）")
	} else if identity != "" {
		blocks = append(blocks, identity)
	}
	if c.ConsultationContent != "" {
		blocks = append(blocks, "相談内容："+c.ConsultationContent)
	}
	if c.ConsultationResult != "" {
		blocks = append(blocks, "対応結果："+c.ConsultationResult)
	}
	if c.Notes != "" {
		blocks = append(blocks, "備考："+c.Notes)
	}
	return strings.Join(blocks, "\n")
}

func identityLine(c *domain.Consultation, today time.Time) string {
	parts := make([]string, 0, 3)
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	if b := bracketAt(c, today); b != "" {
		parts = append(parts, b)
	}
	if g := labels.GenderLabel(c.Gender); g != "" {
		parts = append(parts, g)
	}
	return strings.Join(parts, "・")
}

func bracketAt(c *domain.Consultation, today time.Time) string {
	if age := ageString(c, today); age != "" {
		return age + "歳"
	}
	return c.AgeGroup
}
