package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"anshin-house-data/internal/domain"
)

// noDataSheetName replaces the template sheet when zero records matched, so
// the workbook is never delivered with an unpopulated template sheet.
const noDataSheetName = "データなし"

// RecordBook clones the record-sheet template once per consultation,
// renames each clone to the subject's (deduplicated) name and substitutes
// every {{token}} placeholder. staffNames maps staff IDs to display names
// for the {{staff_name}} token.
func (e *Engine) RecordBook(cs []*domain.Consultation, staffNames map[string]string, today time.Time) ([]byte, error) {
	path := filepath.Join(e.cfg.Dir, e.cfg.RecordFile)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("相談記録票テンプレートを開けません %s: %w", path, err)
	}
	defer f.Close()

	templateSheet := e.cfg.RecordSheet
	templateIndex, err := f.GetSheetIndex(templateSheet)
	if err != nil || templateIndex < 0 {
		return nil, sheetNotFound(f, templateSheet)
	}

	namer := newSheetNamer()
	for _, c := range cs {
		sheetName := namer.name(c.Name)
		index, err := f.NewSheet(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
		}
		if err := f.CopySheet(templateIndex, index); err != nil {
			return nil, fmt.Errorf("failed to clone template sheet: %w", err)
		}

		staffName := ""
		if c.StaffID != nil {
			staffName = staffNames[*c.StaffID]
		}
		if err := substituteSheet(f, sheetName, RecordTokens(c, staffName, today)); err != nil {
			return nil, err
		}
	}

	if len(cs) > 0 {
		f.DeleteSheet(templateSheet)
		f.SetActiveSheet(0)
	} else {
		if err := f.SetSheetName(templateSheet, noDataSheetName); err != nil {
			return nil, fmt.Errorf("failed to rename template sheet: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// substituteSheet rewrites every string cell containing a placeholder.
func substituteSheet(f *excelize.File, sheet string, tokens map[string]string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	for r, row := range rows {
		for c, val := range row {
			if !strings.Contains(val, "{{") {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, substituteTokens(val, tokens)); err != nil {
				return fmt.Errorf("failed to substitute cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
