// Package export generates the downloadable documents: flat DB-shape dumps
// and the two templated Excel reports.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"anshin-house-data/internal/domain"
)

// FlatHeaders returns the storage column names in struct order. The dump
// mirrors the schema exactly (no translation, no formatting) so it can be
// used as a backup and re-imported by database tooling.
func FlatHeaders() []string {
	t := reflect.TypeOf(domain.Consultation{})
	headers := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			headers = append(headers, tag)
		}
	}
	return headers
}

// flatRow renders one consultation as storage-shaped strings, aligned with
// FlatHeaders.
func flatRow(c *domain.Consultation) []string {
	v := reflect.ValueOf(*c)
	t := v.Type()
	row := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") == "" {
			continue
		}
		row = append(row, flatValue(v.Field(i)))
	}
	return row
}

func flatValue(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch val := v.Interface().(type) {
	case time.Time:
		return val.Format("2006-01-02")
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return fmt.Sprint(v.Interface())
}

const flatSheetName = "consultations"

// FlatXLSX dumps consultations as one sheet, header row first.
func FlatXLSX(cs []*domain.Consultation) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open; Close explicitly on every path.

	index, err := f.NewSheet(flatSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := FlatHeaders()
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(flatSheetName, cell, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
	}

	for rowIdx, c := range cs {
		for col, val := range flatRow(c) {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(flatSheetName, cell, val); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FlatCSV dumps consultations as CSV with the same columns as FlatXLSX.
func FlatCSV(cs []*domain.Consultation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(FlatHeaders()); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range cs {
		if err := w.Write(flatRow(c)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
