package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExportService struct{}

func (fakeExportService) ExportRecords(context.Context, []string) ([]byte, error) {
	return []byte("workbook"), nil
}

func (fakeExportService) MonthlyReport(context.Context, int, int) ([]byte, error) {
	return []byte("workbook"), nil
}

func (fakeExportService) FlatXLSX(context.Context) ([]byte, error) { return []byte("workbook"), nil }
func (fakeExportService) FlatCSV(context.Context) ([]byte, error)  { return []byte("a,b"), nil }

// Every download needs a file extension, the records endpoint included.
func TestExportAttachmentFilenames(t *testing.T) {
	h := NewExportHandler(fakeExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/records",
		strings.NewReader(`{"consultation_ids":["aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"]}`))
	rec := httptest.NewRecorder()
	h.Records(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cd := rec.Header().Get("Content-Disposition")
	assert.Contains(t, cd, "consultation_records")
	assert.Contains(t, cd, `.xlsx"`)

	rec = httptest.NewRecorder()
	h.Monthly(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export/monthly?year=2026&month=9", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "monthly_report_202609.xlsx")

	rec = httptest.NewRecorder()
	h.Dump(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export/dump?format=csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `.csv"`)
}
