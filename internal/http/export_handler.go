package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"anshin-house-data/internal/service"
)

// ExportHandler 帳票・ダンプ出力 Handler
// 成功時はバイナリ（Content-Disposition: attachment）、失敗時は JSON 封筒を
// 400/500 で返す。部分的なファイルは決して返さない。
type ExportHandler struct {
	export service.ExportService
	logger *zap.Logger
}

func NewExportHandler(export service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{export: export, logger: logger}
}

// exportRecordsRequest POST /api/v1/export/records のリクエストボディ
type exportRecordsRequest struct {
	ConsultationIDs []string `json:"consultation_ids"`
}

// Records POST /api/v1/export/records
func (h *ExportHandler) Records(w http.ResponseWriter, r *http.Request) {
	var req exportRecordsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	data, err := h.export.ExportRecords(r.Context(), req.ConsultationIDs)
	if err != nil {
		h.writeExportError(w, "export records", err)
		return
	}
	writeAttachment(w, exportFilename("consultation_records")+".xlsx", contentTypeXLSX, data)
}

// Monthly GET /api/v1/export/monthly?year=2026&month=9
func (h *ExportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))

	data, err := h.export.MonthlyReport(r.Context(), year, month)
	if err != nil {
		h.writeExportError(w, "export monthly report", err)
		return
	}
	writeAttachment(w, fmt.Sprintf("monthly_report_%04d%02d.xlsx", year, month), contentTypeXLSX, data)
}

// Dump GET /api/v1/export/dump?format=csv|xlsx
func (h *ExportHandler) Dump(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "csv" {
		data, err := h.export.FlatCSV(r.Context())
		if err != nil {
			h.writeExportError(w, "export csv dump", err)
			return
		}
		writeAttachment(w, exportFilename("consultations")+".csv", contentTypeCSV, data)
		return
	}

	data, err := h.export.FlatXLSX(r.Context())
	if err != nil {
		h.writeExportError(w, "export xlsx dump", err)
		return
	}
	writeAttachment(w, exportFilename("consultations")+".xlsx", contentTypeXLSX, data)
}

// writeExportError keeps template diagnostics (missing sheet, available
// sheet names) visible to the operator: they are a 500 with the real
// message, unlike the generic persistence failure text.
func (h *ExportHandler) writeExportError(w http.ResponseWriter, op string, err error) {
	if service.IsValidation(err) || service.IsNotFound(err) {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("export failed", zap.String("op", op), zap.Error(err))
	writeFail(w, http.StatusInternalServerError, err.Error())
}

func exportFilename(prefix string) string {
	return prefix + "_" + time.Now().Format("20060102_150405")
}
