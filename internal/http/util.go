package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"anshin-house-data/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeOK[T any](w http.ResponseWriter, result T) {
	writeJSON(w, http.StatusOK, Ok(result))
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Fail(message))
}

// writeServiceError maps the error taxonomy to a response: validation
// problems go back verbatim (400), missing records are a 404, and anything
// else is logged in full but surfaced as a generic localized message so
// internal detail never leaks.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case service.IsValidation(err):
		writeFail(w, http.StatusBadRequest, err.Error())
	case service.IsNotFound(err):
		writeFail(w, http.StatusNotFound, "対象のデータが見つかりません")
	default:
		logger.Error("request failed", zap.String("op", op), zap.Error(err))
		writeFail(w, http.StatusInternalServerError, "保存または取得に失敗しました")
	}
}

// decodeBody parses a JSON request body into dst; a malformed body is a
// client error, not a server one.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeFail(w, http.StatusBadRequest, "リクエストボディを解釈できません")
		return false
	}
	return true
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)
