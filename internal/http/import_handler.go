package httpapi

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"anshin-house-data/internal/service"
)

// ImportHandler 利用者一括取り込み Handler
type ImportHandler struct {
	imports service.ImportService
	logger  *zap.Logger
}

func NewImportHandler(imports service.ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{imports: imports, logger: logger}
}

// uploads larger than this are rejected before parsing
const maxImportSize = 20 << 20 // 20MB

// Users POST /api/v1/import/users (multipart/form-data, field "file")
func (h *ImportHandler) Users(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeFail(w, http.StatusBadRequest, "アップロードファイルを受け取れません")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeFail(w, http.StatusBadRequest, "ファイルが添付されていません（フィールド名 file）")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "ファイルの読み込みに失敗しました")
		return
	}

	res, err := h.imports.ImportUsers(r.Context(), header.Filename, data)
	if err != nil {
		// Batch-level rejection: header or validation problems, verbatim.
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeOK(w, res)
}
