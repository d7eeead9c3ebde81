package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/service"
)

// StaffHandler 担当者管理 Handler
type StaffHandler struct {
	staff  service.StaffService
	logger *zap.Logger
}

func NewStaffHandler(staff service.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{staff: staff, logger: logger}
}

const staffPath = "/api/v1/staff"

func (h *StaffHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == staffPath && r.Method == http.MethodGet:
		h.List(w, r)
	case path == staffPath && r.Method == http.MethodPost:
		h.Create(w, r)
	case strings.HasPrefix(path, staffPath+"/") && r.Method == http.MethodGet:
		h.Get(w, r, resourceID(path, staffPath))
	case strings.HasPrefix(path, staffPath+"/") && r.Method == http.MethodPut:
		h.Update(w, r, resourceID(path, staffPath))
	case strings.HasPrefix(path, staffPath+"/") && r.Method == http.MethodDelete:
		h.Delete(w, r, resourceID(path, staffPath))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staff.ListStaff(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, "list staff", err)
		return
	}
	writeOK(w, staff)
}

func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	st, err := h.staff.GetStaff(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get staff", err)
		return
	}
	writeOK(w, st)
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var st domain.Staff
	if !decodeBody(w, r, &st) {
		return
	}
	id, err := h.staff.CreateStaff(r.Context(), &st)
	if err != nil {
		writeServiceError(w, h.logger, "create staff", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var st domain.Staff
	if !decodeBody(w, r, &st) {
		return
	}
	st.ID = id
	if err := h.staff.UpdateStaff(r.Context(), &st); err != nil {
		writeServiceError(w, h.logger, "update staff", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.staff.DeleteStaff(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete staff", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}
