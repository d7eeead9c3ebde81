package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/service"
)

// SupportPlanHandler 支援計画 Handler
type SupportPlanHandler struct {
	plans  service.SupportPlanService
	logger *zap.Logger
}

func NewSupportPlanHandler(plans service.SupportPlanService, logger *zap.Logger) *SupportPlanHandler {
	return &SupportPlanHandler{plans: plans, logger: logger}
}

const supportPlansPath = "/api/v1/support-plans"

func (h *SupportPlanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == supportPlansPath && r.Method == http.MethodPost:
		h.Create(w, r)
	case strings.HasPrefix(path, supportPlansPath+"/") && r.Method == http.MethodGet:
		h.Get(w, r, resourceID(path, supportPlansPath))
	case strings.HasPrefix(path, supportPlansPath+"/") && r.Method == http.MethodPut:
		h.Update(w, r, resourceID(path, supportPlansPath))
	case strings.HasPrefix(path, supportPlansPath+"/") && r.Method == http.MethodDelete:
		h.Delete(w, r, resourceID(path, supportPlansPath))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *SupportPlanHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.plans.GetSupportPlan(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get support plan", err)
		return
	}
	writeOK(w, p)
}

func (h *SupportPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.SupportPlan
	if !decodeBody(w, r, &p) {
		return
	}
	id, err := h.plans.CreateSupportPlan(r.Context(), &p)
	if err != nil {
		writeServiceError(w, h.logger, "create support plan", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *SupportPlanHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var p domain.SupportPlan
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = id
	if err := h.plans.UpdateSupportPlan(r.Context(), &p); err != nil {
		writeServiceError(w, h.logger, "update support plan", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *SupportPlanHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.plans.DeleteSupportPlan(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete support plan", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}
