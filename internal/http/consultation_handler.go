package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/service"
	"anshin-house-data/internal/store"
)

// ConsultationHandler 相談管理 Handler
type ConsultationHandler struct {
	consultations service.ConsultationService
	views         *store.ViewCache
	logger        *zap.Logger
}

func NewConsultationHandler(consultations service.ConsultationService, views *store.ViewCache, logger *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		consultations: consultations,
		views:         views,
		logger:        logger,
	}
}

const consultationsPath = "/api/v1/consultations"

// ServeHTTP 実装 http.Handler 接口
func (h *ConsultationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == consultationsPath && r.Method == http.MethodGet:
		h.List(w, r)
	case path == consultationsPath && r.Method == http.MethodPost:
		h.Create(w, r)
	// /api/v1/consultations/:id/events（より具体的なパスを先に判定する）
	case strings.HasSuffix(path, "/events") && r.Method == http.MethodGet:
		if id, ok := subResourceID(path, "/events"); ok {
			h.ListEvents(w, r, id)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	case strings.HasSuffix(path, "/events") && r.Method == http.MethodPost:
		if id, ok := subResourceID(path, "/events"); ok {
			h.CreateEvent(w, r, id)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	// /api/v1/consultations/:id/events/:eventID
	case strings.Contains(path, "/events/") && r.Method == http.MethodDelete:
		h.DeleteEvent(w, r, path)
	case strings.HasPrefix(path, consultationsPath+"/") && r.Method == http.MethodGet:
		h.Get(w, r, resourceID(path, consultationsPath))
	case strings.HasPrefix(path, consultationsPath+"/") && r.Method == http.MethodPut:
		h.Update(w, r, resourceID(path, consultationsPath))
	case strings.HasPrefix(path, consultationsPath+"/") && r.Method == http.MethodDelete:
		h.Delete(w, r, resourceID(path, consultationsPath))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func resourceID(path, base string) string {
	id := strings.TrimPrefix(path, base+"/")
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

func subResourceID(path, suffix string) (string, bool) {
	id := strings.TrimSuffix(path, suffix)
	id = strings.TrimPrefix(id, consultationsPath+"/")
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// List serves the consultation list. The unfiltered default view is served
// from the view cache when possible; filtered requests always recompute.
func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := service.ListConsultationsRequest{
		Status:        q.Get("status"),
		StaffID:       q.Get("staff_id"),
		Query:         q.Get("q"),
		Month:         q.Get("month"),
		HasNextAction: q.Get("has_next_action") == "true",
		SortKey:       q.Get("sort"),
		SortDir:       q.Get("dir"),
	}

	cacheable := req == (service.ListConsultationsRequest{})
	if cacheable {
		if cached, err := h.views.GetConsultationList(r.Context()); err == nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	resp, err := h.consultations.ListConsultations(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, "list consultations", err)
		return
	}

	if cacheable {
		if payload, err := json.Marshal(Ok(resp)); err == nil {
			h.views.SetConsultationList(r.Context(), string(payload))
		}
	}
	writeOK(w, resp)
}

func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	if cached, err := h.views.GetConsultationDetail(r.Context(), id); err == nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(cached))
		return
	}

	c, err := h.consultations.GetConsultation(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get consultation", err)
		return
	}

	if payload, err := json.Marshal(Ok(c)); err == nil {
		h.views.SetConsultationDetail(r.Context(), id, string(payload))
	}
	writeOK(w, c)
}

func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Consultation
	if !decodeBody(w, r, &c) {
		return
	}
	id, err := h.consultations.CreateConsultation(r.Context(), &c)
	if err != nil {
		writeServiceError(w, h.logger, "create consultation", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *ConsultationHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var c domain.Consultation
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = id
	if err := h.consultations.UpdateConsultation(r.Context(), &c); err != nil {
		writeServiceError(w, h.logger, "update consultation", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *ConsultationHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.consultations.DeleteConsultation(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete consultation", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *ConsultationHandler) ListEvents(w http.ResponseWriter, r *http.Request, consultationID string) {
	events, err := h.consultations.ListEvents(r.Context(), consultationID)
	if err != nil {
		writeServiceError(w, h.logger, "list events", err)
		return
	}
	writeOK(w, events)
}

func (h *ConsultationHandler) CreateEvent(w http.ResponseWriter, r *http.Request, consultationID string) {
	var e domain.ConsultationEvent
	if !decodeBody(w, r, &e) {
		return
	}
	e.ConsultationID = consultationID
	id, err := h.consultations.CreateEvent(r.Context(), &e)
	if err != nil {
		writeServiceError(w, h.logger, "create event", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *ConsultationHandler) DeleteEvent(w http.ResponseWriter, r *http.Request, path string) {
	rest := strings.TrimPrefix(path, consultationsPath+"/")
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[1] != "events" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := h.consultations.DeleteEvent(r.Context(), parts[0], parts[2]); err != nil {
		writeServiceError(w, h.logger, "delete event", err)
		return
	}
	writeOK(w, map[string]string{"id": parts[2]})
}
