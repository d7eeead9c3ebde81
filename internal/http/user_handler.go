package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/service"
)

// UserHandler 利用者管理 Handler
type UserHandler struct {
	users  service.UserService
	plans  service.SupportPlanService
	logger *zap.Logger
}

func NewUserHandler(users service.UserService, plans service.SupportPlanService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, plans: plans, logger: logger}
}

const usersPath = "/api/v1/users"

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == usersPath && r.Method == http.MethodGet:
		h.List(w, r)
	case path == usersPath && r.Method == http.MethodPost:
		h.Create(w, r)
	case path == usersPath+"/promote" && r.Method == http.MethodPost:
		h.Promote(w, r)
	// /api/v1/users/:id/support-plans
	case strings.HasSuffix(path, "/support-plans") && r.Method == http.MethodGet:
		id := strings.TrimSuffix(path, "/support-plans")
		id = strings.TrimPrefix(id, usersPath+"/")
		if id != "" && !strings.Contains(id, "/") {
			h.ListSupportPlans(w, r, id)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	case strings.HasPrefix(path, usersPath+"/") && r.Method == http.MethodGet:
		h.Get(w, r, resourceID(path, usersPath))
	case strings.HasPrefix(path, usersPath+"/") && r.Method == http.MethodPut:
		h.Update(w, r, resourceID(path, usersPath))
	case strings.HasPrefix(path, usersPath+"/") && r.Method == http.MethodDelete:
		h.Delete(w, r, resourceID(path, usersPath))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, "list users", err)
		return
	}
	writeOK(w, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "get user", err)
		return
	}
	writeOK(w, u)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var u domain.EndUser
	if !decodeBody(w, r, &u) {
		return
	}
	id, err := h.users.CreateUser(r.Context(), &u)
	if err != nil {
		writeServiceError(w, h.logger, "create user", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var u domain.EndUser
	if !decodeBody(w, r, &u) {
		return
	}
	u.ID = id
	if err := h.users.UpdateUser(r.Context(), &u); err != nil {
		writeServiceError(w, h.logger, "update user", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, "delete user", err)
		return
	}
	writeOK(w, map[string]string{"id": id})
}

// Promote 相談 → 利用者の正式登録
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	var req service.PromoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.users.PromoteConsultation(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, "promote consultation", err)
		return
	}
	writeOK(w, u)
}

func (h *UserHandler) ListSupportPlans(w http.ResponseWriter, r *http.Request, userID string) {
	plans, err := h.plans.ListSupportPlansByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, "list support plans", err)
		return
	}
	writeOK(w, plans)
}
