package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler 支持 http.Handler 接口
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Consultations *ConsultationHandler
	Users         *UserHandler
	SupportPlans  *SupportPlanHandler
	Staff         *StaffHandler
	Analytics     *AnalyticsHandler
	Export        *ExportHandler
	Import        *ImportHandler
}

// RegisterRoutes 注册 /api/v1 路由
func (r *Router) RegisterRoutes(h *Handlers) {
	r.HandleHandler(consultationsPath, h.Consultations)
	r.HandleHandler(consultationsPath+"/", h.Consultations)

	r.HandleHandler(usersPath, h.Users)
	r.HandleHandler(usersPath+"/", h.Users)

	r.HandleHandler(supportPlansPath, h.SupportPlans)
	r.HandleHandler(supportPlansPath+"/", h.SupportPlans)

	r.HandleHandler(staffPath, h.Staff)
	r.HandleHandler(staffPath+"/", h.Staff)

	r.Handle("/api/v1/analytics", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Analytics.Dashboard(w, req)
	})

	r.Handle("/api/v1/export/records", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Export.Records(w, req)
	})
	r.Handle("/api/v1/export/monthly", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Export.Monthly(w, req)
	})
	r.Handle("/api/v1/export/dump", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Export.Dump(w, req)
	})

	r.Handle("/api/v1/import/users", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Import.Users(w, req)
	})

	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
