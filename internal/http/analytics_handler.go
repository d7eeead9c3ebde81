package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"anshin-house-data/internal/service"
)

// AnalyticsHandler 集計ダッシュボード Handler
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	logger    *zap.Logger
}

func NewAnalyticsHandler(analytics service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, logger: logger}
}

// Dashboard GET /api/v1/analytics?window=this_month
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.Dashboard(r.Context(), r.URL.Query().Get("window"))
	if err != nil {
		writeServiceError(w, h.logger, "analytics dashboard", err)
		return
	}
	writeOK(w, summary)
}
