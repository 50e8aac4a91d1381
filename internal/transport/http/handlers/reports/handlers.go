package reportshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/reports"
	"hrms/internal/platform/metrics"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

// Dashboards is satisfied by *reports.Service.
type Dashboards interface {
	Dashboard(ctx context.Context, orgID string) (reports.Dashboard, error)
}

type Handler struct {
	Reports Dashboards
	Metrics *metrics.Collector
	Gate    middleware.Gate
}

func NewHandler(reports Dashboards, collector *metrics.Collector, gate middleware.Gate) *Handler {
	return &Handler{Reports: reports, Metrics: collector, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/metrics", h.handleMetrics)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Reports.Dashboard(r.Context(), id.OrganizationID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Metrics.Snapshot(), shared.RequestID(r))
}
