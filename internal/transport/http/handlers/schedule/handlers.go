package schedulehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/schedule"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *schedule.Service
	Gate    middleware.Gate
}

func NewHandler(service *schedule.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/schedules", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{scheduleID}", h.handleGet)
		r.Put("/{scheduleID}", h.handleUpdate)
		r.Delete("/{scheduleID}", h.handleDelete)
	})
	r.Route("/me/schedules", func(r chi.Router) {
		r.Get("/", h.handleListOwn)
		r.Get("/{scheduleID}", h.handleGetOwn)
	})
}

func filterFrom(r *http.Request) (schedule.Filter, error) {
	status, err := shared.QueryEnum[enums.ScheduleStatus](r, "status", enums.ScheduleStatuses())
	if err != nil {
		return schedule.Filter{}, err
	}
	from, err := shared.QueryDate(r, "from")
	if err != nil {
		return schedule.Filter{}, err
	}
	to, err := shared.QueryDate(r, "to")
	if err != nil {
		return schedule.Filter{}, err
	}
	page := shared.Page(r)
	return schedule.Filter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     status,
		From:       from,
		To:         to,
		Limit:      page.Limit,
		Offset:     page.Offset,
	}, nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	filter, err := filterFrom(r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	items, err := h.Service.List(r.Context(), id.OrganizationID, filter)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	creator, err := shared.ActingHR(id)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	var payload schedule.Shift
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Create(r.Context(), id.OrganizationID, creator, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "scheduleID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[schedule.Shift](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Update(r.Context(), id.OrganizationID, chi.URLParam(r, "scheduleID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id.OrganizationID, chi.URLParam(r, "scheduleID")); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, shared.RequestID(r))
}

func (h *Handler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	filter, err := filterFrom(r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	filter.EmployeeID = id.SubjectID
	items, err := h.Service.List(r.Context(), id.OrganizationID, filter)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleGetOwn(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "scheduleID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	if out.EmployeeID != id.SubjectID {
		api.FailErr(w, r, apperr.ErrNotFound)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}
