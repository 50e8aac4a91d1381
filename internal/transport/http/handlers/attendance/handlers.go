package attendancehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/enums"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
	Gate    middleware.Gate
}

func NewHandler(service *attendance.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{attendanceID}", h.handleGet)
		r.Put("/{attendanceID}", h.handleUpdate)
	})
	r.Route("/me/attendance", func(r chi.Router) {
		r.Get("/", h.handleListOwn)
		r.Get("/today", h.handleToday)
		r.Post("/clock-in", h.handleClockIn)
		r.Post("/clock-out", h.handleClockOut)
	})
}

func filterFrom(r *http.Request) (attendance.Filter, error) {
	status, err := shared.QueryEnum[enums.AttendanceStatus](r, "status", enums.AttendanceStatuses())
	if err != nil {
		return attendance.Filter{}, err
	}
	from, err := shared.QueryDate(r, "from")
	if err != nil {
		return attendance.Filter{}, err
	}
	to, err := shared.QueryDate(r, "to")
	if err != nil {
		return attendance.Filter{}, err
	}
	page := shared.Page(r)
	return attendance.Filter{
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
	var payload attendance.Attendance
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	rec, err := h.Service.Create(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, rec, shared.RequestID(r))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "attendanceID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, rec, shared.RequestID(r))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[attendance.Attendance](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	rec, err := h.Service.Update(r.Context(), id.OrganizationID, chi.URLParam(r, "attendanceID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, rec, shared.RequestID(r))
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

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	status, err := h.Service.Today(r.Context(), id.OrganizationID, id.SubjectID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, status, shared.RequestID(r))
}

func (h *Handler) handleClockIn(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.ClockIn(r.Context(), id.OrganizationID, id.SubjectID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, rec, shared.RequestID(r))
}

func (h *Handler) handleClockOut(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.ClockOut(r.Context(), id.OrganizationID, id.SubjectID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, rec, shared.RequestID(r))
}
