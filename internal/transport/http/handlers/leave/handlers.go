package leavehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/leave"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Gate    middleware.Gate
}

func NewHandler(service *leave.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

type decisionRequest struct {
	Status enums.LeaveStatus `json:"status"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{leaveID}", h.handleGet)
		r.Put("/{leaveID}", h.handleUpdate)
		r.Post("/{leaveID}/decision", h.handleDecide)
	})
	r.Route("/me/leaves", func(r chi.Router) {
		r.Get("/", h.handleListOwn)
		r.Post("/", h.handleApply)
		r.Get("/{leaveID}", h.handleGetOwn)
		r.Put("/{leaveID}", h.handleUpdateOwn)
	})
}

func filterFrom(r *http.Request) (leave.Filter, error) {
	status, err := shared.QueryEnum[enums.LeaveStatus](r, "status", enums.LeaveStatuses())
	if err != nil {
		return leave.Filter{}, err
	}
	from, err := shared.QueryDate(r, "from")
	if err != nil {
		return leave.Filter{}, err
	}
	to, err := shared.QueryDate(r, "to")
	if err != nil {
		return leave.Filter{}, err
	}
	page := shared.Page(r)
	return leave.Filter{
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
	var payload leave.Leave
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Create(r.Context(), id.OrganizationID, payload)
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
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "leaveID"))
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
	mutate, err := shared.Patch[leave.Leave](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Update(r.Context(), id.OrganizationID, chi.URLParam(r, "leaveID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

// handleDecide stamps the calling HR account as approver.
func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	approver, err := shared.ActingHR(id)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	var payload decisionRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Decide(r.Context(), id.OrganizationID, chi.URLParam(r, "leaveID"), approver, payload.Status)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
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

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	var payload leave.Leave
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Apply(r.Context(), id.OrganizationID, id.SubjectID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetOwn(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "leaveID"))
	if err == nil && out.EmployeeID != id.SubjectID {
		err = apperr.ErrNotFound
	}
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateOwn(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[leave.Leave](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateOwn(r.Context(), id.OrganizationID, id.SubjectID, chi.URLParam(r, "leaveID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}
