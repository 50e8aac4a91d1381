package requestshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/requests"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *requests.Service
	Gate    middleware.Gate
}

func NewHandler(service *requests.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

type decisionRequest struct {
	Status enums.RequestStatus `json:"status"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/requests", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{requestID}", h.handleGet)
		r.Put("/{requestID}", h.handleUpdate)
		r.Post("/{requestID}/decision", h.handleDecide)
	})
	r.Route("/me/requests", func(r chi.Router) {
		r.Get("/", h.handleListOwn)
		r.Post("/", h.handleSubmit)
		r.Get("/{requestID}", h.handleGetOwn)
		r.Put("/{requestID}", h.handleUpdateOwn)
	})
}

func filterFrom(r *http.Request) (requests.Filter, error) {
	status, err := shared.QueryEnum[enums.RequestStatus](r, "status", enums.RequestStatuses())
	if err != nil {
		return requests.Filter{}, err
	}
	page := shared.Page(r)
	return requests.Filter{
		EmployeeID:   r.URL.Query().Get("employeeId"),
		DepartmentID: r.URL.Query().Get("departmentId"),
		Status:       status,
		Limit:        page.Limit,
		Offset:       page.Offset,
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
	var payload requests.Request
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
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "requestID"))
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
	mutate, err := shared.Patch[requests.Request](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Update(r.Context(), id.OrganizationID, chi.URLParam(r, "requestID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

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
	out, err := h.Service.Decide(r.Context(), id.OrganizationID, chi.URLParam(r, "requestID"), approver, payload.Status)
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

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	var payload requests.Request
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Submit(r.Context(), id.OrganizationID, id.SubjectID, id.DepartmentID, payload)
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
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "requestID"))
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
	mutate, err := shared.Patch[requests.Request](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateOwn(r.Context(), id.OrganizationID, id.SubjectID, chi.URLParam(r, "requestID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}
