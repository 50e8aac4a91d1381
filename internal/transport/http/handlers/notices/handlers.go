package noticeshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/notices"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *notices.Service
	Gate    middleware.Gate
}

func NewHandler(service *notices.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notices", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{noticeID}", h.handleGet)
		r.Put("/{noticeID}", h.handleUpdate)
		r.Delete("/{noticeID}", h.handleDelete)
	})
	r.Get("/me/notices", h.handleListOwn)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	audience, err := shared.QueryEnum[enums.AudienceType](r, "audience", enums.AudienceTypes())
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	page := shared.Page(r)
	items, err := h.Service.List(r.Context(), id.OrganizationID, notices.Filter{
		DepartmentID: r.URL.Query().Get("departmentId"),
		EmployeeID:   r.URL.Query().Get("employeeId"),
		Audience:     audience,
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
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
	author, err := shared.ActingHR(id)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	var payload notices.Notice
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Create(r.Context(), id.OrganizationID, author, payload)
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
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "noticeID"))
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
	mutate, err := shared.Patch[notices.Notice](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Update(r.Context(), id.OrganizationID, chi.URLParam(r, "noticeID"), mutate)
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
	if err := h.Service.Delete(r.Context(), id.OrganizationID, chi.URLParam(r, "noticeID")); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, shared.RequestID(r))
}

// handleListOwn returns notices addressed to the employee or their department.
func (h *Handler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	page := shared.Page(r)
	items, err := h.Service.ListForEmployee(r.Context(), id.OrganizationID, id.SubjectID, id.DepartmentID, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}
