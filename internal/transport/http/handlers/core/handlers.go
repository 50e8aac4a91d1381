package corehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/organization"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Core          *core.Service
	Organizations *organization.Service
	Gate          middleware.Gate
}

func NewHandler(coreSvc *core.Service, orgs *organization.Service, gate middleware.Gate) *Handler {
	return &Handler{Core: coreSvc, Organizations: orgs, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	hr := middleware.RequireRole(h.Gate, enums.RoleHRAdmin)

	r.Get("/organization", h.handleGetOrganization)
	r.With(hr).Put("/organization", h.handleUpdateOrganization)

	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Get("/{departmentID}", h.handleGetDepartment)
		r.With(hr).Post("/", h.handleCreateDepartment)
		r.With(hr).Put("/{departmentID}", h.handleUpdateDepartment)
		r.With(hr).Delete("/{departmentID}", h.handleDeleteDepartment)
	})

	r.Route("/employees", func(r chi.Router) {
		r.With(hr).Get("/", h.handleListEmployees)
		r.With(hr).Post("/", h.handleCreateEmployee)
		r.Get("/{employeeID}", h.handleGetEmployee)
		r.With(hr).Put("/{employeeID}", h.handleUpdateEmployee)
	})

	r.Route("/hr", func(r chi.Router) {
		r.Use(hr)
		r.Get("/", h.handleListHR)
		r.Post("/", h.handleCreateHR)
		r.Get("/{hrID}", h.handleGetHR)
		r.Put("/{hrID}", h.handleUpdateHR)
	})
}

func (h *Handler) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	org, err := h.Organizations.Get(r.Context(), id.OrganizationID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, org, shared.RequestID(r))
}

func (h *Handler) handleUpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[organization.Organization](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	org, err := h.Organizations.Update(r.Context(), id.OrganizationID, mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, org, shared.RequestID(r))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	page := shared.Page(r)
	items, err := h.Core.ListDepartments(r.Context(), id.OrganizationID, core.Filter{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	dep, err := h.Core.GetDepartment(r.Context(), id.OrganizationID, chi.URLParam(r, "departmentID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, dep, shared.RequestID(r))
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload core.Department
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	dep, err := h.Core.CreateDepartment(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, dep, shared.RequestID(r))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[core.Department](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	dep, err := h.Core.UpdateDepartment(r.Context(), id.OrganizationID, chi.URLParam(r, "departmentID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, dep, shared.RequestID(r))
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	if err := h.Core.DeleteDepartment(r.Context(), id.OrganizationID, chi.URLParam(r, "departmentID")); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, shared.RequestID(r))
}

func accountFilter(r *http.Request) (core.Filter, error) {
	role, err := shared.QueryEnum[enums.Role](r, "role", enums.Roles())
	if err != nil {
		return core.Filter{}, err
	}
	page := shared.Page(r)
	return core.Filter{
		DepartmentID: r.URL.Query().Get("departmentId"),
		Role:         role,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}, nil
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	filter, err := accountFilter(r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	items, err := h.Core.ListEmployees(r.Context(), id.OrganizationID, filter)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload core.Employee
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	emp, err := h.Core.CreateEmployee(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, emp, shared.RequestID(r))
}

// handleGetEmployee serves HR and the employee reading their own record.
func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	employeeID := chi.URLParam(r, "employeeID")
	if !isSelf(id, core.KindEmployee, employeeID) {
		if err := h.Gate.Authorize(r.Context(), id, enums.RoleHRAdmin); err != nil {
			api.FailErr(w, r, err)
			return
		}
	}
	emp, err := h.Core.GetEmployee(r.Context(), id.OrganizationID, employeeID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, emp, shared.RequestID(r))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[core.Employee](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	emp, err := h.Core.UpdateEmployee(r.Context(), id.OrganizationID, chi.URLParam(r, "employeeID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, emp, shared.RequestID(r))
}

func (h *Handler) handleListHR(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	filter, err := accountFilter(r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	items, err := h.Core.ListHR(r.Context(), id.OrganizationID, filter)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreateHR(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload core.HumanResources
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Core.CreateHR(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetHR(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Core.GetHR(r.Context(), id.OrganizationID, chi.URLParam(r, "hrID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateHR(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[core.HumanResources](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Core.UpdateHR(r.Context(), id.OrganizationID, chi.URLParam(r, "hrID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func isSelf(id auth.Identity, kind core.AccountKind, subjectID string) bool {
	return id.Kind == kind && id.SubjectID == subjectID
}
