package payrollhandler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/core"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Gate    middleware.Gate
}

func NewHandler(service *payroll.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	hr := middleware.RequireRole(h.Gate, enums.RoleHRAdmin)

	r.Route("/salaries", func(r chi.Router) {
		r.With(hr).Get("/", h.handleListSalaries)
		r.With(hr).Post("/", h.handleCreateSalary)
		r.With(hr).Get("/{salaryID}", h.handleGetSalary)
		r.With(hr).Put("/{salaryID}", h.handleUpdateSalary)
		r.Get("/{salaryID}/slip", h.handleSlip)
	})
	r.Route("/me/salaries", func(r chi.Router) {
		r.Get("/", h.handleListOwnSalaries)
		r.Get("/{salaryID}", h.handleGetOwnSalary)
	})
	r.Route("/balances", func(r chi.Router) {
		r.Use(hr)
		r.Get("/", h.handleListBalances)
		r.Post("/", h.handleCreateBalance)
		r.Get("/{balanceID}", h.handleGetBalance)
		r.Put("/{balanceID}", h.handleUpdateBalance)
	})
}

func salaryFilter(r *http.Request) (payroll.SalaryFilter, error) {
	status, err := shared.QueryEnum[enums.SalaryStatus](r, "status", enums.SalaryStatuses())
	if err != nil {
		return payroll.SalaryFilter{}, err
	}
	page := shared.Page(r)
	return payroll.SalaryFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     status,
		Limit:      page.Limit,
		Offset:     page.Offset,
	}, nil
}

func (h *Handler) handleListSalaries(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	filter, err := salaryFilter(r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	items, err := h.Service.ListSalaries(r.Context(), id.OrganizationID, filter)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreateSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload payroll.Salary
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.CreateSalary(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.GetSalary(r.Context(), id.OrganizationID, chi.URLParam(r, "salaryID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[payroll.Salary](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateSalary(r.Context(), id.OrganizationID, chi.URLParam(r, "salaryID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

// handleSlip serves the payslip PDF to HR and to the salary's employee.
func (h *Handler) handleSlip(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	salaryID := chi.URLParam(r, "salaryID")
	if err := h.authorizeSlip(r, id, salaryID); err != nil {
		api.FailErr(w, r, err)
		return
	}
	pdf, err := h.Service.SalarySlipPDF(r.Context(), id.OrganizationID, salaryID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=salary-slip-%s.pdf", salaryID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) authorizeSlip(r *http.Request, id auth.Identity, salaryID string) error {
	if id.Kind == core.KindEmployee {
		sal, err := h.Service.GetSalary(r.Context(), id.OrganizationID, salaryID)
		if err != nil {
			return err
		}
		if sal.EmployeeID == id.SubjectID {
			return nil
		}
	}
	return h.Gate.Authorize(r.Context(), id, enums.RoleHRAdmin)
}

func (h *Handler) handleListOwnSalaries(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	filter, err := salaryFilter(r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	filter.EmployeeID = id.SubjectID
	items, err := h.Service.ListSalaries(r.Context(), id.OrganizationID, filter)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleGetOwnSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Employee(w, r)
	if !ok {
		return
	}
	out, err := h.Service.GetSalary(r.Context(), id.OrganizationID, chi.URLParam(r, "salaryID"))
	if err == nil && out.EmployeeID != id.SubjectID {
		err = apperr.ErrNotFound
	}
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleListBalances(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	page := shared.Page(r)
	items, err := h.Service.ListBalances(r.Context(), id.OrganizationID, payroll.BalanceFilter{
		ExpenseMonth: r.URL.Query().Get("expenseMonth"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreateBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload payroll.Balance
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	creator, err := shared.ActingHR(id)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	payload.CreatedByID = creator
	out, err := h.Service.CreateBalance(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.GetBalance(r.Context(), id.OrganizationID, chi.URLParam(r, "balanceID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[payroll.Balance](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateBalance(r.Context(), id.OrganizationID, chi.URLParam(r, "balanceID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}
