package recruitmenthandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/recruitment"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *recruitment.Service
	Gate    middleware.Gate
}

func NewHandler(service *recruitment.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))

		r.Route("/recruitments", func(r chi.Router) {
			r.Get("/", h.handleListRecruitments)
			r.Post("/", h.handleCreateRecruitment)
			r.Get("/{recruitmentID}", h.handleGetRecruitment)
			r.Put("/{recruitmentID}", h.handleUpdateRecruitment)
			r.Delete("/{recruitmentID}", h.handleDeleteRecruitment)
			r.Get("/{recruitmentID}/applicants", h.handleApplicantsFor)
			r.Put("/{recruitmentID}/applicants/{applicantID}", h.handleLink)
			r.Delete("/{recruitmentID}/applicants/{applicantID}", h.handleUnlink)
		})

		r.Route("/applicants", func(r chi.Router) {
			r.Get("/", h.handleListApplicants)
			r.Post("/", h.handleCreateApplicant)
			r.Get("/{applicantID}", h.handleGetApplicant)
			r.Put("/{applicantID}", h.handleUpdateApplicant)
			r.Get("/{applicantID}/recruitments", h.handleRecruitmentsFor)
		})

		r.Route("/interviews", func(r chi.Router) {
			r.Get("/", h.handleListInterviews)
			r.Post("/", h.handleCreateInterview)
			r.Get("/{interviewID}", h.handleGetInterview)
			r.Put("/{interviewID}", h.handleUpdateInterview)
		})
	})
}

func (h *Handler) handleListRecruitments(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	page := shared.Page(r)
	items, err := h.Service.ListRecruitments(r.Context(), id.OrganizationID, recruitment.Filter{
		DepartmentID: r.URL.Query().Get("departmentId"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreateRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload recruitment.Recruitment
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.CreateRecruitment(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.GetRecruitment(r.Context(), id.OrganizationID, chi.URLParam(r, "recruitmentID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[recruitment.Recruitment](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateRecruitment(r.Context(), id.OrganizationID, chi.URLParam(r, "recruitmentID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleDeleteRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteRecruitment(r.Context(), id.OrganizationID, chi.URLParam(r, "recruitmentID")); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, shared.RequestID(r))
}

func (h *Handler) handleApplicantsFor(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	page := shared.Page(r)
	items, err := h.Service.ApplicantsFor(r.Context(), id.OrganizationID, chi.URLParam(r, "recruitmentID"), page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleLink(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	err := h.Service.LinkApplicant(r.Context(), id.OrganizationID, chi.URLParam(r, "recruitmentID"), chi.URLParam(r, "applicantID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "linked"}, shared.RequestID(r))
}

func (h *Handler) handleUnlink(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	err := h.Service.UnlinkApplicant(r.Context(), id.OrganizationID, chi.URLParam(r, "recruitmentID"), chi.URLParam(r, "applicantID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "unlinked"}, shared.RequestID(r))
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	status, err := shared.QueryEnum[enums.RecruitmentStatus](r, "status", enums.RecruitmentStatuses())
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	page := shared.Page(r)
	items, err := h.Service.ListApplicants(r.Context(), id.OrganizationID, recruitment.Filter{
		RecruitmentStatus: status,
		Limit:             page.Limit,
		Offset:            page.Offset,
	})
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload recruitment.Applicant
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.CreateApplicant(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.GetApplicant(r.Context(), id.OrganizationID, chi.URLParam(r, "applicantID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[recruitment.Applicant](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateApplicant(r.Context(), id.OrganizationID, chi.URLParam(r, "applicantID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleRecruitmentsFor(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	page := shared.Page(r)
	items, err := h.Service.RecruitmentsFor(r.Context(), id.OrganizationID, chi.URLParam(r, "applicantID"), page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	status, err := shared.QueryEnum[enums.InterviewStatus](r, "status", enums.InterviewStatuses())
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	page := shared.Page(r)
	items, err := h.Service.ListInterviews(r.Context(), id.OrganizationID, recruitment.Filter{
		ApplicantID:     r.URL.Query().Get("applicantId"),
		InterviewerID:   r.URL.Query().Get("interviewerId"),
		InterviewStatus: status,
		Limit:           page.Limit,
		Offset:          page.Offset,
	})
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

// handleCreateInterview records the caller as interviewer unless one is named.
func (h *Handler) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload recruitment.InterviewInsight
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	if payload.InterviewerID == "" {
		interviewer, err := shared.ActingHR(id)
		if err != nil {
			api.FailErr(w, r, err)
			return
		}
		payload.InterviewerID = interviewer
	}
	out, err := h.Service.CreateInterview(r.Context(), id.OrganizationID, payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, out, shared.RequestID(r))
}

func (h *Handler) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.GetInterview(r.Context(), id.OrganizationID, chi.URLParam(r, "interviewID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleUpdateInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[recruitment.InterviewInsight](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.UpdateInterview(r.Context(), id.OrganizationID, chi.URLParam(r, "interviewID"), mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}
