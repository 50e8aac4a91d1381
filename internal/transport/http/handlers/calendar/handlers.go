package calendarhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/calendar"
	"hrms/internal/domain/enums"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *calendar.Service
	Gate    middleware.Gate
}

func NewHandler(service *calendar.Service, gate middleware.Gate) *Handler {
	return &Handler{Service: service, Gate: gate}
}

// RegisterRoutes lets every account read the calendar; writes are HR only.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{eventID}", h.handleGet)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(h.Gate, enums.RoleHRAdmin))
			r.Post("/", h.handleCreate)
			r.Put("/{eventID}", h.handleUpdate)
			r.Delete("/{eventID}", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	from, err := shared.QueryTime(r, "from")
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	to, err := shared.QueryTime(r, "to")
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	page := shared.Page(r)
	items, err := h.Service.List(r.Context(), id.OrganizationID, calendar.Filter{From: from, To: to, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, items, shared.RequestID(r))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	out, err := h.Service.Get(r.Context(), id.OrganizationID, chi.URLParam(r, "eventID"))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, out, shared.RequestID(r))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload calendar.Event
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

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[calendar.Event](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	out, err := h.Service.Update(r.Context(), id.OrganizationID, chi.URLParam(r, "eventID"), mutate)
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
	if err := h.Service.Delete(r.Context(), id.OrganizationID, chi.URLParam(r, "eventID")); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, shared.RequestID(r))
}
