package authhandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/core"
	"hrms/internal/domain/organization"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/shared"
)

type Sessions interface {
	Login(ctx context.Context, kind core.AccountKind, email, password string) (*auth.LoginResult, error)
	Logout(ctx context.Context, id auth.Identity) error
}

type Signups interface {
	Signup(ctx context.Context, in organization.SignupInput) (*organization.SignupResult, error)
}

type Accounts interface {
	Account(ctx context.Context, kind core.AccountKind, orgID, id string) (*core.Account, error)
	UpdateProfile(ctx context.Context, kind core.AccountKind, orgID, id string, mutate func(*core.Account) error) (*core.Account, error)
}

type Recovery interface {
	ForgotPassword(ctx context.Context, kind core.AccountKind, email string) error
	ResetPassword(ctx context.Context, kind core.AccountKind, token, password string) error
	RequestVerification(ctx context.Context, id auth.Identity) error
	VerifyEmail(ctx context.Context, id auth.Identity, code string) (*core.Account, error)
}

type Handler struct {
	Sessions Sessions
	Signups  Signups
	Accounts Accounts
	Recovery Recovery
}

func NewHandler(sessions Sessions, signups Signups, accounts Accounts, recovery Recovery) *Handler {
	return &Handler{Sessions: sessions, Signups: signups, Accounts: accounts, Recovery: recovery}
}

type loginRequest struct {
	Kind     core.AccountKind `json:"kind"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
}

type forgotRequest struct {
	Kind  core.AccountKind `json:"kind"`
	Email string           `json:"email"`
}

type resetRequest struct {
	Kind     core.AccountKind `json:"kind"`
	Token    string           `json:"token"`
	Password string           `json:"password"`
}

type verifyRequest struct {
	Code string `json:"code"`
}

// RegisterPublic mounts the routes reachable without a credential.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/signup", h.HandleSignup)
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/forgot-password", h.HandleForgotPassword)
	r.Post("/auth/reset-password", h.HandleResetPassword)
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/logout", h.HandleLogout)
	r.Post("/auth/verify-email/request", h.HandleRequestVerification)
	r.Post("/auth/verify-email", h.HandleVerifyEmail)
	r.Get("/me", h.HandleMe)
	r.Put("/me", h.HandleUpdateMe)
}

// kindOrDefault lower-cases kind and falls back to employee accounts.
func kindOrDefault(kind core.AccountKind) core.AccountKind {
	if kind == "" {
		return core.KindEmployee
	}
	return core.AccountKind(strings.ToLower(string(kind)))
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var payload organization.SignupInput
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	result, err := h.Signups.Signup(r.Context(), payload)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Created(w, result, shared.RequestID(r))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	result, err := h.Sessions.Login(r.Context(), kindOrDefault(payload.Kind), payload.Email, payload.Password)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, result, shared.RequestID(r))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	if err := h.Sessions.Logout(r.Context(), id); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "logged_out"}, shared.RequestID(r))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	account, err := h.Accounts.Account(r.Context(), id.Kind, id.OrganizationID, id.SubjectID)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]any{"identity": id, "account": account}, shared.RequestID(r))
}

// HandleForgotPassword answers the same way whether or not the email exists.
func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload forgotRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	if err := h.Recovery.ForgotPassword(r.Context(), kindOrDefault(payload.Kind), payload.Email); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "reset_requested"}, shared.RequestID(r))
}

func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload resetRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	if err := h.Recovery.ResetPassword(r.Context(), kindOrDefault(payload.Kind), payload.Token, payload.Password); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "password_reset"}, shared.RequestID(r))
}

func (h *Handler) HandleRequestVerification(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	if err := h.Recovery.RequestVerification(r.Context(), id); err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "verification_sent"}, shared.RequestID(r))
}

func (h *Handler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	var payload verifyRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.FailErr(w, r, err)
		return
	}
	account, err := h.Recovery.VerifyEmail(r.Context(), id, strings.TrimSpace(payload.Code))
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, account, shared.RequestID(r))
}

// HandleUpdateMe edits the caller's own names, contact number and password.
func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.Identity(w, r)
	if !ok {
		return
	}
	mutate, err := shared.Patch[core.Account](r)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	account, err := h.Accounts.UpdateProfile(r.Context(), id.Kind, id.OrganizationID, id.SubjectID, mutate)
	if err != nil {
		api.FailErr(w, r, err)
		return
	}
	api.Success(w, account, shared.RequestID(r))
}
