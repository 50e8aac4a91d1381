package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hrms/internal/domain/apperr"
	"hrms/internal/platform/requestctx"
)

type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details []apperr.Issue `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details []apperr.Issue, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// FailErr writes the response for an error returned by a domain service.
// Errors outside the taxonomy are logged and reported as 500 without detail.
func FailErr(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestctx.GetRequestID(r.Context())
	switch {
	case errors.Is(err, apperr.ErrValidation):
		FailWithDetails(w, http.StatusBadRequest, "validation_error", "request validation failed", apperr.Issues(err), requestID)
	case errors.Is(err, apperr.ErrNotFound):
		Fail(w, http.StatusNotFound, "not_found", "resource not found", requestID)
	case errors.Is(err, apperr.ErrConflict):
		Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	case errors.Is(err, apperr.ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
	case errors.Is(err, apperr.ErrForbidden):
		Fail(w, http.StatusForbidden, "forbidden", "insufficient role", requestID)
	default:
		requestctx.Logger(r.Context()).Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
