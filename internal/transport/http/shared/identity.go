package shared

import (
	"fmt"
	"net/http"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/core"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

// Identity returns the authenticated caller, writing 401 when there is none.
func Identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.FailErr(w, r, apperr.ErrUnauthorized)
		return auth.Identity{}, false
	}
	return id, true
}

// Employee is Identity restricted to employee accounts, for self-service routes.
func Employee(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := Identity(w, r)
	if !ok {
		return id, false
	}
	if id.Kind != core.KindEmployee {
		api.FailErr(w, r, fmt.Errorf("%w: employee account required", apperr.ErrForbidden))
		return auth.Identity{}, false
	}
	return id, true
}

func RequestID(r *http.Request) string {
	return middleware.GetRequestID(r.Context())
}

// ActingHR is the caller's id for approver and creator columns that
// reference human_resources. Employee accounts holding the HR-Admin role pass
// the gate but cannot fill those columns, so they get Forbidden here.
func ActingHR(id auth.Identity) (string, error) {
	if id.Kind != core.KindHR {
		return "", fmt.Errorf("%w: HR account required", apperr.ErrForbidden)
	}
	return id.SubjectID, nil
}
