package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hrms/internal/domain/apperr"
)

// ReadBody returns the raw request body, or a validation error when it is
// missing or exceeds the body limit.
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, apperr.Invalid("body", "is required")
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperr.Invalid("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
		}
		return nil, apperr.Invalid("body", "could not be read")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperr.Invalid("body", "is required")
	}
	return raw, nil
}

// Unmarshal decodes raw onto dst, rejecting unknown fields. Fields absent
// from raw keep the value dst already holds.
func Unmarshal(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeIssue(err)
	}
	if dec.More() {
		return apperr.Invalid("body", "must contain a single JSON object")
	}
	return nil
}

// DecodeJSON reads the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	raw, err := ReadBody(r)
	if err != nil {
		return err
	}
	return Unmarshal(raw, dst)
}

// Patch returns a mutate func that overlays the request body on the stored
// record, for partial updates.
func Patch[T any](r *http.Request) (func(*T) error, error) {
	raw, err := ReadBody(r)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeIssue(err)
	}
	return func(current *T) error {
		return Unmarshal(raw, current)
	}, nil
}

func decodeIssue(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperr.Invalid(field, "has the wrong type")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.Invalid("body", "must be valid JSON")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperr.Invalid(name, "is not a recognised field")
	}
	if issues := apperr.Issues(err); issues != nil {
		return err
	}
	return apperr.Invalid("body", err.Error())
}
