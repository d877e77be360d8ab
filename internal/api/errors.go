// Package api wraps the remote retail backend's REST contract.
// The backend is an external collaborator: the client consumes it
// and never assumes anything beyond the documented endpoints.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrAuthExpired signals an HTTP 401 on an authenticated call. The
// session is invalid; callers must force a logout and redirect to
// the login view, discarding in-progress view state.
var ErrAuthExpired = errors.New("api: authentication expired")

// FieldError is one entry of a structured validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is an HTTP 422 with a structured body. Forms
// render it per-field and stay open with the draft intact so the
// operator can correct and resubmit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "dữ liệu không hợp lệ"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("dữ liệu không hợp lệ: kiểm tra trường [%s]", strings.Join(names, ", "))
}

// StatusError is any other non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lỗi %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("lỗi %d", e.Code)
}

// errorBody is the backend's error envelope: FastAPI-style
// {"detail": ...} where detail is either a string or a list of
// {loc, msg} entries, with {"error": ...} as a fallback.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

type detailEntry struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// decodeError turns a non-2xx response body into the matching
// error value. 422 with a structured detail list becomes a
// ValidationError; everything else a StatusError carrying the
// backend's message when one is present.
func decodeError(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return &StatusError{Code: status, Message: strings.TrimSpace(string(body))}
	}
	if len(eb.Detail) > 0 {
		var entries []detailEntry
		if err := json.Unmarshal(eb.Detail, &entries); err == nil && len(entries) > 0 {
			ve := &ValidationError{}
			for _, en := range entries {
				// loc is ["body", ..., fieldName]; the field name is
				// always the last element, nesting adds segments in
				// between
				field := ""
				if len(en.Loc) > 0 {
					raw := en.Loc[len(en.Loc)-1]
					var s string
					if json.Unmarshal(raw, &s) == nil {
						field = s
					} else {
						field = string(raw)
					}
				}
				ve.Fields = append(ve.Fields, FieldError{Field: field, Reason: en.Msg})
			}
			return ve
		}
		var msg string
		if json.Unmarshal(eb.Detail, &msg) == nil {
			return &StatusError{Code: status, Message: msg}
		}
	}
	if eb.Error != "" {
		return &StatusError{Code: status, Message: eb.Error}
	}
	return &StatusError{Code: status}
}
