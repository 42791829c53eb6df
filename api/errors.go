package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/homemanager/hmctl/internal/errors"
)

// APIError carries the backend's error payload alongside the taxonomy
// sentinel, so callers can both branch with errors.Is and render the
// backend's message inline.
type APIError struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string

	kind error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d)", e.Detail, e.StatusCode)
	}
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, messages := range e.Fields {
			parts = append(parts, field+": "+strings.Join(messages, "; "))
		}
		return fmt.Sprintf("%s (status %d)", strings.Join(parts, ", "), e.StatusCode)
	}
	return fmt.Sprintf("request failed (status %d)", e.StatusCode)
}

// Unwrap lets errors.Is match the taxonomy sentinel for the status.
func (e *APIError) Unwrap() error {
	return e.kind
}

// decodeAPIError reads an error response body in the backend's shape:
// either {"detail": "..."} or a map of field names to message lists.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		kind:       kindForStatus(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	if raw, ok := payload["detail"]; ok {
		var detail string
		if json.Unmarshal(raw, &detail) == nil {
			apiErr.Detail = detail
		}
		delete(payload, "detail")
	}

	for field, raw := range payload {
		var messages []string
		if json.Unmarshal(raw, &messages) == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = map[string][]string{}
			}
			apiErr.Fields[field] = messages
			continue
		}
		var single string
		if json.Unmarshal(raw, &single) == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = map[string][]string{}
			}
			apiErr.Fields[field] = []string{single}
		}
	}
	return apiErr
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return errors.ErrValidation
	case http.StatusUnauthorized:
		return errors.ErrNotAuthenticated
	case http.StatusForbidden:
		return errors.ErrPermissionDenied
	case http.StatusNotFound:
		return errors.ErrNotFound
	default:
		if status >= 500 {
			return errors.ErrServer
		}
		return errors.ErrInternal
	}
}
