package api

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-scoped messages. It is produced both by
// client-side form validation (before any network call) and by 4xx responses
// whose body maps field names to error lists (registration). The UI attaches
// each message to its input rather than showing a banner.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AuthError indicates invalid or expired credentials. It always collapses
// the session to a logged-out state; it is never retried automatically
// beyond the single bounded refresh-then-retry.
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("authentication failed (HTTP %d)", e.Status)
}

// RequestError wraps a transport-level failure: connection refused, timeout,
// or an unreadable response. Safe to retry manually.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a server-reported non-field error: a 4xx/5xx with a general
// detail message. Shown as a banner, retryable by the user.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// errorBody is the shape of structured 4xx bodies. Django-style services
// return either {"detail": "..."} or a map of field name to message list.
type errorBody map[string]any

// toError converts a structured error body into the matching error type.
func (b errorBody) toError(status int) error {
	if b == nil {
		if status == 401 || status == 403 {
			return &AuthError{Status: status}
		}
		return &APIError{Status: status}
	}

	if d, ok := b["detail"].(string); ok {
		if status == 401 || status == 403 {
			return &AuthError{Status: status, Detail: d}
		}
		return &APIError{Status: status, Detail: d}
	}
	if m, ok := b["message"].(string); ok {
		return &APIError{Status: status, Detail: m}
	}

	// Remaining keys are field names mapped to a message or message list.
	fields := make(map[string]string, len(b))
	for k, v := range b {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case []any:
			if len(val) > 0 {
				if s, ok := val[0].(string); ok {
					fields[k] = s
				}
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if status == 401 || status == 403 {
		return &AuthError{Status: status}
	}
	return &APIError{Status: status}
}
