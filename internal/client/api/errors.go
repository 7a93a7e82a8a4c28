package api

import (
	"fmt"
	"net/http"
	"strings"
)

// Business codes carried in the server's error envelope. These are the wire
// contract; classification matches on them (or the HTTP status), not on
// message text.
const (
	CodeValidation = 40001
	CodeAuth       = 40101
	CodeNotFound   = 40401
	CodeConflict   = 40901
	CodeServer     = 50001
)

// APIError is a non-success response from the backend.
type APIError struct {
	Status  int
	Code    int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Errors, "; "))
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsAuth reports whether the failure means the session is missing, invalid
// or expired. The primary signal is the 401 status or the auth business
// code; message sniffing is kept only as a fallback for responses that did
// not carry the envelope.
func (e *APIError) IsAuth() bool {
	if e.Status == http.StatusUnauthorized || e.Code == CodeAuth {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "token") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "access denied")
}

// IsNotFound reports whether the server has no record for the request.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound || e.Code == CodeNotFound
}

// IsConflict reports a duplicate-key conflict (lost create race).
func (e *APIError) IsConflict() bool {
	return e.Status == http.StatusConflict || e.Code == CodeConflict
}
