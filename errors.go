package gitlab

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmgilman/go/errors"
)

// GitLab-specific error codes (use existing codes from errors library).
// These are convenience aliases for readability in GitLab context.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeConflict indicates a conflict (e.g., duplicate key or name).
	ErrCodeConflict = errors.CodeConflict

	// ErrCodeInvalidInput indicates invalid parameters or malformed data.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeNetwork indicates network-related errors.
	ErrCodeNetwork = errors.CodeNetwork
)

// ErrCodeQuotaExceeded indicates the server refused a creation because the
// owner's resource limit (e.g. the per-user project limit) has been reached.
// GitLab reports this as a 403 whose message mentions the limit; it is kept
// distinct from ErrCodePermissionDenied so callers can react to it.
const ErrCodeQuotaExceeded errors.ErrorCode = "QUOTA_EXCEEDED"

// newStatusError builds the error for an unexpected HTTP status code from the
// GitLab API. The remote message, when the body carries one, becomes the error
// message; the status code is attached as context.
func newStatusError(status int, body []byte) error {
	msg := remoteMessage(body)
	text := msg
	if text == "" {
		text = http.StatusText(status)
	}
	err := errors.New(codeForStatus(status, msg), text)
	return errors.WithContext(err, "status_code", status)
}

// codeForStatus maps a GitLab HTTP status code to an error code.
func codeForStatus(status int, message string) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.CodeInvalidInput
	case http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case http.StatusForbidden:
		// GitLab signals exhausted creation quotas as a 403 whose message
		// names the limit ("Your own projects limit is 0").
		if strings.Contains(strings.ToLower(message), "limit") {
			return ErrCodeQuotaExceeded
		}
		return errors.CodeForbidden
	case http.StatusNotFound:
		return errors.CodeNotFound
	case http.StatusConflict:
		return errors.CodeConflict
	case http.StatusTooManyRequests:
		return errors.CodeRateLimit
	}

	if status >= 500 {
		return errors.CodeNetwork
	}
	return errors.CodeInternal
}

// remoteMessage extracts the "message" field from a GitLab error body.
// The field is usually a string but may be a validation map; non-string
// messages are returned as raw JSON. Returns "" if the body has no message.
func remoteMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Message, &s); err == nil {
		return s
	}
	return string(payload.Message)
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.Newf(errors.CodeInvalidInput, "invalid %s: %s", field, reason)
	err = errors.WithContext(err, "field", field)
	return err
}
