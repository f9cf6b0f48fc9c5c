package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid client configuration")
	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized matches 401 and 403 responses
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited matches 429 responses and 403 rate limit responses
	ErrRateLimited = errors.New("rate limited")
	// ErrForeignHost rejects absolute URLs, such as pagination links, that
	// point away from the client's base URL; credentials are never sent
	// to another host.
	ErrForeignHost = errors.New("url host differs from base url")
)

// maxErrorBody bounds how much of an unparseable body ends up in Message.
const maxErrorBody = 512

// APIError represents a non-2xx API response
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Details    []string
	Body       []byte
}

// Error implements the error interface
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: status %d", e.Method, e.URL, e.StatusCode)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Details) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Details, "; "))
		b.WriteString(")")
	}
	return b.String()
}

// Is lets errors.Is match the sentinel errors by status class.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.IsNotFound()
	case ErrRateLimited:
		return e.IsRateLimited()
	case ErrUnauthorized:
		return e.IsUnauthorized() && !e.IsRateLimited()
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the request was rejected by a rate limit. GitHub
// reports primary rate limits as 403 with an explanatory message.
func (e *APIError) IsRateLimited() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return e.StatusCode == http.StatusForbidden && strings.Contains(strings.ToLower(e.Message), "rate limit")
}

// IsValidation checks if the request was rejected as malformed
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

// wireError covers the error envelopes of the APIs in this module:
//
//	GitHub:   {"message": "...", "errors": [{"resource","field","code","message"}]}
//	Google:   {"error": {"code": 400, "message": "...", "status": "INVALID_ARGUMENT"}}
//	SendGrid: {"errors": [{"field": "...", "message": "..."}]}
//	OAuth:    {"error": "invalid_grant", "error_description": "..."}
type wireError struct {
	Message          string            `json:"message"`
	Error            json.RawMessage   `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Errors           []json.RawMessage `json:"errors"`
}

type wireErrorDetail struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

type wireGoogleError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// parseAPIError builds an APIError from a status code and response body.
func parseAPIError(statusCode int, method, url string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Body:       body,
	}

	var wire wireError
	if err := json.Unmarshal(body, &wire); err != nil {
		apiErr.Message = truncate(strings.TrimSpace(string(body)))
		return apiErr
	}

	apiErr.Message = wire.Message

	if len(wire.Error) > 0 {
		var google wireGoogleError
		var text string
		switch {
		case json.Unmarshal(wire.Error, &google) == nil && google.Message != "":
			if apiErr.Message == "" {
				apiErr.Message = google.Message
			}
			if google.Status != "" {
				apiErr.Details = append(apiErr.Details, google.Status)
			}
		case json.Unmarshal(wire.Error, &text) == nil && text != "":
			if apiErr.Message == "" {
				apiErr.Message = text
			}
			if wire.ErrorDescription != "" {
				apiErr.Details = append(apiErr.Details, wire.ErrorDescription)
			}
		}
	}

	for _, raw := range wire.Errors {
		if detail := formatErrorDetail(raw); detail != "" {
			apiErr.Details = append(apiErr.Details, detail)
		}
	}

	if apiErr.Message == "" && len(apiErr.Details) > 0 {
		apiErr.Message = apiErr.Details[0]
		apiErr.Details = apiErr.Details[1:]
	}
	if apiErr.Message == "" {
		apiErr.Message = truncate(strings.TrimSpace(string(body)))
	}
	if len(apiErr.Details) == 0 {
		apiErr.Details = nil
	}

	return apiErr
}

func formatErrorDetail(raw json.RawMessage) string {
	var text string
	if json.Unmarshal(raw, &text) == nil {
		return text
	}

	var detail wireErrorDetail
	if json.Unmarshal(raw, &detail) != nil {
		return ""
	}

	msg := detail.Message
	if msg == "" {
		msg = detail.Code
	}
	switch {
	case detail.Field != "" && msg != "":
		return detail.Field + ": " + msg
	case detail.Field != "":
		return detail.Field
	default:
		return msg
	}
}

func truncate(s string) string {
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
