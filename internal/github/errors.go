package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a structured error response from the GitHub API.
type APIError struct {
	Status  int
	Message string
	DocURL  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github error (%d): %s", e.Status, e.Message)
}

func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		DocURL  string `json:"documentation_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return &APIError{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		Status:  resp.StatusCode,
		Message: body.Message,
		DocURL:  body.DocURL,
	}
}

// IsConflict reports whether err is a concurrent-write conflict (409).
func IsConflict(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusConflict
}

// IsTransient reports whether err is worth retrying: server-side failures,
// rate limiting, or a network error. Context cancellation is never retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status >= 500 || ae.Status == http.StatusTooManyRequests
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}
	return true // network errors are transient
}

// IsPathExists reports whether err is GitHub's rejection of a create on an
// existing path (422 without a sha in the request).
func IsPathExists(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnprocessableEntity
}
