package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind is the coarse category of a provider failure
type ErrorKind string

const (
	KindModelUnavailable ErrorKind = "model_unavailable"
	KindAuth             ErrorKind = "auth"
	KindRateLimited      ErrorKind = "rate_limited"
	KindServer           ErrorKind = "server"
	KindRequest          ErrorKind = "request"
	KindTransport        ErrorKind = "transport"
)

// APIError is a provider failure mapped onto an ErrorKind
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Kind       ErrorKind
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s (HTTP %d): %s", e.Provider, e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Classify maps a response status and error text onto an ErrorKind.
// A status of 0 means no response was received.
func Classify(status int, message string) ErrorKind {
	msg := strings.ToLower(message)
	switch {
	case status == 0:
		return KindTransport
	case (status == http.StatusBadRequest || status == http.StatusNotFound) &&
		(strings.Contains(msg, "model") || strings.Contains(msg, "not_found")):
		return KindModelUnavailable
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindServer
	default:
		return KindRequest
	}
}

// KindOf returns the ErrorKind carried by err, or "" when err is not an *APIError
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func newAPIError(provider string, status int, message string, err error) *APIError {
	return &APIError{
		Provider:   provider,
		StatusCode: status,
		Message:    message,
		Kind:       Classify(status, message),
		Err:        err,
	}
}
