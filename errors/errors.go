// Package errors defines the closed set of failures the Perceptron client
// can return. Callers distinguish them with errors.Is / errors.As; the
// client never reports a failure any other way.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network I/O when a call is
// attempted without an API key configured.
var ErrMissingAPIKey = stderrors.New("api key not configured")

// ConfigError wraps a client-side failure before any network I/O, such as
// a base URL that does not parse or a payload that cannot be serialized.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "invalid client configuration: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// ErrorDetail is the structured error body returned by the API
// (OpenAI-compatible shape).
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Param   string `json:"param,omitempty"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// APIError is returned when the API responds with a non-success status.
// Detail carries the parsed error body when the server sent one; Body is
// always the raw response body.
type APIError struct {
	StatusCode int
	Detail     ErrorDetail
	Body       string
}

// NewAPIError builds an APIError from a status code and raw response body,
// parsing the structured detail when the body has the expected envelope.
func NewAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Body: string(body)}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		e.Detail = env.Error
	} else {
		e.Detail = ErrorDetail{Message: string(body)}
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("perceptron api error (%d): %s", e.StatusCode, e.Detail.Message)
}

// TransportError wraps a failure to complete the HTTP exchange
// (connection refused, DNS, TLS, timeout, context cancellation).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "request failed: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a response body that could not be read or did not
// match the expected schema despite a success status.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "failed to decode response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
