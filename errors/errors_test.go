package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewAPIErrorParsesStructuredBody(t *testing.T) {
	body := `{"error": {"message": "model not found", "type": "invalid_request_error", "code": "model_not_found"}}`
	e := NewAPIError(404, []byte(body))
	if e.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", e.StatusCode)
	}
	if e.Detail.Message != "model not found" {
		t.Errorf("expected parsed message, got %q", e.Detail.Message)
	}
	if e.Detail.Type != "invalid_request_error" || e.Detail.Code != "model_not_found" {
		t.Errorf("expected parsed detail fields, got %+v", e.Detail)
	}
	if !strings.Contains(e.Error(), "404") || !strings.Contains(e.Error(), "model not found") {
		t.Errorf("expected status and message in error string, got %q", e.Error())
	}
}

func TestNewAPIErrorFallsBackToRawBody(t *testing.T) {
	e := NewAPIError(502, []byte("bad gateway"))
	if e.Detail.Message != "bad gateway" {
		t.Errorf("expected raw body as message, got %q", e.Detail.Message)
	}
	if e.Body != "bad gateway" {
		t.Errorf("expected raw body kept, got %q", e.Body)
	}
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	var err error = &TransportError{Err: cause}
	if !stderrors.Is(err, cause) {
		t.Error("expected TransportError to unwrap to its cause")
	}

	var te *TransportError
	if !stderrors.As(err, &te) {
		t.Error("expected errors.As to match TransportError")
	}

	err = &DecodeError{Err: cause}
	var de *DecodeError
	if !stderrors.As(err, &de) {
		t.Error("expected errors.As to match DecodeError")
	}

	err = &ConfigError{Err: cause}
	var ce *ConfigError
	if !stderrors.As(err, &ce) {
		t.Error("expected errors.As to match ConfigError")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected ConfigError to unwrap to its cause")
	}
}
