package ai

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no API key was provided at startup.
// Callers treat it like any other provider failure and fall back.
var ErrNotConfigured = errors.New("generative model not configured")

// ErrorKind classifies provider failures so handlers can distinguish
// quota exhaustion from bad credentials without string matching.
type ErrorKind string

const (
	KindQuota         ErrorKind = "quota_exceeded"
	KindCredential    ErrorKind = "credential"
	KindModelNotFound ErrorKind = "model_not_found"
	KindTransport     ErrorKind = "transport"
)

// ProviderError wraps a model API failure with its classification
type ProviderError struct {
	Kind  ErrorKind
	Model string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: model %s: %v", e.Kind, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classifyProviderError maps API status codes onto error kinds:
// 429 quota, 401/403 credential, 404 model not found, anything else
// transport.
func classifyProviderError(model string, err error) *ProviderError {
	kind := KindTransport
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			kind = KindQuota
		case 401, 403:
			kind = KindCredential
		case 404:
			kind = KindModelNotFound
		}
	}
	return &ProviderError{Kind: kind, Model: model, Err: err}
}

// ParseError reports a model response that could not be decoded into the
// expected structure. Raw carries the offending text for logging.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return "failed to parse model response: " + e.Reason
}
