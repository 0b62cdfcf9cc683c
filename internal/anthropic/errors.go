package anthropic

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed model call.
type Kind string

const (
	KindAuthentication    Kind = "authentication"
	KindRateLimited       Kind = "rate_limited"
	KindNetwork           Kind = "network"
	KindMalformedResponse Kind = "malformed_response"
	KindRequest           Kind = "request"
)

var (
	ErrAuthentication    = errors.New("anthropic: authentication failed")
	ErrRateLimited       = errors.New("anthropic: rate limited")
	ErrNetwork           = errors.New("anthropic: network error")
	ErrMalformedResponse = errors.New("anthropic: malformed response")
	ErrRequest           = errors.New("anthropic: request rejected")
)

// APIError is returned by Complete for every failure after the request is built.
type APIError struct {
	Kind    Kind
	Status  int
	Type    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("anthropic %s", e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.Type != "" {
		msg += ": " + e.Type
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind, so callers can use errors.Is.
func (e *APIError) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindRateLimited:
		return ErrRateLimited
	case KindNetwork:
		return ErrNetwork
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return ErrRequest
	}
}

// KindOf returns the classification of err, or "" when err is not from this client.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuthentication
	case status == http.StatusTooManyRequests || status == 529:
		return KindRateLimited
	case status >= 500:
		return KindNetwork
	default:
		return KindRequest
	}
}

// Fallback is the in-character reply shown when the model call fails, with a
// lighting cue so the effect layer still reacts.
func Fallback(err error) string {
	switch KindOf(err) {
	case KindRateLimited:
		return "*slow dim breathing* So many voices are reaching me right now... give me a moment to catch my breath and speak to me again."
	case KindAuthentication:
		return "*flickering with uncertainty* I can't find my voice right now. Someone needs to check my connection to the world."
	default:
		return "*flickering with uncertainty* The words are caught somewhere between my heart and my mind. Stay with me and try again."
	}
}
