package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotRetryable = errors.New("only failed sessions can be retried")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidIdea         = errors.New("invalid business idea")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrSessionNotPending   = errors.New("session is not pending")
)

const defaultFailureMessage = "Report generation failed. Please retry."

// ProviderFailure is one failed provider call inside a failover sweep.
// Unparseable is set when the call succeeded but the reply held no JSON
// object; its Message then quotes model text.
type ProviderFailure struct {
	Provider    string
	Message     string
	StatusCode  int
	Unparseable bool
}

func (f ProviderFailure) rateLimited() bool {
	if f.Unparseable {
		return false
	}
	if f.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return isRateLimitMessage(f.Message)
}

// AllProvidersFailedError is returned when every provider in the priority
// order failed for a section. Its message is shown to users.
type AllProvidersFailedError struct {
	SectionID   string
	SectionName string
	Failures    []ProviderFailure
}

func (e *AllProvidersFailedError) Error() string {
	return fmt.Sprintf("Failed to generate %s with all providers", e.SectionName)
}

// RateLimited reports whether any provider in the sweep signalled a rate limit.
func (e *AllProvidersFailedError) RateLimited() bool {
	for _, f := range e.Failures {
		if f.rateLimited() {
			return true
		}
	}
	return false
}

// ParseError means no JSON object could be extracted from a model reply.
type ParseError struct {
	Provider string
	Preview  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON from %s response: %s", e.Provider, e.Preview)
}

// ConfigurationError is fatal for a run and never retried.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func isRateLimitError(err error) bool {
	var all *AllProvidersFailedError
	if errors.As(err, &all) {
		return all.RateLimited()
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return false
	}
	return isRateLimitMessage(err.Error())
}

func isRateLimitMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "rate limit") ||
		strings.Contains(m, "rate_limit") ||
		strings.Contains(m, "too many requests") ||
		strings.Contains(m, "429")
}
