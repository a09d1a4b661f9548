package advisor

import "fmt"

// =============================================================================
// ERROR TAXONOMY (§7)
// =============================================================================
// Each kind has exactly one user-visible message. Internal causes stay on the
// AdvisorError (see Unwrap) for logs/observability; the strings here are what
// ever reaches an end user, and provider text never does.
// =============================================================================

// ErrorKind names one of the taxonomy's error classes.
type ErrorKind string

const (
	ErrNotConfigured     ErrorKind = "NotConfigured"
	ErrAiDisabled        ErrorKind = "AiDisabled"
	ErrRateLimited       ErrorKind = "RateLimited"
	ErrTransport         ErrorKind = "Transport"
	ErrProviderRateLimit ErrorKind = "ProviderRateLimit"
	ErrInvalidResponse   ErrorKind = "InvalidResponse"
	ErrCatalogMiss       ErrorKind = "CatalogMiss"
	ErrTemplateMiss      ErrorKind = "TemplateMiss"
)

// AdvisorError is the structured error surfaced by the AI path. Its Error()
// string is always the user-safe message - never raw provider text.
type AdvisorError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *AdvisorError) Error() string { return e.Message }

// Unwrap exposes the internal cause for logging, never for display.
func (e *AdvisorError) Unwrap() error { return e.cause }

func newError(kind ErrorKind, message string, cause error) *AdvisorError {
	return &AdvisorError{Kind: kind, Message: message, cause: cause}
}

func notConfiguredError(cause error) *AdvisorError {
	return newError(ErrNotConfigured, "AI service configuration issue. Please try again later.", cause)
}

func aiDisabledError() *AdvisorError {
	return newError(ErrAiDisabled, "AI features are currently disabled.", nil)
}

func dailyLimitError(limit int) *AdvisorError {
	return newError(ErrRateLimited, fmt.Sprintf("Daily limit reached (%d requests). Resets at midnight UTC.", limit), nil)
}

func cooldownError(remainingSeconds int) *AdvisorError {
	return newError(ErrRateLimited, fmt.Sprintf("Please wait %d seconds before your next request.", remainingSeconds), nil)
}

func transportError(cause error) *AdvisorError {
	return newError(ErrTransport, "Could not reach AI service. Please check your connection.", cause)
}

func providerRateLimitError(cause error) *AdvisorError {
	return newError(ErrProviderRateLimit, "AI request limit reached. Please try again later.", cause)
}

func invalidResponseError(cause error) *AdvisorError {
	return newError(ErrInvalidResponse, "AI returned an unexpected response format. Please try again.", cause)
}
