package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Match error codes
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidTimeRange = "INVALID_TIME_RANGE"
	CodeGeocoding        = "GEOCODING_ERROR"
	CodeNoProviders      = "NO_PROVIDERS"
	CodeNoMatches        = "NO_MATCHES"
	CodeMatchProcess     = "MATCH_PROCESS_ERROR"
)

// MatchError is the structured failure of a match request
type MatchError struct {
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *MatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// Is matches any MatchError carrying the same code
func (e *MatchError) Is(target error) bool {
	t, ok := target.(*MatchError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// HTTPStatus maps the code onto a response status
func (e *MatchError) HTTPStatus() int {
	if e.Code == CodeMatchProcess {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// NewMatchError builds a MatchError
func NewMatchError(code, message string, details map[string]interface{}, err error) *MatchError {
	return &MatchError{Code: code, Message: message, Details: details, Err: err}
}

// Sentinels for errors.Is comparisons
var (
	ErrValidation       = &MatchError{Code: CodeValidation}
	ErrInvalidTimeRange = &MatchError{Code: CodeInvalidTimeRange}
	ErrGeocoding        = &MatchError{Code: CodeGeocoding}
	ErrNoProviders      = &MatchError{Code: CodeNoProviders}
	ErrNoMatches        = &MatchError{Code: CodeNoMatches}
	ErrMatchProcess     = &MatchError{Code: CodeMatchProcess}

	ErrProviderNotFound = errors.New("provider not found")
)

// AsMatchError extracts a MatchError from err
func AsMatchError(err error) (*MatchError, bool) {
	var me *MatchError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}
