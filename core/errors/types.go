// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates caller contract errors from upstream failures, which never leave the adapters

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API.
// StatusCode is 0 when the failure happened before a response arrived.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// UnknownQueryTypeError is returned by the keyed fetch path when the key's
// type has no adapter. It is a caller bug and is never converted to an empty result.
type UnknownQueryTypeError struct {
	Type string
	Key  string
}

// Error implements the error interface
func (e *UnknownQueryTypeError) Error() string {
	return fmt.Sprintf("invalid fetcher type %q in key %q", e.Type, e.Key)
}

// ConfigurationError lists settings that are missing or invalid
type ConfigurationError struct {
	Missing []string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: %s", strings.Join(e.Missing, ", "))
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsUnknownQueryType checks if an error is an UnknownQueryTypeError
func IsUnknownQueryType(err error) bool {
	var typeErr *UnknownQueryTypeError
	return errors.As(err, &typeErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
