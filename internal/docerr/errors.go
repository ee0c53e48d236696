// Package docerr defines the error taxonomy shared by the document engine.
package docerr

import "fmt"

// ValidationError reports a missing or malformed required field. It is
// returned before any scoring runs so partial results are never produced.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: message}
}

// TemplateNotFoundError reports a catalog lookup miss.
type TemplateNotFoundError struct {
	ID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %s not found", e.ID)
}

// RenderError wraps an opaque failure surfaced from the render collaborator.
// Rendering is never retried internally; the caller owns retry and timeout.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ConfigurationError reports scoring weights or palettes that are outside
// their documented ranges.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Message)
}
