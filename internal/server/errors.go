package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/docstudio/internal/docerr"
)

// ErrNotFound is the generic missing-resource error for the HTTP surface.
var ErrNotFound = errors.New("not_found")

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

func invalidRequestError() error {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body could not be parsed",
	}
}

func newValidationError(field, code, message string) error {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// AbortWithError maps engine errors onto HTTP status codes and writes the
// error envelope.
func AbortWithError(c *gin.Context, err error) {
	var (
		api        *apiError
		validation *docerr.ValidationError
		notFound   *docerr.TemplateNotFoundError
		renderErr  *docerr.RenderError
		configErr  *docerr.ConfigurationError
	)

	switch {
	case errors.As(err, &api):
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
	case errors.As(err, &validation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apiError{
			Code:    validation.Code,
			Field:   validation.Field,
			Message: validation.Message,
		}})
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": apiError{
			Code:    "template_not_found",
			Message: err.Error(),
		}})
	case errors.As(err, &renderErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": apiError{
			Code:    "render_failed",
			Message: err.Error(),
		}})
	case errors.As(err, &configErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apiError{
			Code:    "configuration_error",
			Message: err.Error(),
		}})
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": apiError{
			Code:    "not_found",
			Message: "resource not found",
		}})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apiError{
			Code:    "internal_error",
			Message: "an unexpected error occurred",
		}})
	}
}
