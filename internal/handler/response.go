package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bookvault/bookvault/internal/validation"
)

// ErrorResponse is the envelope every failed request gets, regardless of which
// layer produced the error.
type ErrorResponse struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	StatusCode int                     `json:"statusCode"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

// RespondError writes the standard error envelope and aborts the request.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success:    false,
		Message:    message,
		StatusCode: status,
	})
}

// RespondValidationError writes a 400 envelope carrying the field errors.
func RespondValidationError(c *gin.Context, errs []validation.FieldError) {
	c.AbortWithStatusJSON(400, ErrorResponse{
		Success:    false,
		Message:    "Validation failed",
		StatusCode: 400,
		Errors:     errs,
	})
}
