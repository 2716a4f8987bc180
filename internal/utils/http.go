package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GetUUIDParam extracts and validates a UUID path parameter.
func GetUUIDParam(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		ProblemBadRequest(c, fmt.Sprintf("Invalid %s parameter", name))
		return "", false
	}
	return raw, true
}

// GetPageParam extracts the page query parameter. Missing, malformed and
// non-positive values all fall back to the first page.
func GetPageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GetSearchParam extracts the free-text search query parameter.
func GetSearchParam(c *gin.Context) string {
	return strings.TrimSpace(c.Query("query"))
}

// BindAndValidate handles JSON binding with developer-friendly error messages
func BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		errorDetails := formatValidationErrors(err)
		ProblemValidationError(c, "Validation failed", errorDetails)
		return false
	}
	return true
}

// formatValidationErrors converts validation errors to developer-friendly messages
func formatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			var message string
			switch tag {
			case "required":
				message = fmt.Sprintf("%s is required", field)
			case "min":
				message = fmt.Sprintf("%s must be at least %s", field, param)
			case "max":
				message = fmt.Sprintf("%s cannot exceed %s", field, param)
			case "email":
				message = fmt.Sprintf("%s must be a valid email address", field)
			case "gt":
				message = fmt.Sprintf("%s must be greater than %s", field, param)
			case "gte":
				message = fmt.Sprintf("%s must be at least %s", field, param)
			case "oneof":
				message = fmt.Sprintf("%s must be one of: %s", field, param)
			case "uuid":
				message = fmt.Sprintf("%s must be a valid UUID", field)
			case "datetime":
				message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
			default:
				message = fmt.Sprintf("%s failed validation (%s)", field, tag)
			}
			errors = append(errors, ValidationError{Field: field, Message: message})
		}
	} else {
		errors = append(errors, ValidationError{Field: "body", Message: "Invalid JSON format"})
	}

	return errors
}
