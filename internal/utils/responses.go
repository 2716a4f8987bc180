package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse represents a simple message response (typed alternative to gin.H).
type MessageResponse struct {
	Message string `json:"message"`
}

// IDMessageResponse represents a response with an ID and message (typed alternative to gin.H).
type IDMessageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// PagedResponse represents a page of table rows together with the page
// window the client renders as pagination controls. Pagination mixes page
// numbers and ellipsis markers, so it is a mixed-type slice.
type PagedResponse struct {
	Data       any   `json:"data"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Pagination []any `json:"pagination"`
}

// Success responds with HTTP 200 OK status and the provided data.
func Success(c *gin.Context, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, data)
}

// NoContent responds with HTTP 204 No Content.
func NoContent(c *gin.Context) {
	if c == nil {
		return
	}
	c.Status(http.StatusNoContent)
}

// Paginated responds with a page of data in a consistent format.
func Paginated(c *gin.Context, data any, page, totalPages int, pagination []any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, PagedResponse{
		Data:       data,
		Page:       page,
		TotalPages: totalPages,
		Pagination: pagination,
	})
}

// CreatedWithLocation responds with HTTP 201 Created status including the new resource ID
// and sets the Location header per RFC 7231.
// The resourcePath should be the base path (e.g., "/api/v1/invoices"), the ID will be appended.
func CreatedWithLocation(c *gin.Context, id, resourcePath, message string) {
	if c == nil {
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%s", resourcePath, id))
	c.JSON(http.StatusCreated, IDMessageResponse{
		ID:      id,
		Message: message,
	})
}

// RFC 9457 Problem Details compatible error response functions.

// ProblemValidationError responds with HTTP 422 for input validation failures.
func ProblemValidationError(c *gin.Context, detail string, errors []ValidationError) {
	if c == nil {
		return
	}
	problem := NewValidationProblem(detail, c.Request.URL.Path, errors)
	if traceID := getTraceID(c); traceID != "" {
		problem.WithTraceID(traceID)
	}
	SendProblem(c, problem)
}

// ProblemNotFound responds with HTTP 404 Not Found.
func ProblemNotFound(c *gin.Context, resource string) {
	if c == nil {
		return
	}
	problem := NewNotFoundProblem(resource, c.Request.URL.Path)
	if traceID := getTraceID(c); traceID != "" {
		problem.WithTraceID(traceID)
	}
	SendProblem(c, problem)
}

// ProblemDuplicate responds with HTTP 409 Conflict.
func ProblemDuplicate(c *gin.Context, resource string) {
	if c == nil {
		return
	}
	problem := NewDuplicateProblem(resource, c.Request.URL.Path)
	if traceID := getTraceID(c); traceID != "" {
		problem.WithTraceID(traceID)
	}
	SendProblem(c, problem)
}

// ProblemAuthentication responds with HTTP 401 Unauthorized.
// Per RFC 7235, includes WWW-Authenticate header.
func ProblemAuthentication(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	c.Header("WWW-Authenticate", `Session realm="Finboard API"`)
	problem := NewAuthenticationProblem(detail, c.Request.URL.Path)
	if traceID := getTraceID(c); traceID != "" {
		problem.WithTraceID(traceID)
	}
	SendProblem(c, problem)
}

// ProblemInternalServer responds with HTTP 500 Internal Server Error.
func ProblemInternalServer(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	problem := NewInternalServerProblem(detail, c.Request.URL.Path)
	if traceID := getTraceID(c); traceID != "" {
		problem.WithTraceID(traceID)
	}
	SendProblem(c, problem)
}

// ProblemBadRequest responds with HTTP 400 Bad Request.
func ProblemBadRequest(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	problem := NewBadRequestProblem(detail, c.Request.URL.Path)
	if traceID := getTraceID(c); traceID != "" {
		problem.WithTraceID(traceID)
	}
	SendProblem(c, problem)
}
