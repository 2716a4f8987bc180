package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblemDetail(t *testing.T) {
	problem := NewProblemDetail(
		ProblemTypeValidationError,
		"Validation Error",
		422,
		"The request contains invalid data",
		"/api/v1/test",
	)

	assert.Equal(t, ProblemTypeValidationError, problem.Type)
	assert.Equal(t, "Validation Error", problem.Title)
	assert.Equal(t, 422, problem.Status)
	assert.Equal(t, "The request contains invalid data", problem.Detail)
	assert.Equal(t, "/api/v1/test", problem.Instance)
	assert.NotEmpty(t, problem.Timestamp)

	// Verify timestamp is valid ISO 8601
	_, err := time.Parse(time.RFC3339, problem.Timestamp)
	assert.NoError(t, err)
}

func TestProblemDetailHelpers(t *testing.T) {
	tests := []struct {
		name           string
		constructor    func() *ProblemDetail
		expectedType   string
		expectedStatus int
	}{
		{
			name: "NotFound",
			constructor: func() *ProblemDetail {
				return NewNotFoundProblem("Invoice", "/api/v1/invoices/123")
			},
			expectedType:   ProblemTypeResourceNotFound,
			expectedStatus: 404,
		},
		{
			name: "Duplicate",
			constructor: func() *ProblemDetail {
				return NewDuplicateProblem("Customer", "/api/v1/customers")
			},
			expectedType:   ProblemTypeDuplicateResource,
			expectedStatus: 409,
		},
		{
			name: "Authentication",
			constructor: func() *ProblemDetail {
				return NewAuthenticationProblem("Invalid credentials", "/api/v1/auth/login")
			},
			expectedType:   ProblemTypeAuthenticationRequired,
			expectedStatus: 401,
		},
		{
			name: "InternalServer",
			constructor: func() *ProblemDetail {
				return NewInternalServerProblem("Database connection failed", "/api/v1/test")
			},
			expectedType:   ProblemTypeInternalServerError,
			expectedStatus: 500,
		},
		{
			name: "BadRequest",
			constructor: func() *ProblemDetail {
				return NewBadRequestProblem("Invalid JSON format", "/api/v1/test")
			},
			expectedType:   ProblemTypeBadRequest,
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := tt.constructor()
			assert.Equal(t, tt.expectedType, problem.Type)
			assert.Equal(t, tt.expectedStatus, problem.Status)
			assert.NotEmpty(t, problem.Title)
			assert.NotEmpty(t, problem.Detail)
		})
	}
}

func TestNewValidationProblem(t *testing.T) {
	errors := []ValidationError{
		{Field: "amount", Message: "Amount must be greater than 0"},
		{Field: "status", Message: "Status must be one of: pending paid"},
	}

	problem := NewValidationProblem(
		"Multiple validation errors occurred",
		"/api/v1/invoices",
		errors,
	)

	assert.Equal(t, ProblemTypeValidationError, problem.Type)
	assert.Equal(t, 422, problem.Status)
	assert.Len(t, problem.Errors, 2)
	assert.Equal(t, "amount", problem.Errors[0].Field)
}

func TestSendProblem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/invoices/abc", nil)

	SendProblem(c, NewNotFoundProblem("Invoice", ""))

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var body ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ProblemTypeResourceNotFound, body.Type)
	assert.Equal(t, "Invoice not found", body.Detail)
	// Instance defaults to the request path when not set.
	assert.Equal(t, "/api/v1/invoices/abc", body.Instance)
}

func TestGetPageParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"missing", "", 1},
		{"valid", "page=3", 3},
		{"zero", "page=0", 1},
		{"negative", "page=-2", 1},
		{"malformed", "page=abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/api/v1/invoices?"+tt.query, nil)

			assert.Equal(t, tt.expected, GetPageParam(c))
		})
	}
}

func TestGetUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/v1/invoices/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "3958dc9e-712f-4377-85e9-fec4b6a6442a"}}

		id, ok := GetUUIDParam(c, "id")
		assert.True(t, ok)
		assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", id)
	})

	t.Run("invalid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/v1/invoices/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := GetUUIDParam(c, "id")
		assert.False(t, ok)
		assert.Equal(t, 400, w.Code)
	})
}
