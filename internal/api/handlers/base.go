// Package handlers provides HTTP request handlers for all API endpoints.
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/finboardhq/finboard/internal/apperrors"
	"github.com/finboardhq/finboard/internal/auth"
	"github.com/finboardhq/finboard/internal/services"
	"github.com/finboardhq/finboard/internal/utils"
	"github.com/finboardhq/finboard/pkg/logger"
)

// Handlers contains all the dependencies needed by the API handlers.
type Handlers struct {
	invoiceSvc   *services.InvoiceService
	customerSvc  *services.CustomerService
	dashboardSvc *services.DashboardService
	authSvc      *auth.Service
}

// NewHandlers creates a new Handlers instance with all required dependencies.
func NewHandlers(
	invoiceSvc *services.InvoiceService,
	customerSvc *services.CustomerService,
	dashboardSvc *services.DashboardService,
	authSvc *auth.Service,
) *Handlers {
	return &Handlers{
		invoiceSvc:   invoiceSvc,
		customerSvc:  customerSvc,
		dashboardSvc: dashboardSvc,
		authSvc:      authSvc,
	}
}

// handleServiceError converts apperrors.Error to appropriate HTTP responses.
// Internal error details are logged but never exposed to clients.
func handleServiceError(c *gin.Context, err error, resource string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		// Log internal details if present
		if appErr.Internal != "" {
			logger.Error("%s error: %s (internal: %s)", resource, appErr.Message, appErr.Internal)
		}
		if appErr.Err != nil {
			logger.Error("%s underlying error: %v", resource, appErr.Err)
		}

		// Map error code to HTTP response
		switch appErr.Code {
		case apperrors.CodeNotFound:
			utils.ProblemNotFound(c, resource)
		case apperrors.CodeDuplicate:
			utils.ProblemDuplicate(c, resource)
		case apperrors.CodeInvalidInput:
			utils.ProblemBadRequest(c, appErr.Message)
		case apperrors.CodeUnauthorized:
			utils.ProblemAuthentication(c, appErr.Message)
		default:
			utils.ProblemInternalServer(c, appErr.Message)
		}
		return
	}

	logger.Error("Unhandled error for %s: %v", resource, err)
	utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
}
