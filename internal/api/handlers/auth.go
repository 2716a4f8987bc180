package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/finboardhq/finboard/internal/utils"
	"github.com/finboardhq/finboard/pkg/logger"
)

// LoginRequest represents the request structure for session login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login verifies credentials and starts a cookie session.
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "session")
		return
	}

	if err := h.authSvc.StartSession(c, user); err != nil {
		logger.Error("Failed to save session for user %d: %v", user.ID, err)
		utils.ProblemInternalServer(c, "Failed to create session")
		return
	}

	utils.Success(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Logout clears the session cookie.
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.authSvc.EndSession(c); err != nil {
		logger.Error("Failed to clear session: %v", err)
		utils.ProblemInternalServer(c, "Failed to end session")
		return
	}
	utils.Success(c, utils.MessageResponse{Message: "Logged out"})
}
