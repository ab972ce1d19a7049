package handler

import (
	"net/http"
	"strconv"

	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"
	"betmachine/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	walletSvc ports.WalletService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(walletSvc ports.WalletService) *UserHandler {
	return &UserHandler{walletSvc: walletSvc}
}

// GetUser handles GET /api/user/:id. The account is provisioned with the
// starting balance on first contact.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, apperror.Validation("Invalid user id"))
		return
	}

	user, err := h.walletSvc.GetOrCreate(c.Request.Context(), userID, c.Query("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Leaderboard handles GET /api/leaderboard.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	users, err := h.walletSvc.Leaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"leaderboard": users})
}

// HealthCheck returns a deep health handler pinging every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
