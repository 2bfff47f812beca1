package handler

import (
	"net/http"

	"github.com/Sharanupriya/GrocerDash/internal/logger"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, err := h.credentials.Authenticate(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := h.establishSession(c, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	logger.Info("login success", map[string]any{
		"user_id": userID,
		"ip":      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"status": "logged_in"})
}
