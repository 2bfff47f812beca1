package handler

import (
	"errors"
	"net/http"

	"github.com/Sharanupriya/GrocerDash/internal/auth/credentials"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, err := h.credentials.Register(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.establishSession(c, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}
