package handler

import (
	"net/http"

	"github.com/Sharanupriya/GrocerDash/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) oauthLogin(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL := p.AuthCodeURL(state, codeChallenge)
	c.Redirect(http.StatusFound, authURL)
}

func (h *Handler) oauthCallback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid state",
		})
		return
	}

	errParam := c.Query("error")
	errDesc := c.Query("error_description")

	// Provider-side errors send the user back to a fresh login.
	if errParam != "" {
		logger.Warn("oidc callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     errDesc,
		})

		c.Redirect(http.StatusFound, "/login")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oidc callback missing code and error", nil)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "missing pkce verifier",
		})
		return
	}

	identity, err := p.ExchangeCode(
		c.Request.Context(),
		code,
		codeVerifier,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authentication failed",
		})
		return
	}

	userID, err := h.resolver.Resolve(c.Request.Context(), identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to resolve user",
		})
		return
	}

	if err := h.establishSession(c, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to persist session",
		})
		return
	}

	logger.Info("oauth login success", map[string]any{
		"provider": providerName,
		"user_id":  userID,
		"ip":       c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{
		"status": "authenticated",
	})
}
