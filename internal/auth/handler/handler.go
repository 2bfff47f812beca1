package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Sharanupriya/GrocerDash/internal/auth/provider"
	"github.com/Sharanupriya/GrocerDash/internal/auth/resolver"
	"github.com/Sharanupriya/GrocerDash/internal/logger"
	"github.com/Sharanupriya/GrocerDash/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionTTL = 24 * time.Hour

// CredentialService is the username/password contract the handler
// consumes. Satisfied by credentials.Service; stubbed in tests.
type CredentialService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (int64, error)
}

type Handler struct {
	credentials  CredentialService
	sessionStore session.Store
	providers    *provider.Registry
	resolver     resolver.Resolver
}

func NewHandler(
	credentials CredentialService,
	sessionStore session.Store,
	registry *provider.Registry,
	resolver resolver.Resolver,
) *Handler {
	return &Handler{
		credentials:  credentials,
		sessionStore: sessionStore,
		providers:    registry,
		resolver:     resolver,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/oauth/login/:provider", h.oauthLogin)
	r.GET("/oauth/callback/:provider", h.oauthCallback)
}

// establishSession persists a new session for userID and issues the
// cookie. Login, signup and the OAuth callback all funnel through here.
func (h *Handler) establishSession(c *gin.Context, userID int64) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(sessionTTL)

	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		return err
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	return nil
}

func (h *Handler) Logout(c *gin.Context) {
	// 1. Read session cookie (same pattern as auth middleware)
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// 2. Delete session from store (best-effort)
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)

		logger.Info("logout", map[string]any{
			"ip": c.ClientIP(),
		})
	}

	// 3. Clear cookie (must pass options)
	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// 4. Idempotent response
	c.Status(http.StatusNoContent)
}
