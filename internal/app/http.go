package app

import (
	"context"

	authhandler "github.com/Sharanupriya/GrocerDash/internal/auth/handler"

	"github.com/Sharanupriya/GrocerDash/internal/auth/credentials"
	"github.com/Sharanupriya/GrocerDash/internal/auth/provider"
	"github.com/Sharanupriya/GrocerDash/internal/auth/provider/google"
	"github.com/Sharanupriya/GrocerDash/internal/auth/resolver"
	"github.com/Sharanupriya/GrocerDash/internal/cart"
	"github.com/Sharanupriya/GrocerDash/internal/catalog"
	"github.com/Sharanupriya/GrocerDash/internal/checkout"
	"github.com/Sharanupriya/GrocerDash/internal/config"
	"github.com/Sharanupriya/GrocerDash/internal/logger"
	"github.com/Sharanupriya/GrocerDash/internal/metrics"
	"github.com/Sharanupriya/GrocerDash/internal/middleware"
	"github.com/Sharanupriya/GrocerDash/internal/session"
	shophandler "github.com/Sharanupriya/GrocerDash/internal/shop/handler"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	credentialService := credentials.NewService(infra.DB)
	identityResolver := resolver.NewDBResolver(infra.DB)

	var oauthProviders []provider.OAuthProvider
	if cfg.GoogleClientID != "" {
		googleProvider, err := google.New(
			ctx,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		)
		if err != nil {
			return nil, nil, err
		}
		oauthProviders = append(oauthProviders, googleProvider)
	} else {
		logger.Info("google oauth not configured, skipping provider", nil)
	}

	registry := provider.NewRegistry(oauthProviders...)

	authHandler := authhandler.NewHandler(
		credentialService,
		sessionStore,
		registry,
		identityResolver,
	)

	catalogRepo := catalog.NewRepository(infra.DB)
	cartService := cart.NewService(cart.NewPostgresRepository(infra.DB), catalogRepo)
	checkoutService := checkout.NewService(checkout.NewPostgresRepository(infra.DB))

	shopHandler := shophandler.NewHandler(catalogRepo, cartService, checkoutService)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)
	serverMetrics := metrics.NewServerMetrics("server")

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(metrics.GinInstrument(serverMetrics))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)
	shopHandler.RegisterPublic(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(middleware.GinRequireAuth(authMiddleware))

	shopHandler.RegisterProtected(protected)
	protected.GET("/logout", authHandler.Logout)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
