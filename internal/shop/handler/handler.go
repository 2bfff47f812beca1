package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sharanupriya/GrocerDash/internal/cart"
	"github.com/Sharanupriya/GrocerDash/internal/catalog"
	"github.com/Sharanupriya/GrocerDash/internal/checkout"
	"github.com/Sharanupriya/GrocerDash/internal/logger"
	"github.com/Sharanupriya/GrocerDash/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Catalog lists the storefront products.
type Catalog interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

// CartService is the per-user cart contract.
type CartService interface {
	AddToCart(ctx context.Context, userID, productID int64, quantity int32) (cart.Line, error)
	ViewCart(ctx context.Context, userID int64) ([]cart.Line, []catalog.Product, error)
}

// CheckoutService converts carts into orders.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, userID int64) (*checkout.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]checkout.Order, error)
}

type Handler struct {
	catalog  Catalog
	cart     CartService
	checkout CheckoutService
}

func NewHandler(catalog Catalog, cart CartService, checkout CheckoutService) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
	}
}

// RegisterPublic mounts the routes that need no session.
func (h *Handler) RegisterPublic(r *gin.Engine) {
	r.GET("/", h.ListProducts)
}

// RegisterProtected mounts the session-gated routes on a group that
// already carries the auth middleware.
func (h *Handler) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/cart", h.AddToCart)
	g.GET("/cart", h.ViewCart)
	g.POST("/order", h.PlaceOrder)
	g.GET("/orders", h.ListOrders)
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list products", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

func (h *Handler) AddToCart(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	line, err := h.cart.AddToCart(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidProduct),
			errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, cart.ErrUnknownProduct):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown product"})
		default:
			logger.Error("failed to add cart line", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": line})
}

func (h *Handler) ViewCart(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	lines, products, err := h.cart.ViewCart(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to fetch cart", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    lines,
		"products": products,
	})
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "your cart is empty"})
			return
		}
		logger.Error("failed to place order", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	orders, err := h.checkout.ListOrders(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list orders", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
