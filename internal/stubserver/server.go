// Package stubserver is a local, in-memory implementation of the catalog
// and order API the storefront consumes. It exists for demos and end-to-end
// tests; it is not part of the storefront itself.
package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/domain"
)

// Server serves the catalog fixture and accepts orders, re-validating each
// submission the way the real backend does.
type Server struct {
	products []domain.Product
	byID     map[string]domain.Product
	logger   *zap.Logger
}

// NewServer creates a stub server over the given catalog.
func NewServer(products []domain.Product, logger *zap.Logger) *Server {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Server{
		products: products,
		byID:     byID,
		logger:   logger,
	}
}

// Router creates and configures the Gin router.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(s.logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/product/", s.handleListProducts)
		api.GET("/product/:id", s.handleGetProduct)
		api.POST("/order", s.handleCreateOrder)
	}

	return router
}

func (s *Server) handleListProducts(c *gin.Context) {
	category := c.Query("category")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	items := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		items = append(items, p)
		if limit > 0 && len(items) == limit {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (s *Server) handleGetProduct(c *gin.Context) {
	product, ok := s.byID[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed order"})
		return
	}

	if !req.Payment.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order has no purchasable items"})
		return
	}

	// The wire format carries item ids without quantities, so the total is
	// taken from the client after the items themselves check out. Priceless
	// products must never appear in an order.
	for _, id := range req.Items {
		product, ok := s.byID[id]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product: " + id})
			return
		}
		if product.Priceless() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product cannot be purchased: " + id})
			return
		}
	}
	if req.Total <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order total must be positive"})
		return
	}

	orderID := uuid.NewString()
	s.logger.Info("Order accepted",
		zap.String("order_id", orderID),
		zap.Float64("total", req.Total),
		zap.Int("items", len(req.Items)),
	)
	c.JSON(http.StatusOK, domain.OrderResponse{ID: orderID, Total: req.Total})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
