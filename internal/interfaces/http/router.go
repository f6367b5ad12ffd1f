package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simvia/internal/application/checkout"
	"simvia/internal/application/orders"
	"simvia/internal/application/storefront"
	"simvia/internal/interfaces/http/handlers"
	"simvia/internal/interfaces/http/middleware"
	"simvia/internal/shared/config"
	"simvia/internal/shared/logger"
)

// Router wires handlers and middleware onto the gin engine.
type Router struct {
	engine          *gin.Engine
	catalogHandler  *handlers.CatalogHandler
	checkoutHandler *handlers.CheckoutHandler
	orderHandler    *handlers.OrderHandler
	serverConfig    config.ServerConfig
}

func NewRouter(
	storefrontService *storefront.Service,
	checkoutService *checkout.Service,
	orderService *orders.Service,
	serverConfig config.ServerConfig,
	log logger.Interface,
) *Router {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(serverConfig.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	return &Router{
		engine:          engine,
		catalogHandler:  handlers.NewCatalogHandler(storefrontService),
		checkoutHandler: handlers.NewCheckoutHandler(checkoutService),
		orderHandler:    handlers.NewOrderHandler(orderService),
		serverConfig:    serverConfig,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	{
		api.GET("/countries", r.catalogHandler.ListCountries)
		api.GET("/countries/:slug", r.catalogHandler.GetCountry)
		api.GET("/products", r.catalogHandler.ListProducts)
		api.GET("/products/:slug", r.catalogHandler.GetProduct)

		api.POST("/checkout", r.checkoutHandler.CreateOrder)
		api.GET("/orders/:number", r.orderHandler.LookupOrder)
	}

	admin := r.engine.Group("/api/v1/admin")
	admin.Use(middleware.AdminToken(r.serverConfig.AdminToken))
	{
		admin.GET("/orders", r.orderHandler.ListOrders)
		admin.GET("/orders/:id", r.orderHandler.GetOrder)
		admin.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
