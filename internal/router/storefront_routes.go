package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/minhvo/retail-suite/internal/handler"
	"github.com/minhvo/retail-suite/internal/middleware"
)

// RegisterStorefront registers the customer-facing endpoints under
// /v1. Catalog browsing is public; cart, checkout, order history
// and account editing require a signed-in customer. Login and
// registration are rate limited per client IP.
func RegisterStorefront(e *echo.Echo, auth *handler.AuthHandler, shop *handler.StorefrontHandler, rdb *redis.Client) {
	g := e.Group("/v1")

	limit := middleware.LoginRateLimit(rdb, 10, time.Minute)
	g.POST("/auth/login", auth.CustomerLogin, limit)
	g.POST("/auth/register", auth.CustomerRegister, limit)
	g.POST("/auth/logout", auth.Logout)
	g.GET("/auth/me", auth.Me)

	// public catalog
	g.GET("/products", shop.Products)
	g.GET("/products/:id", shop.Product)

	// everything below needs a customer session
	cust := g.Group("", middleware.RequireCustomer)
	cust.GET("/cart", shop.Cart)
	cust.POST("/cart/items", shop.CartAdd)
	cust.PUT("/cart/items/:id", shop.CartSetQuantity)
	cust.DELETE("/cart/items/:id", shop.CartRemove)
	cust.GET("/checkout", shop.CheckoutOptions)
	cust.POST("/checkout", shop.Checkout)
	cust.GET("/orders", shop.Orders)
	cust.GET("/orders/:id/items", shop.OrderItems)
	cust.GET("/account", shop.Account)
	cust.PUT("/account", shop.AccountUpdate)
}
