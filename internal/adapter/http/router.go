package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/augustolallana/api-omega/internal/adapter/http/middleware"
	"github.com/augustolallana/api-omega/internal/logging"
)

// Handlers bundles every resource handler the router mounts.
type Handlers struct {
	Auth           *AuthHandler
	Categories     *CategoryHandler
	Products       *ProductHandler
	Brands         *BrandHandler
	Tags           *TagHandler
	Promotions     *PromotionHandler
	Images         *ImageHandler
	Cart           *CartHandler
	Orders         *OrderHandler
	Addresses      *AddressHandler
	PaymentMethods *PaymentMethodHandler
}

// NewRouter wires the REST surface. Catalog reads are public, catalog
// writes are admin-only, and everything touching a user's cart, orders
// or addresses requires a bearer token.
func NewRouter(h Handlers, authz *middleware.Authz, base *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())
	r.Use(middleware.Logging(base))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", authz.RequireAuth(), h.Auth.Logout)
	}
	v1.GET("/users/me", authz.RequireAuth(), h.Auth.Me)
	v1.GET("/users", authz.RequireAdmin(), h.Auth.ListUsers)

	categories := v1.Group("/categories")
	{
		categories.GET("", h.Categories.List)
		categories.GET("/:id", h.Categories.Get)
		categories.POST("", authz.RequireAdmin(), h.Categories.Create)
		categories.PUT("/:id", authz.RequireAdmin(), h.Categories.Update)
		categories.DELETE("/:id", authz.RequireAdmin(), h.Categories.Delete)
	}

	products := v1.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/:id", h.Products.Get)
		products.POST("", authz.RequireAdmin(), h.Products.Create)
		products.PUT("/:id", authz.RequireAdmin(), h.Products.Update)
		products.DELETE("/:id", authz.RequireAdmin(), h.Products.Delete)
	}

	brands := v1.Group("/brands")
	{
		brands.GET("", h.Brands.List)
		brands.GET("/:id", h.Brands.Get)
		brands.POST("", authz.RequireAdmin(), h.Brands.Create)
		brands.PUT("/:id", authz.RequireAdmin(), h.Brands.Update)
		brands.DELETE("/:id", authz.RequireAdmin(), h.Brands.Delete)
	}

	tags := v1.Group("/tags")
	{
		tags.GET("", h.Tags.List)
		tags.GET("/:id", h.Tags.Get)
		tags.POST("", authz.RequireAdmin(), h.Tags.Create)
		tags.PUT("/:id", authz.RequireAdmin(), h.Tags.Update)
		tags.DELETE("/:id", authz.RequireAdmin(), h.Tags.Delete)
	}

	promotions := v1.Group("/promotions")
	{
		promotions.GET("", h.Promotions.List)
		promotions.GET("/:id", h.Promotions.Get)
		promotions.POST("", authz.RequireAdmin(), h.Promotions.Create)
		promotions.PUT("/:id", authz.RequireAdmin(), h.Promotions.Update)
		promotions.DELETE("/:id", authz.RequireAdmin(), h.Promotions.Delete)
	}

	images := v1.Group("/images")
	{
		images.GET("", h.Images.List)
		images.GET("/:id", h.Images.Get)
		images.POST("", authz.RequireAdmin(), h.Images.Create)
		images.PUT("/:id", authz.RequireAdmin(), h.Images.Update)
		images.DELETE("/:id", authz.RequireAdmin(), h.Images.Delete)
	}

	cart := v1.Group("/cart", authz.RequireAuth())
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:itemID", h.Cart.UpdateItem)
		cart.DELETE("/items/:itemID", h.Cart.RemoveItem)
	}

	orders := v1.Group("/orders", authz.RequireAuth())
	{
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
		orders.POST("", h.Orders.Create)
		orders.POST("/checkout", h.Orders.Checkout)
		orders.PUT("/:id", h.Orders.Update)
		orders.DELETE("/:id", h.Orders.Delete)
	}

	addresses := v1.Group("/addresses", authz.RequireAuth())
	{
		addresses.GET("", h.Addresses.List)
		addresses.GET("/:id", h.Addresses.Get)
		addresses.POST("", h.Addresses.Create)
		addresses.PUT("/:id", h.Addresses.Update)
		addresses.DELETE("/:id", h.Addresses.Delete)
	}

	methods := v1.Group("/payment-methods")
	{
		methods.GET("", authz.RequireAuth(), h.PaymentMethods.List)
		methods.GET("/:id", authz.RequireAuth(), h.PaymentMethods.Get)
		methods.POST("", authz.RequireAdmin(), h.PaymentMethods.Create)
		methods.DELETE("/:id", authz.RequireAdmin(), h.PaymentMethods.Delete)
	}

	return r
}
