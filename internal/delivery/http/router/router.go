// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bakehouse/internal/delivery/http/middleware"
	"bakehouse/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	FastFoodHandler *handler.FastFoodHandler
	SettingsHandler *handler.SettingsHandler
	SessionHandler  *handler.SessionHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	products *handler.ProductHandler
	fastFood *handler.FastFoodHandler
	settings *handler.SettingsHandler
	sessions *handler.SessionHandler
	orders   *handler.OrderHandler
	auth     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		products: params.ProductHandler,
		fastFood: params.FastFoodHandler,
		settings: params.SettingsHandler,
		sessions: params.SessionHandler,
		orders:   params.OrderHandler,
		auth:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Reads are
// public; mutations sit behind RequireAdmin, which only enforces when the
// admin.requireToken flag is on.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	products := api.Group("/products")
	{
		products.GET("", r.products.List)
		products.GET("/:id", r.products.Get)
		products.POST("", r.products.Create, r.auth.RequireAdmin)
		products.PUT("/:id", r.products.Update, r.auth.RequireAdmin)
		products.DELETE("/:id", r.products.Delete, r.auth.RequireAdmin)
	}

	fastFood := api.Group("/fastfood")
	{
		fastFood.GET("", r.fastFood.List)
		fastFood.GET("/:id", r.fastFood.Get)
		fastFood.POST("", r.fastFood.Create, r.auth.RequireAdmin)
		fastFood.PUT("/:id", r.fastFood.Update, r.auth.RequireAdmin)
		fastFood.DELETE("/:id", r.fastFood.Delete, r.auth.RequireAdmin)
	}

	api.GET("/config", r.settings.Get)
	api.PUT("/config", r.settings.Update, r.auth.RequireAdmin)

	api.POST("/admin/login", r.sessions.Login)

	orders := api.Group("/orders")
	{
		orders.POST("/whatsapp-link", r.orders.WhatsAppLink)
		orders.GET("/whatsapp-qr", r.orders.WhatsAppQR)
	}
}
