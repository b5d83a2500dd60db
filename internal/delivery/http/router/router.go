// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SellerHandler   *handler.SellerHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	InviteHandler   *handler.InviteHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	sellerHandler   *handler.SellerHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	inviteHandler   *handler.InviteHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		sellerHandler:   params.SellerHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		inviteHandler:   params.InviteHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout-all", r.authHandler.LogoutAllDevices, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public seller registration; verification happens in the owner surface.
	e.POST("/sellers/register", r.sellerHandler.Register)

	// Owner surface. Denied page loads redirect home instead of erroring.
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.ResolveSession)
	ownerGroup.Use(r.authMiddleware.GuardOwner())
	{
		ownerGroup.GET("/sellers", r.sellerHandler.List)
		ownerGroup.GET("/sellers/:id", r.sellerHandler.Get)
		ownerGroup.POST("/sellers/:id/verify", r.sellerHandler.Verify)
		ownerGroup.PATCH("/sellers/:id/controls", r.sellerHandler.UpdateControls)
		ownerGroup.PATCH("/sellers/:id/credentials", r.sellerHandler.UpdateCredentials)
	}

	// Category taxonomy is owner-managed but readable by any staff session.
	categoryGroup := e.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.GET("", r.categoryHandler.Tree)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.POST("", r.categoryHandler.Create, r.authMiddleware.RequireRole(entity.RoleOwner))
		categoryGroup.PUT("/:id", r.categoryHandler.Update, r.authMiddleware.RequireRole(entity.RoleOwner))
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, r.authMiddleware.RequireRole(entity.RoleOwner))
	}

	// Seller panel surface: catalog and invites, scoped per seller. Only the
	// matching admin passes the guard; the usecases re-check the session
	// against the target seller.
	sellerGroup := e.Group("/sellers/:sellerID")
	sellerGroup.Use(r.authMiddleware.ResolveSession)
	sellerGroup.Use(r.authMiddleware.GuardSellerAdmin("sellerID"))
	{
		sellerGroup.GET("", r.sellerHandler.Panel)
		sellerGroup.GET("/products", r.productHandler.List)
		sellerGroup.POST("/products", r.productHandler.Create)
		sellerGroup.GET("/invite", r.inviteHandler.Generate)
		sellerGroup.GET("/invite/qr.png", r.inviteHandler.QRImage)
	}

	// Product routes addressed by product id.
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.PATCH("/:id/stock", r.productHandler.UpdateStock)
		productGroup.PATCH("/:id/published", r.productHandler.SetPublished)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	// Storefront surface for invited customers. Published products only.
	shopGroup := e.Group("/shop/:sellerID")
	shopGroup.Use(r.authMiddleware.ResolveSession)
	shopGroup.Use(r.authMiddleware.GuardStorefront("sellerID"))
	{
		shopGroup.GET("/products", r.productHandler.Storefront)
	}

	// Image uploads for staff sessions.
	mediaGroup := e.Group("/media")
	mediaGroup.Use(r.authMiddleware.Authenticate)
	{
		mediaGroup.POST("/images", r.mediaHandler.Upload)
		mediaGroup.DELETE("/images", r.mediaHandler.Delete)
	}
}
