// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kolotebe/internal/delivery/http/middleware"
	"kolotebe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BookHandler     *handler.BookHandler
	ListingHandler  *handler.ListingHandler
	UserHandler     *handler.UserHandler
	LocationHandler *handler.LocationHandler
	UploadHandler   *handler.UploadHandler
	OpenAPIHandler  *handler.OpenAPIHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	optionalAuth := r.params.AuthMiddleware.OptionalAuthenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.GET("/check-user", r.params.AuthHandler.CheckUser)
	}

	// Catalog routes. Reads are public, adding a book requires an account.
	api.POST("/books", r.params.BookHandler.AddBook, authenticate)
	api.GET("/books", r.params.BookHandler.SearchBooks)
	api.GET("/books/:id", r.params.BookHandler.GetBook)
	api.GET("/book-copies", r.params.BookHandler.ListMyCopies, authenticate)

	// Listing routes. The detail read resolves ownership when a token is
	// present but stays public.
	api.POST("/listings", r.params.ListingHandler.CreateListing, authenticate)
	api.GET("/listings", r.params.ListingHandler.ListListings)
	api.GET("/listings/:id", r.params.ListingHandler.GetListing, optionalAuth)
	api.PATCH("/listings/:id", r.params.ListingHandler.UpdateListing, authenticate)
	api.DELETE("/listings/:id", r.params.ListingHandler.DeleteListing, authenticate)
	api.GET("/listings/:id/qrcode", r.params.ListingHandler.GetListingQR)

	// Profile routes for the authenticated user.
	meGroup := api.Group("/users/me", authenticate)
	{
		meGroup.GET("", r.params.UserHandler.GetProfile)
		meGroup.PATCH("", r.params.UserHandler.UpdateProfile)
		meGroup.GET("/transactions", r.params.UserHandler.ListTransactions)
		meGroup.GET("/transfers", r.params.UserHandler.ListTransfers)
		meGroup.GET("/locations", r.params.LocationHandler.ListLocations)
		meGroup.POST("/locations", r.params.LocationHandler.CreateLocation)
		meGroup.PATCH("/locations/:id", r.params.LocationHandler.UpdateLocation)
		meGroup.DELETE("/locations/:id", r.params.LocationHandler.DeleteLocation)
	}

	// Uploads
	api.POST("/uploads", r.params.UploadHandler.UploadImage, authenticate)

	// API documents. The public one is open, the internal one is gated on
	// the developer role.
	api.GET("/openapi-public.json", r.params.OpenAPIHandler.PublicDocument)
	api.GET("/openapi-internal.json", r.params.OpenAPIHandler.InternalDocument, authenticate)
}
