// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"localhelp/config"
	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config *config.Config

	AuthHandler         *handler.AuthHandler
	PostHandler         *handler.PostHandler
	LostFoundHandler    *handler.LostFoundHandler
	ConversationHandler *handler.ConversationHandler
	AddressHandler      *handler.AddressHandler
	RatingHandler       *handler.RatingHandler
	TileHandler         *handler.TileHandler
	TestHandler         *handler.TestHandler

	AuthMiddleware *middleware.AuthMiddleware
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Basemap tiles, public and unauthenticated
	e.GET("/tiles/:z/:x/:y", r.params.TileHandler.GetTile)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google", r.params.AuthHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.GET("/profile", r.params.AuthHandler.GetProfile, r.params.AuthMiddleware.Authenticate)
	}

	// Post routes; reads work without a session, nearby search uses the
	// caller's location when a token is present
	postGroup := e.Group("/posts")
	{
		postGroup.GET("/nearby", r.params.PostHandler.SearchNearby, r.params.AuthMiddleware.OptionalAuthenticate)
		postGroup.GET("/mine", r.params.PostHandler.GetMyPosts, r.params.AuthMiddleware.Authenticate)
		postGroup.GET("/:id", r.params.PostHandler.GetPost, r.params.AuthMiddleware.OptionalAuthenticate)
		postGroup.GET("/:id/qrcode", r.params.PostHandler.GetPostQR)
		postGroup.POST("", r.params.PostHandler.CreatePost, r.params.AuthMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.params.PostHandler.DeletePost, r.params.AuthMiddleware.Authenticate)
	}

	// Lost & found routes
	lostFoundGroup := e.Group("/lostfound")
	{
		lostFoundGroup.GET("/nearby", r.params.LostFoundHandler.SearchNearby, r.params.AuthMiddleware.OptionalAuthenticate)
		lostFoundGroup.GET("/categories", r.params.LostFoundHandler.ListCategories)
		lostFoundGroup.GET("/mine", r.params.LostFoundHandler.GetMyItems, r.params.AuthMiddleware.Authenticate)
		lostFoundGroup.GET("/:id", r.params.LostFoundHandler.GetItem)
		lostFoundGroup.POST("", r.params.LostFoundHandler.CreateItem, r.params.AuthMiddleware.Authenticate)
		lostFoundGroup.PATCH("/:id/status", r.params.LostFoundHandler.UpdateStatus, r.params.AuthMiddleware.Authenticate)
	}

	// Conversation routes, all require a session
	conversationGroup := e.Group("/conversations")
	conversationGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		conversationGroup.GET("", r.params.ConversationHandler.ListConversations)
		conversationGroup.GET("/status", r.params.ConversationHandler.CheckStatus)
		conversationGroup.GET("/:id", r.params.ConversationHandler.GetConversation)
		conversationGroup.POST("", r.params.ConversationHandler.StartConversation)
		conversationGroup.PATCH("/:id/accept", r.params.ConversationHandler.AcceptConversation)
	}

	// Registered address routes, all require a session
	addressGroup := e.Group("/address")
	addressGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		addressGroup.GET("", r.params.AddressHandler.GetAddress)
		addressGroup.POST("", r.params.AddressHandler.SetAddress)
		addressGroup.POST("/verify", r.params.AddressHandler.VerifyAddress)
	}

	// Rating routes; summaries are public, rating requires a session
	ratingGroup := e.Group("/ratings")
	{
		ratingGroup.GET("/:userId", r.params.RatingHandler.GetSummary)
		ratingGroup.GET("/:userId/details", r.params.RatingHandler.GetDetails)
		ratingGroup.POST("", r.params.RatingHandler.RateUser, r.params.AuthMiddleware.Authenticate)
	}

	// Diagnostic routes, only mounted outside production
	if r.params.Config.TestRoutes != nil && r.params.Config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/echo", r.params.TestHandler.Echo)
			testGroup.GET("/app-error", r.params.TestHandler.AppError)
			testGroup.GET("/plain-error", r.params.TestHandler.PlainError)
			testGroup.GET("/panic", r.params.TestHandler.Panic)
		}
	}
}
