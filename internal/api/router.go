package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/api/handler"
	"github.com/OscarMG4/space-booking-app/internal/api/middleware"
	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// Deps carries everything the router needs. Redis is nil when sessions live
// in memory.
type Deps struct {
	Sessions ports.SessionService
	Bookings ports.BookingService
	Spaces   ports.SpaceService
	Reviews  ports.ReviewService
	Users    ports.UserService

	Cookie handler.CookieOptions
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("space_booking"))
	e.Use(middleware.Session(deps.Sessions, deps.Cookie.Name))

	// --- Guards ---
	guestOnly := middleware.Guard(domain.RequireGuest)
	authed := middleware.Guard(domain.RequireAuthenticated)
	managerOnly := middleware.Guard(domain.RequireManager)
	adminOnly := middleware.Guard(domain.RequireAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.Cookie)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	spaceHandler := handler.NewSpaceHandler(deps.Spaces)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	userHandler := handler.NewUserHandler(deps.Users)

	// --- Auth routes ---
	e.GET("/auth/login", authHandler.LoginPrompt, guestOnly)
	e.POST("/auth/login", authHandler.Login, guestOnly)
	e.POST("/auth/register", authHandler.Register, guestOnly)
	e.POST("/auth/logout", authHandler.Logout, authed)
	e.POST("/auth/refresh", authHandler.Refresh, authed)
	e.GET("/auth/me", authHandler.Me, authed)

	// --- Spaces (read-only for every signed-in user) ---
	e.GET("/spaces", spaceHandler.List, authed)
	e.GET("/spaces/:id", spaceHandler.Get, authed)

	// --- Bookings ---
	bookings := e.Group("/bookings", authed)
	bookings.GET("", bookingHandler.List)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.PUT("/:id", bookingHandler.Update)
	bookings.POST("/:id/cancel", bookingHandler.Cancel)
	bookings.DELETE("/:id", bookingHandler.Delete)

	// --- Reviews ---
	e.POST("/reviews", reviewHandler.Submit, authed)

	// --- Space management (managers and admins) ---
	adminSpaces := e.Group("/admin/spaces", managerOnly)
	adminSpaces.GET("", spaceHandler.List)
	adminSpaces.POST("", spaceHandler.Create)
	adminSpaces.PUT("/:id", spaceHandler.Update)
	adminSpaces.DELETE("/:id", spaceHandler.Delete)

	// --- Review moderation (managers and admins) ---
	adminReviews := e.Group("/admin/reviews", managerOnly)
	adminReviews.GET("", reviewHandler.List)
	adminReviews.POST("/:id/approve", reviewHandler.Approve)
	adminReviews.POST("/:id/reject", reviewHandler.Reject)
	adminReviews.DELETE("/:id", reviewHandler.Delete)

	// --- User administration (admins only) ---
	adminUsers := e.Group("/admin/users", adminOnly)
	adminUsers.GET("", userHandler.List)
	adminUsers.POST("", userHandler.Create)
	adminUsers.GET("/:id", userHandler.Get)
	adminUsers.PUT("/:id", userHandler.Update)
	adminUsers.DELETE("/:id", userHandler.Delete)
	e.GET("/admin/roles", userHandler.Roles, adminOnly)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
