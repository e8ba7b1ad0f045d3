package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Refresh(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)

	CreateSession(c *ginext.Context)
	ListSessions(c *ginext.Context)
	GetSession(c *ginext.Context)
	UpdateSession(c *ginext.Context)
	DeleteSession(c *ginext.Context)
	ToggleSession(c *ginext.Context)
	GetPublicSession(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	ListSessionBookings(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
}

// InitRouter builds the engine. requireAuth guards every host-only route;
// mw runs on all of them.
func InitRouter(mode string, h Handler, requireAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/refresh", h.Refresh)
		api.GET("/auth/profile", requireAuth, h.GetProfile)
		api.PUT("/auth/profile", requireAuth, h.UpdateProfile)

		// Public
		api.GET("/public/sessions/:id", h.GetPublicSession)
		api.POST("/bookings/sessions/:sessionId", h.CreateBooking)

		sessions := api.Group("/sessions", requireAuth)
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("", h.ListSessions)
			sessions.GET("/:id", h.GetSession)
			sessions.PUT("/:id", h.UpdateSession)
			sessions.DELETE("/:id", h.DeleteSession)
			sessions.PUT("/:id/toggle-active", h.ToggleSession)
		}

		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.GET("", h.ListBookings)
			bookings.GET("/sessions/:sessionId", h.ListSessionBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PATCH("/:id/status", h.UpdateBookingStatus)
			bookings.DELETE("/:id", h.DeleteBooking)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
