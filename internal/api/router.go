package api

import (
	"net/http"

	"commute-notice/internal/api/middleware"
	"commute-notice/internal/modules/auth"
	"commute-notice/internal/modules/contacts"
	"commute-notice/internal/modules/notify"
	"commute-notice/internal/modules/places"
	"commute-notice/internal/modules/trips"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	authHandler *auth.Handler,
	placesHandler *places.Handler,
	tripsHandler *trips.Handler,
	contactsHandler *contacts.Handler,
	notifyHandler *notify.Handler,
	jwtSecret string,
) {
	authMiddleware := middleware.JWTAuth(jwtSecret)

	// --- Public Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Commute calculator API"})
	})

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// --- Municipality table (in-province calculation tab) ---
	placesGroup := e.Group("/places", authMiddleware)
	{
		placesGroup.GET("", placesHandler.List)
		placesGroup.POST("/reload", placesHandler.Reload)
		placesGroup.GET("/:name", placesHandler.Get)
	}

	// --- Trip assessments (both calculation tabs) ---
	tripsGroup := e.Group("/trips", authMiddleware)
	{
		tripsGroup.POST("/table", tripsHandler.AssessTable)
		tripsGroup.POST("/route", tripsHandler.AssessRoute)
	}

	// --- Notification form support ---
	e.GET("/contacts", contactsHandler.List, authMiddleware)
	e.POST("/notifications", notifyHandler.Send, authMiddleware)
}
