// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globtrek/internal/http/handlers"
	"globtrek/internal/http/middleware"
	"globtrek/internal/modules/hotels"
	"globtrek/internal/modules/planner"
)

func NewRouter(plannerService *planner.Service, hotelService *hotels.Service) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(plannerService)
	r.POST("/api/ai/plan", planHandler.Generate)

	hotelHandler := handlers.NewHotelHandler(hotelService)
	r.GET("/api/hotels", hotelHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// The plan endpoint answers wrong-method requests explicitly.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		if c.Request.URL.Path == "/api/ai/plan" {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Use POST"})
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
