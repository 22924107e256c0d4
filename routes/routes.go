package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/middleware"
)

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        cfg.MaxAge,
	}

	// Credentials cannot be combined with a wildcard origin.
	if cfg.AllowsAnyOrigin() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
		c.AllowCredentials = true
	}
	return c
}

// SetupRouter wires the booking API onto a fresh gin engine.
func SetupRouter(
	cfg config.CORSConfig,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.DELETE("/:id", bc.CancelBooking)
		}

		api.GET("/rooms", rc.GetRooms)
		api.GET("/room-types", rc.GetRoomTypes)
	}

	return r
}
