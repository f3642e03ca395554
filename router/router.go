package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-booking/controllers"
	"github.com/yeremiapane/table-booking/kds"
	"github.com/yeremiapane/table-booking/middlewares"
	"github.com/yeremiapane/table-booking/services"
)

// AppContext dibuat sekali di main lalu diteruskan ke semua handler.
// Journal, Hub, dan RateLimiter boleh nil.
type AppContext struct {
	Service     *services.BookingService
	Journal     *services.Journal
	Hub         *kds.BoardHub
	RateLimiter *middlewares.RateLimiter
	CORSOrigin  string
}

func SetupRouter(app AppContext) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if app.CORSOrigin == "" {
		app.CORSOrigin = "*"
	}
	if app.Hub == nil {
		app.Hub = kds.NewBoardHub()
	}

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(app.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if app.RateLimiter != nil {
		r.Use(app.RateLimiter.RateLimit())
	}

	// Inisialisasi controller
	tableCtrl := controllers.NewTableController(app.Service)
	bookingCtrl := controllers.NewBookingController(app.Service)
	dashboardCtrl := controllers.NewDashboardController(app.Service, app.Journal)
	boardCtrl := controllers.NewBoardController(app.Hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// TABLES
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/available", tableCtrl.GetAvailableTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	r.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	r.POST("/tables/:table_id/occupy", tableCtrl.OccupyTable)
	r.POST("/tables/:table_id/release", tableCtrl.ReleaseTable)

	// BOOKINGS
	r.GET("/bookings", bookingCtrl.GetActiveBookings)
	r.GET("/bookings/history", bookingCtrl.GetBookingHistory)
	r.POST("/bookings", bookingCtrl.CreateBooking)
	r.POST("/bookings/:booking_id/cancel", bookingCtrl.CancelBooking)

	// DASHBOARD
	r.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
	r.GET("/journal", dashboardCtrl.GetJournal)

	// WebSocket papan meja
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.BoardRoleMiddleware())
	{
		wsGroup.GET("", boardCtrl.BoardHandler)
	}

	return r
}
