package main

import (
	"log"
	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/handlers"
	"wedding-backend/middleware"
	"wedding-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Link WhatsApp session (optional, sends are recorded as failed without it)
	if config.AppConfig.WhatsAppEnabled {
		wa, err := services.NewWhatsAppService(config.AppConfig.WhatsAppDataDir)
		if err != nil {
			log.Println("⚠️  WhatsApp unavailable, notifications will be recorded as failed:", err)
		} else if err := wa.Connect(); err != nil {
			log.Println("⚠️  WhatsApp connect failed, notifications will be recorded as failed:", err)
		} else {
			services.GetNotifier().SetMessenger(wa)
			defer wa.Disconnect()
			log.Println("✅ WhatsApp connected successfully")
		}
	}

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// AUTH ROUTES (public)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ==========================================
	// RSVP ROUTES (public, invite-code keyed)
	// ==========================================
	rsvp := r.Group("/rsvp")
	{
		rsvp.GET("/search", handlers.SearchFamily)
		rsvp.POST("/confirm", handlers.ConfirmRSVP)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		// Families
		api.POST("/families", handlers.CreateFamily)
		api.GET("/families", handlers.GetFamilies)
		api.GET("/families/:id", handlers.GetFamily)
		api.PATCH("/families/:id", handlers.UpdateFamily)
		api.DELETE("/families/:id", handlers.DeleteFamily)
		api.GET("/families/:id/qr", handlers.FamilyQR)

		// Guests
		api.POST("/guests", handlers.CreateGuest)
		api.GET("/guests", handlers.GetGuests)
		api.GET("/guests/:id", handlers.GetGuest)
		api.PATCH("/guests/:id", handlers.UpdateGuest)
		api.DELETE("/guests/:id", handlers.DeleteGuest)

		// Tables & seats
		api.POST("/tables", handlers.CreateTable)
		api.GET("/tables", handlers.GetTables)
		api.GET("/tables/:id", handlers.GetTable)
		api.PATCH("/tables/:id", handlers.UpdateTable)
		api.DELETE("/tables/:id", handlers.DeleteTable)
		api.PUT("/seats/:id/assign", handlers.AssignSeat)

		// Dashboard
		api.GET("/stats", handlers.GetStats)

		// Event settings
		api.GET("/settings", handlers.GetSettings)
		api.PUT("/settings", handlers.UpdateSettings)

		// Notifications
		api.POST("/notifications/send", handlers.SendNotifications)
		api.GET("/notifications", handlers.GetNotifications)
	}

	// Start server
	port := config.AppConfig.Port
	log.Printf("🚀 %s server starting on port %s", config.AppConfig.AppName, port)

	addr := "0.0.0.0:" + port
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
