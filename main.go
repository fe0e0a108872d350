package main

import (
	"log"
	"net/http"
	"os"

	"resortly/config"
	"resortly/controllers"
	"resortly/jobs"
	"resortly/routes"
	"resortly/services"
	"resortly/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	controllers.SetBookingFacade(services.NewBookingFacade(config.DB, config.RedisClient))
	controllers.SetNotifier(notification.NewMelodyService(m))

	jobs.SetBookingMaintainer(services.NewBookingMaintenanceService(config.DB))
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
