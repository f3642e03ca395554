package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-booking/config"
	"github.com/yeremiapane/table-booking/database"
	"github.com/yeremiapane/table-booking/kds"
	"github.com/yeremiapane/table-booking/middlewares"
	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/router"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	utils.InitLoggerWithLevel(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database hanya untuk journal audit
	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	journal := services.NewJournal(db)
	journal.Interval = cfg.JournalInterval
	journal.Start()

	hub := kds.NewBoardHub()
	svc := services.NewBookingService(models.NewRestaurant(), journal, hub)

	if cfg.SeedSampleData {
		services.SeedSampleData(svc)
		utils.InfoLogger.Printf("Sample data loaded: %d tables", len(svc.Tables()))
	}

	r := router.SetupRouter(router.AppContext{
		Service:     svc,
		Journal:     journal,
		Hub:         hub,
		RateLimiter: middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		CORSOrigin:  cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.InfoLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
	journal.Stop()
}
