package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crickbox/config"
	"crickbox/cron"
	"crickbox/database"
	blockedRepo "crickbox/database/repository/blocked"
	bookingRepo "crickbox/database/repository/booking"
	venueRepo "crickbox/database/repository/venue"
	"crickbox/handlers"
	"crickbox/middleware"
	"crickbox/routes"
	"crickbox/services/booking"
	"crickbox/services/notification"
	"crickbox/services/realtime"
	"crickbox/services/tasks"
	"crickbox/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSelectionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	blRepo := blockedRepo.NewMongoBlockedRepo()
	vnRepo := venueRepo.NewMongoVenueRepo()

	// services.
	hub := realtime.NewRedisHub(utils.GetCacheClient(), logger)
	gatewaySvc := booking.NewFormPostGateway(
		config.AppConfig.GatewaySPURL,
		config.AppConfig.GatewayClientCode,
		config.AppConfig.GatewaySecret,
	)
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	taskQueue := tasks.NewQueue(queueClient)

	selectionSvc := &booking.DefaultSelectionService{
		Cache:       utils.GetSelectionCacheClient(),
		VenueRepo:   vnRepo,
		BookingRepo: bkRepo,
		BlockedRepo: blRepo,
		TTL:         time.Duration(config.AppConfig.SelectionTTLMin) * time.Minute,
	}
	orchestrator := &booking.DefaultBookingOrchestrator{
		Repo:      bkRepo,
		VenueRepo: vnRepo,
		Selection: selectionSvc,
		Gateway:   gatewaySvc,
		Hub:       hub,
		Queue:     taskQueue,
	}
	notifSvc := notification.NewNotificationService(database.DB())
	wsGateway := realtime.NewGateway(hub, logger)

	// handlers.
	slotHandler := handlers.NewSlotHandler(bkRepo, blRepo, vnRepo)
	selectionHandler := handlers.NewSelectionHandler(selectionSvc)
	bookingHandler := handlers.NewBookingHandler(orchestrator)
	paymentHandler := handlers.NewPaymentHandler(orchestrator)
	blockHandler := handlers.NewBlockHandler(blRepo, vnRepo, hub)

	hb := &handlers.HandlerBundle{
		GetDayGridHandler:  slotHandler.GetDayGrid,
		GetSnapshotHandler: slotHandler.GetSnapshot,

		StartSelectionHandler: selectionHandler.StartSelection,
		ToggleSlotHandler:     selectionHandler.ToggleSlot,
		GetSelectionHandler:   selectionHandler.GetSelection,
		ClearSelectionHandler: selectionHandler.ClearSelection,

		SubmitBookingHandler: bookingHandler.SubmitBooking,
		RetryPaymentHandler:  bookingHandler.RetryPayment,

		HandoffPageHandler:   paymentHandler.HandoffPage,
		PaymentReturnHandler: paymentHandler.PaymentReturn,

		CreateBlockHandler: blockHandler.CreateBlock,
		DeleteBlockHandler: blockHandler.DeleteBlock,

		WebSocketHandler: wsGateway.HandleWebSocket,
	}
	routes.RegisterRoutes(router, hb)

	// Background worker: notification dispatch and stale hold expiry.
	cron.InitBookingWorker(notifSvc, bkRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
