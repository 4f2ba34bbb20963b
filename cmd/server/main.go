package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/moto-maintenance/internal/auth"
	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/handlers"
	"github.com/ukydev/moto-maintenance/internal/ingest"
	"github.com/ukydev/moto-maintenance/internal/middleware"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")
	collections := db.NewCollections(client, envOr("MONGO_DB", "moto_maintenance"))

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}

	// Optional MQTT ingest for odometer readings from connected vehicles.
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		subscriber, err := ingest.NewSubscriber(broker, envOr("MQTT_CLIENT_ID", "moto-maintenance-api"), collections.Vehicles)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MQTT broker")
		}
		if err := subscriber.Start(); err != nil {
			log.WithError(err).Fatal("Failed to subscribe to odometer topic")
		}
		defer subscriber.Stop()
	}

	mux := handlers.NewRouter(authService, collections)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := middleware.RequestLogger(
		rateLimiter.RateLimit(100, 60)(
			authMiddleware.Authenticate(mux)))

	port := envOr("PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.WithField("port", port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Shutdown error")
	}
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Error("Mongo disconnect error")
	}
}
