// File: carebook/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook/config"
	"carebook/handlers"
	"carebook/middleware"
	"carebook/routes"
	"carebook/services/catalog"
	"carebook/services/session"
	"carebook/storage"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}
	config.LoadConfig()
	logger := utils.GetLogger()

	kv := storage.InitRedis()

	ctx := context.Background()
	sessionStore := session.NewDefaultStore(ctx, kv)
	catalogStore := catalog.NewDefaultStore(ctx, kv)
	if saved := sessionStore.Current(); saved != nil {
		logger.Sugar().Infof("Restored session for %s", saved.Email)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions:     sessionStore,
		Auth:         handlers.NewAuthHandler(sessionStore),
		Doctors:      handlers.NewDoctorHandler(catalogStore),
		Appointments: handlers.NewAppointmentHandler(catalogStore),
		Admin:        handlers.NewAdminHandler(catalogStore),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
