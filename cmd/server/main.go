package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/systemdesignlab/content-api/internal/api"
	"github.com/systemdesignlab/content-api/internal/config"
	"github.com/systemdesignlab/content-api/internal/repository/postgres"
	"github.com/systemdesignlab/content-api/internal/service"
	"github.com/systemdesignlab/content-api/internal/session"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The store connects lazily on first use. A missing or unreachable
	// database is not fatal here: public reads fall back to the bundled
	// snapshot until the store becomes available.
	store := postgres.NewStore(cfg.DatabaseURL)
	repos := postgres.NewRepositories(store)

	codec := session.NewCodec(cfg.AdminJWTSecret)
	services := service.NewServices(repos, codec, cfg)

	router := api.NewRouter(services, codec, cfg)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
