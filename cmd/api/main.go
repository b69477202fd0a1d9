package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sneakercollection/sneakercollection-go/internal/config"
	"github.com/sneakercollection/sneakercollection-go/internal/handler"
	"github.com/sneakercollection/sneakercollection-go/internal/middleware"
	"github.com/sneakercollection/sneakercollection-go/internal/repository"
	"github.com/sneakercollection/sneakercollection-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	sneakerRepo := repository.NewSneakerRepository(db)

	userService := service.NewUserService(userRepo)
	sneakerService := service.NewSneakerService(sneakerRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)

	userHandler := handler.NewUserHandler(userService)
	sneakerHandler := handler.NewSneakerHandler(sneakerService)
	authHandler := handler.NewAuthHandler(authService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Anonymous routes: token issuance and user registration.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/Authentication", authHandler.HandleAuthenticate)
		r.Post("/api/User", userHandler.HandleCreate)
	})

	// Everything else requires a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/api/User", userHandler.HandleGet)
		r.Get("/api/User/GetByEmail", userHandler.HandleGetByEmail)
		r.Get("/api/User/{id}", userHandler.HandleGetByID)
		r.Patch("/api/User", userHandler.HandleUpdate)
		r.Delete("/api/User/{id}", userHandler.HandleDelete)

		r.Get("/api/Sneaker", sneakerHandler.HandleGet)
		r.Get("/api/Sneaker/GetByUserId", sneakerHandler.HandleGetByUserID)
		r.Get("/api/Sneaker/GetByUserEmail", sneakerHandler.HandleGetByUserEmail)
		r.Get("/api/Sneaker/{id}", sneakerHandler.HandleGetByID)
		r.Post("/api/Sneaker", sneakerHandler.HandleCreate)
		r.Patch("/api/Sneaker", sneakerHandler.HandleUpdate)
		r.Delete("/api/Sneaker/{id}", sneakerHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
