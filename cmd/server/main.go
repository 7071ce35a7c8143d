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
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/api"
	"github.com/tendant/simple-blog/pkg/simpleblog/config"
	"github.com/tendant/simple-blog/pkg/simpleblog/seo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, closeRepo, err := cfg.BuildRepository(ctx)
	if err != nil {
		slog.Error("Failed to initialize post store", "error", err, "type", cfg.DatabaseType())
		os.Exit(1)
	}
	slog.Info("Post store initialized", "type", cfg.DatabaseType())

	svc, err := simpleblog.New(simpleblog.WithRepository(repo))
	if err != nil {
		slog.Error("Failed to create blog service", "error", err)
		os.Exit(1)
	}

	imageStore, err := cfg.BuildImageStore()
	if err != nil {
		slog.Error("Failed to initialize image store", "error", err, "backend", cfg.Uploads.Backend)
		os.Exit(1)
	}
	slog.Info("Image store initialized", "backend", cfg.Uploads.Backend)

	resolver := seo.NewResolver(svc, cfg.Site.Name)

	postHandler := api.NewPostHandler(svc, resolver)
	uploadHandler := api.NewUploadHandler(imageStore)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/posts", postHandler.Routes())
		r.Mount("/upload", uploadHandler.Routes())
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := closeRepo(shutdownCtx); err != nil {
		slog.Error("Failed to close post store", "error", err)
	}
	slog.Info("Server stopped")
}
