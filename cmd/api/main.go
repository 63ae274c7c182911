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

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/hchen320/bestfriends/docs"
	"github.com/hchen320/bestfriends/internal/config"
	"github.com/hchen320/bestfriends/internal/database"
	"github.com/hchen320/bestfriends/internal/logger"
	"github.com/hchen320/bestfriends/internal/member"
	"github.com/hchen320/bestfriends/internal/message"
	"github.com/hchen320/bestfriends/internal/token"
	"github.com/hchen320/bestfriends/internal/upload"
	mw "github.com/hchen320/bestfriends/pkg/middleware"
	"github.com/hchen320/bestfriends/pkg/response"
)

const version = "1.0.0"

// @title        BestFriends API
// @version      1.0
// @description  Member directory with a guestbook and token-gated self-service edits
// @BasePath     /api
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		zap.L().Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	zap.L().Info("database ready", zap.String("path", cfg.DatabasePath))

	// Member feature
	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo)

	// Guestbook feature
	messageRepo := message.NewRepository(db)
	messageService := message.NewService(messageRepo)
	messageHandler := message.NewHandler(messageService)

	// Member handler also serves the member-scoped guestbook routes
	memberHandler := member.NewHandler(memberService, messageService)

	// Edit token feature (member repo injected for token-to-member resolution)
	tokenRepo := token.NewRepository(db)
	tokenService := token.NewService(tokenRepo, memberRepo)
	tokenHandler := token.NewHandler(tokenService)

	// Avatar upload feature
	uploadRepo := upload.NewRepository(db)
	uploadService, err := upload.NewService(uploadRepo, cfg.UploadDir)
	if err != nil {
		zap.L().Fatal("failed to prepare upload dir", zap.Error(err))
	}
	uploadHandler := upload.NewHandler(uploadService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(mw.Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			response.JSON(w, http.StatusOK, map[string]string{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"version":   version,
			})
		})

		r.Mount("/members", memberHandler.Routes())
		r.Mount("/messages", messageHandler.Routes())
		r.Mount("/tokens", tokenHandler.Routes())
		r.Mount("/upload", uploadHandler.Routes())
	})

	// Uploaded avatars
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}
}
