// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"wordify/internal/config"
	"wordify/internal/handlers"
	"wordify/internal/middleware"
	"wordify/internal/repository"
	"wordify/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境では tint で色付き、その他では JSON で出力する
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName))

	// Database
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	topicRepo := repository.NewGormTopicRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	progressRepo := repository.NewGormProgressRepository()
	quizRepo := repository.NewGormQuizRepository()

	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	userService := service.NewUserService(db, userRepo)
	topicService := service.NewTopicService(db, topicRepo)
	vocabService := service.NewVocabularyService(db, vocabRepo, topicRepo)
	progressService := service.NewProgressService(db, progressRepo, vocabRepo, topicRepo, userRepo, quizRepo, &config.Cfg)
	quizService := service.NewQuizService(db, quizRepo, topicRepo, vocabRepo, progressRepo, userRepo, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	topicHandler := handlers.NewTopicHandler(topicService, logger)
	vocabHandler := handlers.NewVocabularyHandler(vocabService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// 認証が必要な自分自身のプロフィール操作
			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg, authService))
				r.Get("/me", authHandler.GetProfile)
				r.Patch("/me", authHandler.PatchProfile)
				r.Post("/me/password", authHandler.ChangePassword)
			})
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg, authService))

			r.Route("/topics", func(r chi.Router) {
				r.Get("/", topicHandler.GetTopics)
				r.Get("/{topicID}", topicHandler.GetTopic)

				// コンテンツの編集は管理者のみ
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", topicHandler.PostTopic)
					r.Patch("/{topicID}", topicHandler.PatchTopic)
					r.Delete("/{topicID}", topicHandler.DeleteTopic)
				})
			})

			r.Route("/vocabulary", func(r chi.Router) {
				r.Get("/", vocabHandler.GetVocabularies)
				r.Get("/{vocabularyID}", vocabHandler.GetVocabulary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", vocabHandler.PostVocabulary)
					r.Patch("/{vocabularyID}", vocabHandler.PatchVocabulary)
					r.Delete("/{vocabularyID}", vocabHandler.DeleteVocabulary)
				})
			})

			r.Route("/quizzes", func(r chi.Router) {
				r.Post("/generate", quizHandler.GenerateQuiz)
				r.Post("/submit", quizHandler.SubmitQuiz)
				r.Get("/history", quizHandler.GetHistory)
				r.Get("/history/{sessionID}", quizHandler.GetSession)
				r.Get("/stats", quizHandler.GetStats)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", progressHandler.GetProgress)
				r.Put("/{vocabularyID}", progressHandler.PutProgress)
				r.Get("/topics/{topicID}", progressHandler.GetTopicSummary)
			})

			// ユーザー管理は管理者のみ
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", userHandler.GetUsers)
				r.Get("/stats", userHandler.GetUserStats)
				r.Get("/{userID}", userHandler.GetUser)
				r.Post("/{userID}/status", userHandler.PostUserStatus)
				r.Delete("/{userID}", userHandler.DeleteUser)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
