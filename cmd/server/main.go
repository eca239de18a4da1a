package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Labeddit/internal/api/middleware"
	"Labeddit/internal/api/routes"
	"Labeddit/internal/auth"
	"Labeddit/internal/config"
	"Labeddit/internal/core/posts"
	"Labeddit/internal/core/reactions"
	"Labeddit/internal/core/users"
	postgresRepo "Labeddit/internal/db/postgres"
	"Labeddit/internal/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	if err := postgresRepo.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		log.Fatal("Failed to create token manager:", err)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reactionMetrics := reactions.NewMetrics(registry)

	// Reaction events
	var publisher reactions.Publisher = reactions.NopPublisher{}
	if cfg.KafkaEnabled() {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaReactionsTopic)
		if err != nil {
			log.Fatal("Failed to create reaction event publisher:", err)
		}
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Warn("failed to close reaction event publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
		logger.Info("publishing reaction events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaReactionsTopic)
	}

	// Initialize repositories and services
	userRepo, err := users.NewCachingRepository(postgresRepo.NewUserRepository(db), cfg.UserCacheSize)
	if err != nil {
		log.Fatal("Failed to create user cache:", err)
	}
	userService := users.NewUserService(userRepo, users.NewBcryptHasher(cfg.BcryptCost), tokens, logger)

	reconciler := reactions.NewReconciler(postgresRepo.NewReactionTransactor(db), publisher, reactionMetrics, logger)
	postRepo := postgresRepo.NewPostRepository(db)
	postService := posts.NewPostService(postRepo, userService, reconciler, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	cleanupDone := make(chan struct{})
	defer close(cleanupDone)
	go rateLimiter.Cleanup(time.Minute, cleanupDone)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		routes.RegisterUserRoutes(r, userService)
		routes.RegisterPostRoutes(r, postService, authMiddleware)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Labeddit API starting", "port", cfg.Port, "dev", cfg.IsDevEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsDevEnv {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
