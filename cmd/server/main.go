package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/ai"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/config"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/handlers"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/jobs"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/metrics"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories/memory"
	mongorepo "github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories/mongo"
	redisrepo "github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories/redis"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/routers"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/services"
)

func registerRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, aiHandler *handlers.AIHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler)
	routers.AIRoutes(router, aiHandler)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// question bank from the embedded static table
	bank, err := ai.NewQuestionBank()
	if err != nil {
		logger.Fatal("Failed to load question bank", zap.Error(err))
	}
	logger.Info("Question bank loaded", zap.Int("roles", bank.RoleCount()))

	// candidate store: Mongo when configured, in-memory otherwise
	var candidateRepo repositories.CandidateRepository
	var storageChecker handlers.StorageChecker
	var mongoClient *mongorepo.Client

	if cfg.MongoURI != "" {
		mongoClient, err = mongorepo.NewClient(context.Background(), cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		candidateRepo, err = mongorepo.NewCandidateRepository(mongoClient)
		if err != nil {
			logger.Fatal("Failed to initialize candidate repository", zap.Error(err))
		}
		storageChecker = mongoClient
		logger.Info("Using MongoDB candidate store", zap.String("db", cfg.MongoDBName))
	} else {
		candidateRepo = memory.NewCandidateRepository()
		logger.Warn("MONGO_URI not set, using in-memory candidate store")
	}

	// session store: Redis when configured, in-memory otherwise
	var sessionRepo repositories.SessionRepository
	var redisClient *goredis.Client

	if cfg.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		sessionRepo = redisrepo.NewSessionRepository(redisClient)
		logger.Info("Using Redis session store", zap.String("addr", cfg.RedisAddr))
	} else {
		sessionRepo = memory.NewSessionRepository()
		logger.Warn("REDIS_ADDR not set, using in-memory session store")
	}

	interviewService := services.NewInterviewService(candidateRepo, sessionRepo, bank, logger)

	interviewHandler := handlers.NewInterviewHandler(interviewService, logger)
	aiHandler := handlers.NewAIHandler(bank, logger)
	healthHandler := handlers.NewHealthHandler(bank, storageChecker)

	// stale session purge
	cleanupJob := jobs.NewSessionCleanupJob(sessionRepo, &jobs.CleanupConfig{
		Schedule: cfg.SessionCleanupSchedule,
		MaxAge:   cfg.SessionMaxAge,
	}, logger)
	if err := cleanupJob.Start(); err != nil {
		logger.Error("Failed to start session cleanup job", zap.Error(err))
	}

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	registerRoutes(router, interviewHandler, aiHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	cleanupJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close redis client", zap.Error(err))
		}
	}
	if mongoClient != nil {
		if err := mongoClient.Close(ctx); err != nil {
			logger.Error("failed to close mongo client", zap.Error(err))
		}
	}

	logger.Info("Interview service exited")
}
