package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-backend/config"
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/repository/session"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/password"
	"job-portal-backend/pkg/redis"
	"job-portal-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Session Store (Redis, in-memory fallback)
	var sessionStore = session.NewMemoryStore()
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, sessions are in-memory and will not survive restarts", "error", err)
	} else {
		sessionStore = session.NewRedisStore(redis.Client())
		defer redis.Close()
	}

	// 5. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewCodec(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	authUC := usecase.NewAuthUsecase(accountRepo, candidateRepo, employerRepo, sessionStore, hasher, tokens, validate, cfg.MinPasswordLength)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, cfg.CandidateMandatoryFields)
	employerUC := usecase.NewEmployerUsecase(employerRepo)
	dashboardUC := usecase.NewDashboardUsecase(candidateRepo, employerRepo, cfg.CandidateMandatoryFields)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		EmployerUC:  employerUC,
		DashboardUC: dashboardUC,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
