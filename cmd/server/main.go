package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"loanflow.backend/internal/config"
	"loanflow.backend/internal/infrastructure/repositories"
	"loanflow.backend/internal/interfaces/http/handlers"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/jwt"
	"loanflow.backend/pkg/logger"
	"loanflow.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	loanTypeRepo := repositories.NewLoanTypeRepository(db)
	appRepo := repositories.NewLoanApplicationRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	userUsecase := usecases.NewUserUsecase(userRepo)
	profileUsecase := usecases.NewProfileUsecase(userRepo)
	loanTypeUsecase := usecases.NewLoanTypeUsecase(loanTypeRepo)
	applicationUsecase := usecases.NewApplicationUsecase(appRepo, loanTypeRepo, userRepo, txRepo, uow)
	dashboardUsecase := usecases.NewDashboardUsecase(appRepo, txRepo, cfg.Loan.CreditCeiling)
	transactionUsecase := usecases.NewTransactionUsecase(txRepo)
	viewStateStore := usecases.NewViewStateStore()

	// Handlers
	deps := routeDeps{
		applicationHandler: handlers.NewApplicationHandler(applicationUsecase, viewStateStore),
		loanTypeHandler:    handlers.NewLoanTypeHandler(loanTypeUsecase),
		userHandler:        handlers.NewUserHandler(userUsecase, profileUsecase, viewStateStore),
		transactionHandler: handlers.NewTransactionHandler(transactionUsecase),
		dashboardHandler:   handlers.NewDashboardHandler(dashboardUsecase),
		authMiddleware:     middleware.AuthMiddleware(jwtService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerAPIV1Routes(r, deps)

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
