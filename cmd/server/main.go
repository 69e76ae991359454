package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecomus.backend/internal/config"
	"ecomus.backend/internal/infrastructure/repositories"
	"ecomus.backend/internal/interfaces/http/handlers"
	"ecomus.backend/internal/interfaces/http/middleware"
	"ecomus.backend/internal/usecases"
	"ecomus.backend/pkg/jwt"
	"ecomus.backend/pkg/logger"
	"ecomus.backend/pkg/mailer"
	"ecomus.backend/pkg/redis"
	"ecomus.backend/pkg/usertoken"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	newMailer       = func(cfg *config.Config) (mailer.Mailer, error) {
		if cfg.RabbitMQ.Disabled {
			return mailer.NewLogMailer(), nil
		}
		return mailer.NewAMQPMailer(cfg.RabbitMQ.URL, cfg.RabbitMQ.MailQueue)
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
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize account token generator
	tokens := usertoken.NewGenerator(cfg.Token.Secret, cfg.Token.TTL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	sizeRepo := repositories.NewSizeRepository(db)
	colorRepo := repositories.NewColorRepository(db)
	productRepo := repositories.NewProductRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize mailer
	mail, err := newMailer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, uow, tokens, jwtService, mail, cfg.Server.SiteDomain)
	categoryUsecase := usecases.NewCategoryUsecase(categoryRepo)
	storeUsecase := usecases.NewStoreUsecase(storeRepo, userRepo)
	sizeUsecase := usecases.NewSizeUsecase(sizeRepo)
	colorUsecase := usecases.NewColorUsecase(colorRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, categoryRepo, storeRepo, sizeRepo, colorRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, cfg.JWT.RefreshExpiry)
	profileHandler := handlers.NewProfileHandler(authUsecase)
	categoryHandler := handlers.NewCategoryHandler(categoryUsecase)
	storeHandler := handlers.NewStoreHandler(storeUsecase)
	sizeHandler := handlers.NewSizeHandler(sizeUsecase)
	colorHandler := handlers.NewColorHandler(colorUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)

	// Create session auth middleware
	sessionAuthMiddleware := middleware.SessionAuthMiddleware(jwtService, sessionStore)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		profileHandler:        profileHandler,
		categoryHandler:       categoryHandler,
		storeHandler:          storeHandler,
		sizeHandler:           sizeHandler,
		colorHandler:          colorHandler,
		productHandler:        productHandler,
		sessionAuthMiddleware: sessionAuthMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if closer, ok := mail.(interface{ Close() error }); ok {
			closer.Close()
		}
	}()

	// Start server
	log.Printf("🚀 Ecomus Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
