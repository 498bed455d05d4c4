package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sendgrid/sendgrid-go"

	"github.com/dkenzhebek/estatefinder/internal/facades"
	"github.com/dkenzhebek/estatefinder/internal/handlers"
	"github.com/dkenzhebek/estatefinder/internal/jwt"
	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/repositories"
	"github.com/dkenzhebek/estatefinder/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title EstateFinder API
// @version 1.0.0
// @description Backend for the EstateFinder real-estate listing marketplace
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, appEnv,
		databaseURL, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, searchCacheTTLSecond,
		kafkaAddr, kafkaTopic,
		jwtSecretKey,
		sendgridAPIKey, sendgridFromEmail, resetBaseURL,
		staticDir,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, appEnv,
		databaseURL, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, searchCacheTTLSecond,
		kafkaAddr, kafkaTopic,
		jwtSecretKey,
		sendgridAPIKey, sendgridFromEmail, resetBaseURL,
		staticDir,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, email, and static-file
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, appEnv string,
	databaseURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, searchCacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string,
	sendgridAPIKey, sendgridFromEmail, resetBaseURL string,
	staticDir string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	appEnv = getEnv("APP_ENV", "development")

	// PostgreSQL config. DATABASE_URL, when set, is used verbatim and the
	// individual POSTGRES_* values are ignored.
	databaseURL = getEnv("DATABASE_URL", "")
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "estatefinder")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if searchCacheTTLSecond, err = strconv.Atoi(getEnv("SEARCH_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "listing-audit-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production")

	// Email config
	sendgridAPIKey = getEnv("SENDGRID_API_KEY", "")
	sendgridFromEmail = getEnv("SENDGRID_FROM_EMAIL", "noreply@estatefinder.local")
	resetBaseURL = getEnv("RESET_BASE_URL", "http://localhost:8080/reset-password")

	// Static frontend config
	staticDir = getEnv("STATIC_DIR", "frontend/dist")

	return
}

// run initializes the logger, database, Redis, Kafka, SendGrid, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, appEnv string,
	databaseURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, searchCacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string,
	sendgridAPIKey, sendgridFromEmail, resetBaseURL string,
	staticDir string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := buildDSN(databaseURL, appEnv, pgHost, pgPort, pgUser, pgPassword, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for audit events
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaAddr),
		Topic:                  kafkaTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	// SendGrid client for password reset emails
	sendgridClient := sendgrid.NewSendClient(sendgridAPIKey)
	emailFacade := facades.NewEmailFacade(sendgridClient, sendgridFromEmail)

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, 24*time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	resetWriteRepo := repositories.NewPasswordResetWriteRepository(db)
	listingReadRepo := repositories.NewListingReadRepository(db, middlewares.GetTxFromContext)
	listingWriteRepo := repositories.NewListingWriteRepository(db, middlewares.GetTxFromContext)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db, middlewares.GetTxFromContext)
	auditWriteRepo := repositories.NewAuditWriteRepository(db, middlewares.GetTxFromContext)
	inquiryWriteRepo := repositories.NewInquiryWriteRepository(db)
	inquiryReadRepo := repositories.NewInquiryReadRepository(db)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db)
	searchCacheRepo := repositories.NewListingSearchCacheRepository(rdb, time.Duration(searchCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, resetWriteRepo, emailFacade, jwt, resetBaseURL)
	listingService := services.NewListingService(
		listingReadRepo, listingWriteRepo,
		imageReadRepo, imageWriteRepo,
		auditWriteRepo, userReadRepo,
		searchCacheRepo, kafkaWriter,
	)
	inquiryService := services.NewInquiryService(inquiryWriteRepo, inquiryReadRepo)
	favoriteService := services.NewFavoriteService(favoriteReadRepo, favoriteWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	passwordResetHandler := handlers.NewPasswordResetHandler(authService)
	listPropertiesHandler := handlers.NewListPropertiesHandler(listingService)
	getPropertyHandler := handlers.NewGetPropertyHandler(listingService)
	createPropertyHandler := handlers.NewCreatePropertyHandler(listingService)
	updatePropertyHandler := handlers.NewUpdatePropertyHandler(listingService)
	deletePropertyHandler := handlers.NewDeletePropertyHandler(listingService)
	createInquiryHandler := handlers.NewCreateInquiryHandler(inquiryService)
	agentInquiriesHandler := handlers.NewAgentInquiriesHandler(inquiryService)
	listFavoritesHandler := handlers.NewListFavoritesHandler(favoriteService)
	addFavoriteHandler := handlers.NewAddFavoriteHandler(favoriteService)
	removeFavoriteHandler := handlers.NewRemoveFavoriteHandler(favoriteService)
	adminUsersHandler := handlers.NewAdminUsersHandler(userReadRepo)
	adminListingsHandler := handlers.NewAdminListingsHandler(listingReadRepo)

	authMiddleware := middlewares.AuthMiddleware(jwt)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Post("/api/auth/password_resets", passwordResetHandler)
	r.Get("/api/properties", listPropertiesHandler)
	r.Get("/api/properties/{id}", getPropertyHandler)
	r.Post("/api/inquiries", createInquiryHandler)

	// Agent routes: listing mutations run inside one transaction
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.RequireRole(models.RoleAgent))
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/api/properties", createPropertyHandler)
		r.Put("/api/properties/{id}", updatePropertyHandler)
		r.Delete("/api/properties/{id}", deletePropertyHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.RequireRole(models.RoleAgent))
		r.Get("/api/agent/inquiries", agentInquiriesHandler)
	})

	// Any authenticated role may manage favorites
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/favorites", listFavoritesHandler)
		r.Post("/api/favorites", addFavoriteHandler)
		r.Delete("/api/favorites/{id}", removeFavoriteHandler)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.RequireRole(models.RoleAdmin))
		r.Get("/api/admin/users", adminUsersHandler)
		r.Get("/api/admin/listings", adminListingsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Static frontend with SPA fallback
	r.NotFound(spaHandler(staticDir))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// buildDSN returns the PostgreSQL connection string. A non-empty databaseURL
// wins outright; otherwise the DSN is assembled from the individual values,
// with TLS required in production and disabled elsewhere.
func buildDSN(databaseURL, appEnv, host string, port int, user, password, dbName string) string {
	if databaseURL != "" {
		return databaseURL
	}

	sslMode := "disable"
	if appEnv == "production" {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		user, password, host, port, dbName, sslMode)
}

// spaHandler serves files from the static directory and falls back to
// index.html for unknown paths so client-side routing keeps working.
func spaHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}

		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
