package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
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
	"google.golang.org/grpc"

	"github.com/sbilibin2017/roommate-matcher/internal/handlers"
	"github.com/sbilibin2017/roommate-matcher/internal/health"
	"github.com/sbilibin2017/roommate-matcher/internal/jwt"
	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/middlewares"
	"github.com/sbilibin2017/roommate-matcher/internal/repositories"
	"github.com/sbilibin2017/roommate-matcher/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/roommate-matcher/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the full service configuration read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	GRPCHost            string
	GRPCPort            string
	HealthCheckInterval time.Duration

	JWTSecretKey string
	JWTExp       time.Duration

	CORSAllowedOrigins []string

	Retry repositories.RetryPolicy

	CompatibilityCacheTTL time.Duration
}

// @title roommate-matcher API
// @version 1.0.0
// @description Roommate matching service: profiles, lifestyle compatibility and match requests
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, gRPC, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, s := range strings.Split(getEnv(key, defaultValue), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "roommate_matcher")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Storage retry policy
	var retryMs, retryMaxMs int
	if cfg.Retry.MaxAttempts, err = getInt("STORAGE_RETRY_ATTEMPTS", "3"); err != nil {
		return
	}
	if retryMs, err = getInt("STORAGE_RETRY_INITIAL_MS", "100"); err != nil {
		return
	}
	if retryMaxMs, err = getInt("STORAGE_RETRY_MAX_MS", "1000"); err != nil {
		return
	}
	cfg.Retry.InitialInterval = time.Duration(retryMs) * time.Millisecond
	cfg.Retry.MaxInterval = time.Duration(retryMaxMs) * time.Millisecond

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var ttl int
	if ttl, err = getInt("COMPATIBILITY_CACHE_TTL_SECOND", "3600"); err != nil {
		return
	}
	cfg.CompatibilityCacheTTL = time.Duration(ttl) * time.Second

	// Kafka config; no brokers disables event publishing
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "match-events")

	// gRPC health config
	cfg.GRPCHost = getEnv("GRPC_HOST", "localhost")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	var healthSec int
	if healthSec, err = getInt("HEALTH_CHECK_INTERVAL_SECOND", "5"); err != nil {
		return
	}
	cfg.HealthCheckInterval = time.Duration(healthSec) * time.Second

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExp int
	if jwtExp, err = getInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	return
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// app bundles the services the HTTP API is built from.
type app struct {
	tokener       *jwt.JWT
	auth          *services.AuthService
	profile       *services.ProfileService
	compatibility *services.CompatibilityService
	match         *services.MatchService
}

// newRouter mounts the API under /api and the Swagger UI under /swagger.
func newRouter(cfg config, a app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(a.auth))
		r.Post("/login", handlers.NewLoginHandler(a.auth))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(a.tokener))

			r.Get("/profile/{id}", handlers.NewGetProfileHandler(a.profile))
			r.Put("/profile/{id}", handlers.NewUpdateProfileHandler(a.profile, a.tokener))
			r.Get("/users", handlers.NewListCandidatesHandler(a.profile, a.tokener))
			r.Get("/compatibility/{userId}", handlers.NewCompatibilityHandler(a.compatibility, a.tokener))

			r.Post("/match-request", handlers.NewMatchRequestHandler(a.match, a.tokener))
			r.Get("/matches/{id}", handlers.NewListMatchesHandler(a.match, a.tokener))
			r.Post("/matches/{id}/accept", handlers.NewAcceptMatchHandler(a.match))
			r.Post("/matches/{id}/reject", handlers.NewRejectMatchHandler(a.match))
			r.Delete("/matches/{id}", handlers.NewCancelMatchHandler(a.match))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, database, Redis, Kafka, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// the cache is optional; scores are recomputed on every miss
		log.Warnw("Redis unavailable, compatibility cache degraded", "error", err)
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic); w != nil {
		kafkaWriter = w
		defer w.Close()
		log.Infof("Publishing match events to Kafka topic %s", cfg.KafkaTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, match events will not be published")
	}

	// Initialize JWT service
	tokener := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	transactor := repositories.NewTransactor(db, cfg.Retry)
	userReadRepo := repositories.NewUserReadRepository(db, repositories.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	prefsReadRepo := repositories.NewPreferencesReadRepository(db, repositories.GetTxFromContext)
	prefsWriteRepo := repositories.NewPreferencesWriteRepository(db, repositories.GetTxFromContext)
	matchReadRepo := repositories.NewMatchReadRepository(db, repositories.GetTxFromContext)
	matchWriteRepo := repositories.NewMatchWriteRepository(db, repositories.GetTxFromContext)
	cacheRepo := repositories.NewCompatibilityCacheRepository(rdb, cfg.CompatibilityCacheTTL)

	// Initialize services
	a := app{
		tokener:       tokener,
		auth:          services.NewAuthService(transactor, userReadRepo, userWriteRepo, prefsWriteRepo, tokener),
		profile:       services.NewProfileService(transactor, userReadRepo, userWriteRepo, prefsReadRepo, prefsWriteRepo, cacheRepo),
		compatibility: services.NewCompatibilityService(userReadRepo, cacheRepo),
		match:         services.NewMatchService(transactor, matchWriteRepo, matchReadRepo, prefsReadRepo, kafkaWriter),
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, a),
	}

	// gRPC health server
	grpcAddr := fmt.Sprintf("%s:%s", cfg.GRPCHost, cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", grpcAddr, err)
	}
	grpcSrv := grpc.NewServer()
	checker := health.NewChecker(db, cfg.HealthCheckInterval)
	checker.Register(grpcSrv)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	healthCtx, stopHealth := context.WithCancel(ctx)
	healthDone := make(chan struct{})
	go func() {
		checker.Run(healthCtx)
		close(healthDone)
	}()

	go func() {
		log.Infof("gRPC health server listening on %s", grpcAddr)
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		log.Errorw("Server failed, shutting down", "error", serveErr)
	}

	// report NOT_SERVING before the HTTP server drains
	stopHealth()
	<-healthDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	log.Info("Servers stopped gracefully")
	return serveErr
}
