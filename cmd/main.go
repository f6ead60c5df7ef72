package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
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
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/classaway/docs"
	"github.com/sbilibin2017/classaway/internal/attachments"
	"github.com/sbilibin2017/classaway/internal/events"
	"github.com/sbilibin2017/classaway/internal/handlers"
	"github.com/sbilibin2017/classaway/internal/jwt"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/middlewares"
	"github.com/sbilibin2017/classaway/internal/migrations"
	"github.com/sbilibin2017/classaway/internal/repositories"
	"github.com/sbilibin2017/classaway/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ClassAway API
// @version 1.0.0
// @description Backend for student OD requests and placement tracking
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo(os.Stdout)
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
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Version: %s\n", buildVersion)
	fmt.Fprintf(w, "Commit: %s\n", buildCommit)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	GRPCPort string

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
	SummaryExp        time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	StorageBackend string
	UploadDir      string
	UploadMaxBytes int64
	S3             attachments.S3Config
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT and storage configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &config{}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "5000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "classaway")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.SummaryExp = time.Duration(getInt("REDIS_SUMMARY_EXP_SECOND", "60")) * time.Second

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "classaway.activity")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = time.Duration(getInt("JWT_EXP_SECOND", "604800")) * time.Second

	// Attachment storage config
	cfg.StorageBackend = getEnv("STORAGE_BACKEND", "local")
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.UploadMaxBytes = int64(getInt("UPLOAD_MAX_BYTES", strconv.Itoa(handlers.DefaultMaxUploadBytes)))
	cfg.S3 = attachments.S3Config{
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    getEnv("S3_BUCKET", "classaway"),
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
	}

	if err != nil {
		return nil, err
	}
	if cfg.StorageBackend != "local" && cfg.StorageBackend != "s3" {
		return nil, fmt.Errorf("STORAGE_BACKEND: unknown backend %q", cfg.StorageBackend)
	}
	return cfg, nil
}

// newAttachmentStore returns the configured store and, for local storage,
// the directory to serve under /uploads.
func newAttachmentStore(ctx context.Context, cfg *config) (attachments.Store, string, error) {
	if cfg.StorageBackend == "s3" {
		store, err := attachments.NewS3Store(ctx, cfg.S3)
		return store, "", err
	}
	store, err := attachments.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}

// requestTimeout bounds every request context, and with it every database call.
const requestTimeout = 30 * time.Second

// newRouter mounts the API, static uploads and swagger UI.
func newRouter(
	db *sqlx.DB,
	tokener middlewares.Tokener,
	authService *services.AuthService,
	odService *services.ODService,
	placementService *services.PlacementService,
	dashboardService *services.DashboardService,
	files attachments.Store,
	uploadDir string,
	maxUploadBytes int64,
	swaggerURL string,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ClassAway API is running\n")
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		handlers.RegisterRegisterHandler(r, handlers.NewRegisterHandler(authService))
		handlers.RegisterLoginHandler(r, handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			handlers.RegisterODReadHandlers(r, handlers.NewListODsHandler(odService))
			handlers.RegisterPlacementReadHandlers(r, handlers.NewListPlacementsHandler(placementService))
			handlers.RegisterSummaryHandler(r, handlers.NewSummaryHandler(dashboardService))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))

				handlers.RegisterProfileHandlers(r,
					handlers.NewGetProfileHandler(authService),
					handlers.NewUpdateProfileHandler(authService),
				)
				handlers.RegisterODWriteHandlers(r,
					handlers.NewCreateODHandler(odService, files, maxUploadBytes),
					handlers.NewUpdateODHandler(odService),
					handlers.NewDeleteODHandler(odService),
				)
				handlers.RegisterPlacementWriteHandlers(r,
					handlers.NewCreatePlacementHandler(placementService),
					handlers.NewUpsertPlacementHandler(placementService),
					handlers.NewDeletePlacementHandler(placementService),
				)
			})
		})
	})

	if uploadDir != "" {
		fs := http.StripPrefix(attachments.URLPrefix, http.FileServer(http.Dir(uploadDir)))
		r.Get(attachments.URLPrefix+"*", fs.ServeHTTP)
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	return r
}

// run initializes the logger, database, Redis, Kafka, attachment storage and
// the HTTP and gRPC health servers. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// gRPC health server, NOT_SERVING until Postgres is up
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Log.Errorw("gRPC server failed", "error", err)
		}
	}()
	defer grpcServer.GracefulStop()

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka publisher, disabled without brokers
	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kw := events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		publisher = events.NewPublisher(kw)
		logger.Log.Infof("Publishing activity events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	} else {
		publisher = events.NewPublisher(nil)
		logger.Log.Info("KAFKA_BROKERS not set, activity events disabled")
	}
	defer publisher.Close()

	// Attachment storage
	files, uploadDir, err := newAttachmentStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("attachment storage: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	odReadRepo := repositories.NewODReadRepository(db, middlewares.GetTxFromContext)
	odWriteRepo := repositories.NewODWriteRepository(db, middlewares.GetTxFromContext)
	placementReadRepo := repositories.NewPlacementReadRepository(db, middlewares.GetTxFromContext)
	placementWriteRepo := repositories.NewPlacementWriteRepository(db, middlewares.GetTxFromContext)
	summaryCache := repositories.NewSummaryCacheRepository(rdb, cfg.SummaryExp)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	odService := services.NewODService(odReadRepo, odWriteRepo, files, publisher, summaryCache)
	placementService := services.NewPlacementService(placementReadRepo, placementWriteRepo, publisher, summaryCache)
	dashboardService := services.NewDashboardService(odReadRepo, placementReadRepo, summaryCache)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r := newRouter(db, tokens,
		authService, odService, placementService, dashboardService,
		files, uploadDir, cfg.UploadMaxBytes,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
