package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	configs "feedback_service/config"
	"feedback_service/internal/analytics"
	"feedback_service/internal/events"
	"feedback_service/internal/identity"
	"feedback_service/internal/metrics"
	"feedback_service/internal/repository"
	"feedback_service/internal/sentiment"
	"feedback_service/internal/server/handler"
	"feedback_service/internal/server/health"
	"feedback_service/internal/server/middleware"
	"feedback_service/internal/service"
	"feedback_service/pkg/db"
	"feedback_service/pkg/kafka"
	"feedback_service/pkg/logger"
)

type userStore interface {
	identity.Source
	identity.Bootstrapper
}

type eventSink interface {
	service.EventPublisher
	BacklogPublisher
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New("info", false)
	if err != nil {
		panic(err)
	}

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log, err = logger.New(cfg.Log.Level, cfg.Log.Production)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	reg := metrics.NewRegistry()
	domainMetrics := metrics.NewDomainMetrics(reg)
	httpMetrics := metrics.NewHTTPMetrics(reg)
	checker := health.NewChecker(clock, log)

	var (
		feedbackStore service.FeedbackStore
		ledger        service.ModerationStore
		users         userStore
	)

	switch cfg.Storage.Driver {
	case configs.StorageDriverMemory:
		mem := repository.NewMemoryStore()
		feedbackStore, ledger, users = mem, mem, mem
		log.Warn("Using in-memory storage, data is lost on restart")
	default:
		dbConfig := db.Config{
			Host:           cfg.DB.Host,
			Port:           cfg.DB.Port,
			User:           cfg.DB.User,
			Password:       cfg.DB.Password,
			DBName:         cfg.DB.DBName,
			SSLMode:        cfg.DB.SSLMode,
			MaxConns:       cfg.DB.MaxConns,
			MinConns:       cfg.DB.MinConns,
			MigrationsPath: cfg.DB.MigrationsPath,
			ConnectRetries: cfg.DB.ConnectRetries,
		}

		if err := db.Migrate(dbConfig); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		pool, err := db.NewPool(ctx, dbConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		feedbackStore = repository.NewFeedbackRepository(pool)
		ledger = repository.NewModerationRepository(pool)
		users = repository.NewUserRepository(pool)
		checker.Add("postgres", pool.Ping)
	}

	var (
		lookup      service.IdentityLookup = users
		cachedUsers *identity.CachedLookup
		userCache   service.UserCache
	)
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		cachedUsers = identity.NewCachedLookup(users, identity.NewRedisCache(rdb, identity.UserKeyPrefix, log), cfg.Redis.UserTTL, log)
		lookup = cachedUsers
		userCache = cachedUsers
		checker.Add("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	seeds, err := cfg.SeedUsers()
	if err != nil {
		log.Fatalf("Invalid user seed: %v", err)
	}
	if err := identity.Seed(ctx, users, cachedUsers, seeds); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	var publisher eventSink = events.NewNoopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(kafka.Config{
			Brokers:      cfg.Kafka.Brokers,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			BatchTimeout: cfg.Kafka.BatchTimeout,
		})
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		defer producer.Close()

		publisher = events.NewKafkaPublisher(producer, events.Config{
			FeedbackTopic:    cfg.Kafka.FeedbackTopic,
			BacklogTopic:     cfg.Kafka.BacklogTopic,
			FailureThreshold: cfg.Kafka.FailureThreshold,
			ResetTimeout:     cfg.Kafka.ResetTimeout,
		}, clock)
	} else {
		log.Warn("No Kafka brokers configured, feedback events are dropped")
	}

	classifier := sentiment.Default()

	feedbackService := service.NewFeedbackService(
		feedbackStore,
		lookup,
		classifier,
		publisher,
		domainMetrics,
		clock,
		log,
	)

	moderationService := service.NewModerationService(
		feedbackStore,
		ledger,
		lookup,
		publisher,
		domainMetrics,
		clock,
		log,
	)

	analyticsService := service.NewAnalyticsService(
		feedbackStore,
		ledger,
		analytics.NewAggregator(clock),
		service.AnalyticsConfig{
			TrendMonths: cfg.Analytics.TrendMonths,
			TopReasons:  cfg.Analytics.TopReasons,
			RecentLimit: cfg.Analytics.RecentLimit,
		},
	)

	userService := service.NewUserService(users, lookup, userCache, log)

	writeLimiter := middleware.NewActorRateLimiter(cfg.HTTP.WritesPerMinute, cfg.HTTP.WriteBurst, clock)
	go writeLimiter.Run(ctx)

	authMiddleware := middleware.NewIdentityMiddleware()
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(log))
	r.Use(httpMetrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserID, middleware.HeaderUserRole, middleware.HeaderTraceID},
		ExposedHeaders: []string{middleware.HeaderTraceID},
		MaxAge:         300,
	}))
	r.Method(http.MethodGet, "/health", checker)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	handler.NewFeedbackHandler(feedbackService, writeLimiter.Middleware).RegisterRoutes(r, authMiddleware)
	handler.NewModerationHandler(moderationService, analyticsService).RegisterRoutes(r, authMiddleware)
	handler.NewAnalyticsHandler(analyticsService).RegisterRoutes(r, authMiddleware)
	handler.NewSentimentHandler(classifier).RegisterRoutes(r, authMiddleware)
	handler.NewUserHandler(userService).RegisterRoutes(r, authMiddleware)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Infof("Starting HTTP server on %s", cfg.HTTP.Address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	grpcServer := checker.NewGRPCServer()
	listener, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Infof("Starting gRPC health server on %s", cfg.GRPC.Address)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	go checker.Run(ctx, cfg.GRPC.HealthInterval)

	if cfg.Worker.Enabled {
		worker := NewReviewBacklogWorker(
			feedbackStore,
			publisher,
			domainMetrics,
			log,
			clock,
			cfg.Worker.Interval,
			cfg.Worker.BacklogAge,
			cfg.Worker.DigestLimit,
		)
		go worker.Start(ctx)
	}

	<-ctx.Done()

	log.Info("Shutting down server...")
	checker.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()

	log.Info("Server stopped")
}
