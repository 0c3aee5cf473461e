package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	budgetapp "github.com/roofline/backend/internal/application/budget"
	commissionapp "github.com/roofline/backend/internal/application/commission"
	identityapp "github.com/roofline/backend/internal/application/identity"
	jobapp "github.com/roofline/backend/internal/application/job"
	"github.com/roofline/backend/internal/infrastructure/auth"
	"github.com/roofline/backend/internal/infrastructure/config"
	"github.com/roofline/backend/internal/infrastructure/event"
	"github.com/roofline/backend/internal/infrastructure/logger"
	"github.com/roofline/backend/internal/infrastructure/persistence"
	"github.com/roofline/backend/internal/infrastructure/telemetry"
	"github.com/roofline/backend/internal/interfaces/http/handler"
	"github.com/roofline/backend/internal/interfaces/http/middleware"
	"github.com/roofline/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Roofline Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize OpenTelemetry providers when telemetry is enabled
	var businessMetrics *telemetry.BusinessMetrics
	if cfg.Telemetry.Enabled {
		ctx := context.Background()

		tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
			Enabled:           cfg.Telemetry.Enabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			SamplingRatio:     cfg.Telemetry.SamplingRatio,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize tracer provider", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				log.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()

		meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
			Enabled:           cfg.Telemetry.Enabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize meter provider", zap.Error(err))
		}
		defer func() {
			if err := meterProvider.Shutdown(context.Background()); err != nil {
				log.Error("Error shutting down meter provider", zap.Error(err))
			}
		}()

		loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
			Enabled:           cfg.Telemetry.Enabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize logger provider", zap.Error(err))
		}
		defer func() {
			if err := loggerProvider.Shutdown(context.Background()); err != nil {
				log.Error("Error shutting down logger provider", zap.Error(err))
			}
		}()

		// Ship zap output to the collector alongside stdout
		otelCore := telemetry.NewZapOTELCore(cfg.Telemetry.ServiceName, loggerProvider)
		log = telemetry.NewBridgedLogger(log.Core(), otelCore)

		businessMetrics, err = telemetry.NewBusinessMetrics(meterProvider.Meter("roofline-business"))
		if err != nil {
			log.Fatal("Failed to initialize business metrics", zap.Error(err))
		}

		log.Info("Telemetry enabled",
			zap.String("collector_endpoint", cfg.Telemetry.CollectorEndpoint),
			zap.Float64("sampling_ratio", cfg.Telemetry.SamplingRatio),
		)
	}

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database, persistence.Options{
		Logger:       gormLog,
		TraceEnabled: cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis, with an in-memory fallback for
	// single-instance deployments without Redis
	var blacklist auth.TokenBlacklist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
	}

	jwtService := auth.NewJWTService(cfg.JWT, blacklist)

	// Initialize repositories
	jobRepo := persistence.NewGormJobRepository(db.DB)
	estimateRepo := persistence.NewGormEstimateRepository(db.DB)
	versionRepo := persistence.NewGormBudgetVersionRepository(db.DB)
	costEventRepo := persistence.NewGormCostEventRepository(db.DB)
	mirrorRepo := persistence.NewGormInvoiceMirrorRepository(db.DB)
	planRepo := persistence.NewGormPlanRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	repRepo := persistence.NewGormRepresentativeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize application services
	budgetService := budgetapp.NewBudgetService(jobRepo, estimateRepo, versionRepo, costEventRepo, mirrorRepo)
	costEventService := budgetapp.NewCostEventService(costEventRepo, budgetService)
	invoiceSyncService := budgetapp.NewInvoiceSyncService(mirrorRepo, budgetService)
	commissionService := commissionapp.NewCommissionService(planRepo, assignmentRepo, jobRepo, estimateRepo, repRepo, versionRepo, costEventRepo, mirrorRepo)
	jobService := jobapp.NewJobService(jobRepo, estimateRepo, repRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	repService := identityapp.NewRepresentativeService(repRepo)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLoggingHandler(log))
	if businessMetrics != nil {
		eventBus.Subscribe(event.NewMetricsHandler(businessMetrics))
	}

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	jobService.SetEventPublisher(eventBus)
	budgetService.SetEventPublisher(eventBus)
	costEventService.SetEventPublisher(eventBus)
	invoiceSyncService.SetEventPublisher(eventBus)
	commissionService.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	costEventHandler := handler.NewCostEventHandler(costEventService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceSyncService)
	commissionHandler := handler.NewCommissionHandler(commissionService)
	repHandler := handler.NewRepresentativeHandler(repService)
	systemHandler := handler.NewSystemHandler()
	if businessMetrics != nil {
		commissionHandler.SetMetrics(businessMetrics)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request ID, panic recovery, request logging,
	// tracing, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/register",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (login and register are public, logout requires a token)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/logout", authHandler.Logout)

	// Job domain (jobs and estimates)
	jobRoutes := router.NewDomainGroup("job", "/jobs")
	jobRoutes.POST("", jobHandler.Create)
	jobRoutes.GET("", jobHandler.List)
	jobRoutes.GET("/:id", jobHandler.Get)

	estimateRoutes := router.NewDomainGroup("estimate", "/estimates")
	estimateRoutes.POST("", jobHandler.CreateEstimate)
	estimateRoutes.GET("/:id", jobHandler.GetEstimate)

	// Budget domain (baseline capture, versions, CAPOUT refresh)
	budgetRoutes := router.NewDomainGroup("budget", "/budgets")
	budgetRoutes.POST("/baseline", budgetHandler.CreateBaseline)
	budgetRoutes.GET("/jobs/:job_id/versions", budgetHandler.GetVersions)
	budgetRoutes.POST("/jobs/:job_id/refresh", budgetHandler.RefreshCapout)

	// Cost ledger
	costEventRoutes := router.NewDomainGroup("cost-event", "/cost-events")
	costEventRoutes.POST("", costEventHandler.Record)
	costEventRoutes.PUT("/:id", costEventHandler.Update)
	costEventRoutes.DELETE("/:id", costEventHandler.Delete)
	costEventRoutes.GET("/jobs/:job_id", costEventHandler.List)

	// Invoice mirror
	invoiceRoutes := router.NewDomainGroup("invoice", "/invoices")
	invoiceRoutes.POST("/sync", invoiceHandler.Sync)
	invoiceRoutes.GET("/jobs/:job_id", invoiceHandler.Get)

	// Commission domain (plans, assignments, calculation)
	commissionRoutes := router.NewDomainGroup("commission", "/commissions")
	commissionRoutes.POST("/plans", commissionHandler.CreatePlan)
	commissionRoutes.GET("/plans", commissionHandler.ListPlans)
	commissionRoutes.DELETE("/plans/:id", commissionHandler.DeactivatePlan)
	commissionRoutes.POST("/assignments", commissionHandler.AssignPlan)
	commissionRoutes.GET("/jobs/:job_id/calculate", commissionHandler.Calculate)

	// Representatives
	repRoutes := router.NewDomainGroup("representative", "/representatives")
	repRoutes.POST("", repHandler.Create)
	repRoutes.GET("", repHandler.List)
	repRoutes.GET("/:id", repHandler.Get)
	repRoutes.PUT("/:id/overhead-rate", repHandler.UpdateOverheadRate)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(jobRoutes).
		Register(estimateRoutes).
		Register(budgetRoutes).
		Register(costEventRoutes).
		Register(invoiceRoutes).
		Register(commissionRoutes).
		Register(repRoutes).
		Register(systemRoutes)

	r.Setup()

	// Simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness of the process and its database connection
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
