package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/accommodation"
	"wayfarer/catalog"
	"wayfarer/config"
	"wayfarer/handlers"
	"wayfarer/itinerary"
	"wayfarer/logging"
	"wayfarer/metrics"
	"wayfarer/middleware"
	"wayfarer/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	// only listed proxies may set X-Forwarded-For; empty trusts none
	if err := r.SetTrustedProxies(cfg.TrustedProxies()); err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := buildHandler(cfg, logger)

	reg := metrics.InitRegistry()
	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	api := r.Group("/api")
	api.Use(middleware.NewRateLimiter(cfg.RateLimitPerMin).Middleware(logger))
	h.Register(api)

	logger.Info("🚀 Wayfarer backend starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func buildHandler(cfg *config.Config, logger *zap.Logger) *handlers.Handler {
	cat := catalog.Default()
	logger.Info("✅ Catalog loaded", zap.Strings("cities", cat.Cities()))

	h := &handlers.Handler{
		Catalog:   cat,
		Assembler: itinerary.NewAssembler(cat),
		Simulator: accommodation.NewSimulator(
			accommodation.WithLinker(accommodation.NewLinker(cfg.AffiliateIDs())),
		),
		Enhancer: services.NewHuggingFaceClient(services.HuggingFaceConfig{
			APIKey:            cfg.HuggingFaceAPIKey,
			Model:             cfg.HFModel,
			Timeout:           cfg.HFTimeout(),
			RequestsPerSecond: cfg.HFRequestsPerSecond,
		}, logger),
		Logger:         logger,
		Sender:         cfg.Sender(),
		AdminEmail:     cfg.AdminAddress(),
		MailDriver:     cfg.MailDriver,
		EmailTimeout:   cfg.EmailTimeout(),
		EnhanceTimeout: cfg.HFTimeout(),
	}

	switch cfg.MailDriver {
	case config.MailDriverSMTP:
		h.Mailer = services.NewSMTPMailer(services.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			UseTLS:   cfg.SMTPUseTLS,
		}, logger)
		logger.Info("✅ SMTP mailer configured", zap.String("host", cfg.SMTPHost), zap.Int("port", cfg.SMTPPort))
	case config.MailDriverSES:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		m, err := services.NewSESMailer(ctx, cfg.AWSRegion, logger)
		cancel()
		if err != nil {
			logger.Warn("⚠️  SES mailer unavailable, email is disabled", zap.Error(err))
			h.Mailer = services.DisabledMailer{}
		} else {
			h.Mailer = m
			logger.Info("✅ SES mailer configured", zap.String("region", cfg.AWSRegion))
		}
	default:
		logger.Warn("⚠️  MAIL_DRIVER not set, email endpoints will report ECONFIG")
		h.Mailer = services.DisabledMailer{}
	}

	if cfg.RedisAddr != "" {
		store := services.NewRedisVolumeStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := store.Ping(ctx); err != nil {
			logger.Warn("⚠️  Redis unreachable, booking volumes will retry per request", zap.Error(err))
		} else {
			logger.Info("✅ Redis connected", zap.String("addr", cfg.RedisAddr))
		}
		cancel()
		h.Volumes = store
		h.VolumePinger = store
		h.VolumeBackend = "redis"
	} else {
		h.Volumes = services.NewMemoryVolumeStore()
		h.VolumeBackend = "memory"
	}

	return h
}
