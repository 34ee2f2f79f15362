package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/adapters/event"
	httpAdapter "github.com/JanviSingh1712/portfolio/adapters/http"
	"github.com/JanviSingh1712/portfolio/adapters/media_storage"
	"github.com/JanviSingh1712/portfolio/adapters/persistence"
	"github.com/JanviSingh1712/portfolio/internal/application/service"
	analyticsUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/analytics"
	authUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/auth"
	cacheUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/cache"
	certificationUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/certification"
	introductionUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/introduction"
	projectUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/project"
	sectionUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/section"
	"github.com/JanviSingh1712/portfolio/internal/config"
	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/internal/render"
	"github.com/JanviSingh1712/portfolio/pkg/auth"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
	"github.com/JanviSingh1712/portfolio/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start portfolio server...", zap.String("env", cfg.App.Env), zap.String("content_source", cfg.Content.Source))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(ctx, cfg.Jaeger.OTLPEndpoint, appLogger, "portfolio-server")
		if err != nil {
			appLogger.Fatal("Cannot init tracer", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				appLogger.Error("Tracer shutdown failed", err)
			}
		}()
	}

	// Repositories
	sources := sectionUC.Sources{
		Introduction:   persistence.NewStaticIntroductionRepo(),
		Certifications: persistence.NewStaticCertificationRepo(),
		Projects:       persistence.NewStaticProjectRepo(),
	}
	if cfg.UsePostgres() {
		dbPool, err := persistence.NewPostgresPool(ctx, cfg.DB.DSN, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Postgres", err)
		}
		defer dbPool.Close()
		sources = postgresSources(dbPool, appLogger)
	}

	// Cache and view counters
	var (
		cache     service.SectionCache = service.NopCache{}
		viewStats *analyticsUC.ViewStatsUseCase
	)
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		cache = persistence.NewRedisSectionCache(redisClient, cfg.Cache.TTL)
		viewStats = analyticsUC.NewViewStatsUseCase(persistence.NewRedisViewCounter(redisClient))
	}

	// View events
	var publisher analytics.Publisher = service.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := event.NewKafkaViewPublisher(cfg.Kafka.Brokers, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Images
	var images render.ImageResolver = media_storage.NewLocalImages("/assets")
	if cfg.Cloudinary.CloudName != "" {
		cld, err := media_storage.NewCloudinaryAdapter(cfg.Cloudinary.CloudName, cfg.Cloudinary.ApiKey, cfg.Cloudinary.ApiSecret, cfg.Cloudinary.Folder, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Cloudinary", err)
		}
		images = cld
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		appLogger.Fatal("Cannot parse templates", err)
	}

	// Use Cases
	renderSectionUseCase := sectionUC.NewRenderSectionUseCase(sources, renderer, images, cache, publisher, appLogger)
	renderPageUseCase := sectionUC.NewRenderPageUseCase(renderSectionUseCase, sectionUC.SiteInfo{URL: cfg.App.SiteURL})
	getIntroductionUseCase := introductionUC.NewGetIntroductionUseCase(sources.Introduction)
	listCertificationsUseCase := certificationUC.NewListCertificationsUseCase(sources.Certifications, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(sources.Projects, appLogger)
	getProjectUseCase := projectUC.NewGetProjectUseCase(sources.Projects, appLogger)
	feedUseCase := projectUC.NewProjectFeedUseCase(sources.Projects, sources.Introduction, cfg.App.SiteURL, appLogger)
	purgeCacheUseCase := cacheUC.NewPurgeCacheUseCase(cache, appLogger)

	// HTTP Handlers
	routerCfg := httpAdapter.RouterConfig{
		PublicDir:    cfg.App.PublicDir,
		TrackingSalt: cfg.Tracking.Salt,
		Sections:     httpAdapter.NewSectionHandler(renderSectionUseCase, renderPageUseCase, appLogger),
		Content:      httpAdapter.NewContentHandler(getIntroductionUseCase, listCertificationsUseCase, listProjectsUseCase, getProjectUseCase),
		RSS:          httpAdapter.NewRSSHandler(feedUseCase, appLogger),
	}
	if cfg.AdminEnabled() {
		jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
		owner := authUC.Owner{ID: ownerID(cfg), PasswordHash: cfg.Auth.OwnerPasswordHash}
		routerCfg.JWTService = jwtSvc
		routerCfg.Auth = httpAdapter.NewAuthHandler(authUC.NewLoginUseCase(owner, jwtSvc, appLogger), appLogger)
		routerCfg.Admin = httpAdapter.NewAdminHandler(viewStats, purgeCacheUseCase, appLogger)
	} else {
		appLogger.Warn("Admin routes disabled: auth.jwt_secret or auth.owner_password_hash not set")
	}

	router := httpAdapter.NewRouter(routerCfg, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}

func postgresSources(dbPool *pgxpool.Pool, log logger.Logger) sectionUC.Sources {
	return sectionUC.Sources{
		Introduction:   persistence.NewPostgresIntroductionRepo(dbPool, log),
		Certifications: persistence.NewPostgresCertificationRepo(dbPool, log),
		Projects:       persistence.NewPostgresProjectRepo(dbPool, log),
	}
}

// ownerID falls back to a stable id derived from the site URL so tokens
// survive restarts when auth.owner_id is not set.
func ownerID(cfg config.Config) uuid.UUID {
	if id, err := uuid.Parse(cfg.Auth.OwnerID); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(cfg.App.SiteURL))
}
