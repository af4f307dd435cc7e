package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "atelier/docs" // swagger docs

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"atelier/internal/auth"
	"atelier/internal/cache"
	"atelier/internal/config"
	"atelier/internal/db"
	"atelier/internal/handler"
	"atelier/internal/logger"
	"atelier/internal/mail"
	"atelier/internal/repository"
	"atelier/internal/router"
	"atelier/internal/service"
	"atelier/internal/storage"
)

// @title Atelier API
// @version 1.0
// @description Photography studio API: gallery, events, contact form and administration.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.AppEnv)

	ctx := context.Background()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without cache")
	}

	lister, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init")
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer queueClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	taxonomyRepo := repository.NewTaxonomyRepository(gormDB)
	photoRepo := repository.NewPhotoRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	roleService := service.NewRoleService(roleRepo)
	if err := roleService.EnsureRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure roles")
	}
	authService := service.NewAuthService(userRepo, roleRepo, jwtService, tokenStore)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo)
	photoService := service.NewPhotoService(photoRepo, taxonomyRepo, lister, cacheClient, cfg.GalleryPageSize)
	eventService := service.NewEventService(eventRepo, cacheClient)
	contactService := service.NewContactService(mail.NewQueue(queueClient))

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, router.Handlers{
		Auth:     handler.NewAuthHandler(authService, jwtService.TTL()),
		Gallery:  handler.NewGalleryHandler(photoService),
		Photo:    handler.NewPhotoHandler(photoService),
		Event:    handler.NewEventHandler(eventService, contactService),
		Contact:  handler.NewContactHandler(contactService),
		Taxonomy: handler.NewTaxonomyHandler(taxonomyService),
	}, authService)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Str("env", cfg.AppEnv).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
