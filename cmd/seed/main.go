package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"atelier/internal/auth"
	"atelier/internal/config"
	"atelier/internal/db"
	apperrors "atelier/internal/errors"
	"atelier/internal/logger"
	"atelier/internal/repository"
	"atelier/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.AppEnv)

	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)

	if err := service.NewRoleService(roleRepo).EnsureRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed roles")
	}
	log.Info().Msg("roles ready")

	if *email == "" {
		log.Info().Msg("no admin email given, skipping admin user")
		return
	}

	// token signing is not used here; the service only needs it for logins
	authService := service.NewAuthService(
		repository.NewUserRepository(gormDB),
		roleRepo,
		auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL),
		auth.NewTokenStore(nil),
	)

	user, err := authService.RegisterAdmin(ctx, *email, *username, *password)
	switch {
	case errors.Is(err, apperrors.ErrDuplicateName):
		log.Info().Str("email", *email).Msg("admin already exists")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to register admin")
	default:
		log.Info().Uint("id", user.ID).Str("email", user.Email).Msg("admin registered")
	}
}
