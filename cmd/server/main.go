package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weblibrary/library-system/internal/api"
	"github.com/weblibrary/library-system/internal/core/service"
	"github.com/weblibrary/library-system/internal/infrastructure/config"
	mongodb "github.com/weblibrary/library-system/internal/infrastructure/db/mongo"
	redisdb "github.com/weblibrary/library-system/internal/infrastructure/db/redis"
	"github.com/weblibrary/library-system/internal/infrastructure/mail"
	"github.com/weblibrary/library-system/internal/infrastructure/storage"
	"github.com/weblibrary/library-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})
	cfg := config.Load(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := service.EnsureSuperAdmin(ctx, mongodb.NewUserRepository(db), service.NewPasswordHasher(cfg.BcryptCost), log, service.SuperAdminSeed{
		Username:  cfg.SuperAdmin.Username,
		Email:     cfg.SuperAdmin.Email,
		Password:  cfg.SuperAdmin.Password,
		FirstName: cfg.SuperAdmin.FirstName,
		LastName:  cfg.SuperAdmin.LastName,
	}); err != nil {
		log.Fatal().Err(err).Msg("super admin seeding failed")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir unavailable")
	}

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		From:        cfg.SMTP.From,
		FrontendURL: cfg.FrontendURL,
	}, log)

	e := api.NewRouter(api.Dependencies{
		Config:      cfg,
		Logger:      log,
		MongoClient: mongoClient,
		MongoDB:     db,
		Redis:       redisClient,
		Mailer:      mailer,
		Store:       store,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
