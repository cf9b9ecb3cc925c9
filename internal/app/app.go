package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"

	"github.com/sholaoke/churchbase/internal/cache"
	"github.com/sholaoke/churchbase/internal/config"
	"github.com/sholaoke/churchbase/internal/env"
	"github.com/sholaoke/churchbase/internal/errHandler"
	"github.com/sholaoke/churchbase/internal/file"
	"github.com/sholaoke/churchbase/internal/helper"
	"github.com/sholaoke/churchbase/internal/repository"
	seeders "github.com/sholaoke/churchbase/internal/seeder"
	"github.com/sholaoke/churchbase/internal/smtp"
)

// Application holds every long-lived service the handlers depend on. It is
// assembled once, during startup, and torn down on shutdown.
type Application struct {
	Config       config.Config
	DB           repository.Database
	Logger       *slog.Logger
	Mailer       *smtp.Mailer
	Cache        *cache.Cache
	FileUploader *file.FileUploader
	WG           sync.WaitGroup

	errorHandler *errHandler.ErrorHandler
	helper       *helper.HelperRepository
}

func NewApplication(logger *slog.Logger) (*Application, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", "error", err)
	}

	var cfg config.Config

	// Defaults here are development values only; production deployments must
	// set the real values through the environment.
	cfg.BaseURL = env.GetString("BASE_URL", "http://localhost:4444")
	cfg.HttpPort = env.GetInt("HTTP_PORT", 4444)

	cfg.Db.Dsn = env.GetString("DB_DSN", "user:pass@localhost:5432/churchbase")
	cfg.Db.Automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.Db.Autoseed = env.GetBool("DB_AUTOSEED", true)

	cfg.Jwt.SecretKey = env.GetString("JWT_SECRET_KEY", "ajf5nx3qmp6zquevllxocxqvyz42ypuo")

	// Server errors are only emailed out when NOTIFICATIONS_EMAIL is set.
	cfg.Notifications.Email = env.GetString("NOTIFICATIONS_EMAIL", "")

	cfg.Smtp.Host = env.GetString("SMTP_HOST", "example.smtp.host")
	cfg.Smtp.Port = env.GetInt("SMTP_PORT", 25)
	cfg.Smtp.Username = env.GetString("SMTP_USERNAME", "example_username")
	cfg.Smtp.Password = env.GetString("SMTP_PASSWORD", "pa55word")
	cfg.Smtp.From = env.GetString("SMTP_FROM", "ChurchBase <no_reply@example.org>")

	cfg.RedisServer = env.GetString("REDIS_SERVER", "localhost:6379")
	cfg.RedisDB = env.GetInt("REDIS_DB", 0)

	cfg.FileUploader.CloudName = env.GetString("CLOUDINARY_CLOUD_NAME", "")
	cfg.FileUploader.ApiKey = env.GetString("CLOUDINARY_API_KEY", "")
	cfg.FileUploader.ApiSecret = env.GetString("CLOUDINARY_API_SECRET", "")
	cfg.FileUploader.Folder = env.GetString("CLOUDINARY_FOLDER", "churchbase")

	db, err := repository.New(cfg.Db.Dsn, cfg.Db.Automigrate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Db.Autoseed {
		seeders.New(db).Run()
	}

	mailer, err := smtp.NewMailer(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password, cfg.Smtp.From)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	errorHandler := errHandler.New(cfg.Notifications.Email, cfg.BaseURL, mailer, logger)

	app := &Application{
		Config:       cfg,
		DB:           db,
		Logger:       logger,
		Mailer:       mailer,
		Cache:        cache.New(cfg.RedisServer, cfg.RedisDB),
		FileUploader: file.New(cfg.FileUploader.CloudName, cfg.FileUploader.ApiKey, cfg.FileUploader.ApiSecret, cfg.FileUploader.Folder),
		errorHandler: errorHandler,
	}

	app.helper = helper.New(&app.Config.BaseURL, &app.WG, errorHandler)

	return app, nil
}
