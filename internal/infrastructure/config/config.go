package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

// insecureDevSecret is only ever used when ENV=development and JWT_SECRET is
// unset. Any other environment refuses to start without a real secret.
const insecureDevSecret = "mysecretkeyforweblibrary12412412434"

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTTTL     time.Duration `env:"JWT_TTL,     default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`

	// FrontendURL is the base for activation and reset links in emails.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000/"`
	UploadDir   string `env:"UPLOAD_DIR,   default=uploads"`

	Mongo      MongoConfig
	Redis      RedisConfig
	SMTP       SMTPConfig
	SuperAdmin SuperAdminConfig
}

// SuperAdminConfig seeds the designated super-admin account at startup.
// Seeding is skipped when username or password is unset.
type SuperAdminConfig struct {
	Username  string `env:"SUPERADMIN_USERNAME"`
	Email     string `env:"SUPERADMIN_EMAIL"`
	Password  string `env:"SUPERADMIN_PASSWORD"`
	FirstName string `env:"SUPERADMIN_FIRSTNAME, default=Super"`
	LastName  string `env:"SUPERADMIN_LASTNAME,  default=Admin"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=library_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     string `env:"SMTP_PORT, default=25"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=library@localhost"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT secret is fatal outside development.
func Load(logger zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			logger.Fatal().Msg("JWT_SECRET is required outside development")
		}
		logger.Warn().Msg("JWT_SECRET not set, using insecure development default")
		cfg.JWTSecret = insecureDevSecret
	}

	return &cfg
}
