package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	AppHost                string `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort                string `env:"APP_PORT" envDefault:"8080"`
	ShutdownTimeoutSeconds int    `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`
	MaxBodySize            string `env:"MAX_BODY_SIZE" envDefault:"50M"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"digiwork.db"`

	SecretKey  string        `env:"SECRET_KEY"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	NameRegex     string `env:"NAME_REGEX" envDefault:"^[A-Za-z0-9_.]+$"`
	EmailRegex    string `env:"EMAIL_REGEX" envDefault:"^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\\.[A-Za-z]{2,}$"`
	PasswordRegex string `env:"PASSWORD_REGEX" envDefault:"^(?=.*[a-z])(?=.*[A-Z])(?=.*[0-9]).+$"`

	UploadRoot string `env:"UPLOAD_ROOT" envDefault:"."`

	NotifyTransport   string        `env:"NOTIFY_TRANSPORT" envDefault:"log"`
	NotifyWorkers     int           `env:"NOTIFY_WORKERS" envDefault:"4"`
	NotifyQueueSize   int           `env:"NOTIFY_QUEUE_SIZE" envDefault:"256"`
	NotifyTimeout     time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
	NotifyParallelism int           `env:"NOTIFY_PARALLELISM" envDefault:"8"`
	PushGatewayURL    string        `env:"PUSH_GATEWAY_URL" envDefault:"https://fcm.googleapis.com/fcm/send"`
	PushServerKey     string        `env:"PUSH_SERVER_KEY"`
	RedisHost         string        `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	RedisPort         string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPushKey      string        `env:"REDIS_PUSH_KEY" envDefault:"push_notifications"`
	TelegramToken     string        `env:"TELEGRAM_TOKEN"`

	MailTransport string `env:"MAIL_TRANSPORT" envDefault:"log"`
	MailFrom      string `env:"MAIL_FROM" envDefault:"no-reply@digiwork.local"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPUser      string `env:"SMTP_USER"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`
	ResendAPIKey  string `env:"RESEND_API_KEY"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	ReaperSchedule string        `env:"REAPER_SCHEDULE" envDefault:"@every 1h"`
	ReaperGrace    time.Duration `env:"REAPER_GRACE" envDefault:"1h"`
}

func (c *Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// Load reads .env when present, parses the environment and exits on an
// unusable configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.AppHost == "" || cfg.AppPort == "":
		return fmt.Errorf("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	case cfg.DatabaseDSN == "":
		return fmt.Errorf("DATABASE_DSN must not be empty")
	case cfg.DBDriver != "sqlite" && cfg.DBDriver != "mysql" && cfg.DBDriver != "postgres":
		return fmt.Errorf("DB_DRIVER must be one of sqlite, mysql, postgres")
	case cfg.SecretKey == "":
		return fmt.Errorf("SECRET_KEY must not be empty")
	case cfg.TokenTTL <= 0:
		return fmt.Errorf("TOKEN_TTL must be greater than 0")
	case cfg.NotifyWorkers <= 0:
		return fmt.Errorf("NOTIFY_WORKERS must be greater than 0")
	case cfg.NotifyQueueSize <= 0:
		return fmt.Errorf("NOTIFY_QUEUE_SIZE must be greater than 0")
	case cfg.NotifyParallelism <= 0:
		return fmt.Errorf("NOTIFY_PARALLELISM must be greater than 0")
	case cfg.NotifyTimeout <= 0:
		return fmt.Errorf("NOTIFY_TIMEOUT must be greater than 0")
	case cfg.ShutdownTimeoutSeconds <= 0:
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}

	switch cfg.NotifyTransport {
	case "log", "redis":
	case "http":
		if cfg.PushServerKey == "" {
			return fmt.Errorf("PUSH_SERVER_KEY is required when NOTIFY_TRANSPORT=http")
		}
	case "telegram":
		if cfg.TelegramToken == "" {
			return fmt.Errorf("TELEGRAM_TOKEN is required when NOTIFY_TRANSPORT=telegram")
		}
	default:
		return fmt.Errorf("NOTIFY_TRANSPORT must be one of log, http, redis, telegram")
	}

	switch cfg.MailTransport {
	case "log", "smtp":
	case "resend":
		if cfg.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when MAIL_TRANSPORT=resend")
		}
	default:
		return fmt.Errorf("MAIL_TRANSPORT must be one of log, smtp, resend")
	}

	return nil
}
