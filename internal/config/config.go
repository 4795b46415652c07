package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	ServerPort      string        `env:"PORT" envDefault:"3001"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitRPS       float64  `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" envDefault:"40"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Настройки для MinIO. Нужны только воркеру архива событий.
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"booking-events"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`

	// Пустой RABBITMQ_URL отключает публикацию событий в режиме server.
	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQExchange  string `env:"RABBITMQ_EXCHANGE" envDefault:"booking_events"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"booking_events_archive"`
		RabbitMQDLQName   string `env:"RABBITMQ_DLQ_NAME" envDefault:"booking_events_archive.dlq"`
	}
}

// EventsEnabled сообщает, настроен ли брокер сообщений.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS должен быть положительным, получено %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst < 1 {
		cfg.RateLimitBurst = 1
	}

	return &cfg, nil
}
