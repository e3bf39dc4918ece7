package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Cache Cache

	Pricing Pricing

	Notifications Notifications

	// Optional JSON file with users and stock loaded at startup.
	SeedFile string `validate:"omitempty,filepath"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Enabled bool

	GroupID            string   `validate:"required"`
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	OrdersTopic        string   `validate:"required"`
	NotificationsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Pricing struct {
	TaxEnabled bool
}

type Notifications struct {
	Transport string `validate:"required,oneof=log kafka"`
	QueueSize int    `validate:"gte=1"`

	RetryAttempts     int           `validate:"gte=1"`
	RetryInitialDelay time.Duration `validate:"gt=0"`
	RetryMaxDelay     time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled:            envBool("KAFKA_ENABLED", false),
			GroupID:            env("KAFKA_GROUP_ID", "order-processor"),
			OrdersTopic:        env("KAFKA_ORDERS_TOPIC", "orders"),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 30*time.Minute),
		},

		Pricing: Pricing{
			TaxEnabled: envBool("TAX_ENABLED", true),
		},

		Notifications: Notifications{
			Transport: env("NOTIFICATIONS_TRANSPORT", "log"),
			QueueSize: envInt("NOTIFICATIONS_QUEUE_SIZE", 256),

			RetryAttempts:     envInt("NOTIFICATIONS_RETRY_ATTEMPTS", 5),
			RetryInitialDelay: envDuration("NOTIFICATIONS_RETRY_INITIAL_DELAY", 100*time.Millisecond),
			RetryMaxDelay:     envDuration("NOTIFICATIONS_RETRY_MAX_DELAY", 5*time.Second),
		},

		SeedFile: env("SEED_FILE", ""),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
