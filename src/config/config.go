package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

var (
	API_ENV        = os.Getenv("API_ENV")
	API_PORT       = getEnv("API_PORT", "5000")
	APP_HOST       = os.Getenv("APP_HOST")
	SITE_URL       = getEnv("SITE_URL", "http://localhost:5000")
	STORAGE_DRIVER = getEnv("STORAGE_DRIVER", "memory")
	REDIS_HOST     = os.Getenv("REDIS_HOST")
	SQS_QUEUE_URL  = os.Getenv("SQS_QUEUE_URL")
	SNS_TOPIC_ARN  = os.Getenv("SNS_TOPIC_ARN")
	KAFKA_BROKER   = os.Getenv("KAFKA_BROKER")
	KAFKA_TOPIC    = getEnv("KAFKA_TOPIC", "bookings")
	MAIL_FROM      = getEnv("MAIL_FROM", "bookings@wanderlust.travel")
	MAIL_FROM_NAME = getEnv("MAIL_FROM_NAME", "Wanderlust Bookings")
)

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"

const DATE_FORMAT = "2006-01-02"

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := getEnv("DATABASE_PORT", "5432")
	DATABASE_SSLMODE := getEnv("DATABASE_SSLMODE", "disable")
	DATABASE_TIMEZONE := getEnv("DATABASE_TIMEZONE", "UTC")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// MaintenanceMode is read on every call so it can be toggled without a restart.
func MaintenanceMode() bool {
	on, err := strconv.ParseBool(os.Getenv("MAINTENANCE_MODE"))
	return err == nil && on
}

// CacheTTL is the lifetime of cached featured listings and the refresh interval of the warm-up job.
func CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(os.Getenv("CACHE_TTL"))
	if err != nil || ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}

// Notifiers returns the configured booking notifier names, e.g. "log,sqs,kafka,smtp".
func Notifiers() []string {
	raw := getEnv("NOTIFIER", "log")
	names := []string{}
	for _, n := range strings.Split(raw, ",") {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

func IsProd() bool {
	return API_ENV == "production"
}

func IsLocal() bool {
	return API_ENV == "local" || API_ENV == ""
}
