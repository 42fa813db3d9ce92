package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppPort               string
	AppEnv                string
	AppURL                string
	AppCorsAllowedOrigins []string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMigrate  bool

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTExp    int

	S3Bucket       string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3Endpoint     string
	S3PublicDomain string

	TrustedProxyCIDRs []string

	// Voting / trust knobs.
	VoteWriteMaxRetries    int
	VoteRateLimitPerMinute int
	ReportRateLimitPerHour int
	SubmissionPoints       int
	FrequentReporterCount  int
	CommunityHeroStreak    int

	// Default SLA bounds applied when a report has no assigned department.
	DefaultResolutionHours float64
	DefaultEscalationHours float64

	EscalationSweepCron string
	OverdueSweepCron    string
	SweepBatchSize      int

	WSEventsPerSecond float64
}

func LoadAppConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, reading from system environment variables")
	}

	return &AppConfig{
		AppPort:               mustGetEnv("APP_PORT"),
		AppEnv:                mustGetEnv("APP_ENV"),
		AppURL:                getEnv("APP_URL", "http://localhost:8080"),
		AppCorsAllowedOrigins: strings.Split(getEnv("APP_CORS_ALLOWED_ORIGINS", "*"), ","),

		DBHost:     mustGetEnv("DB_HOST"),
		DBPort:     mustGetEnv("DB_PORT"),
		DBUser:     mustGetEnv("DB_USER"),
		DBPassword: mustGetEnv("DB_PASSWORD"),
		DBName:     mustGetEnv("DB_NAME"),
		DBSSLMode:  mustGetEnv("DB_SSLMODE"),
		DBMigrate:  mustGetEnvAsBool("DB_MIGRATE"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret: mustGetEnv("JWT_SECRET"),
		JWTExp:    mustGetEnvAsInt("JWT_EXP"),

		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3PublicDomain: getEnv("S3_PUBLIC_DOMAIN", ""),

		TrustedProxyCIDRs: splitNonEmpty(getEnv("TRUSTED_PROXY_CIDRS", "")),

		VoteWriteMaxRetries:    getEnvAsInt("VOTE_WRITE_MAX_RETRIES", 3),
		VoteRateLimitPerMinute: getEnvAsInt("VOTE_RATE_LIMIT_PER_MINUTE", 30),
		ReportRateLimitPerHour: getEnvAsInt("REPORT_RATE_LIMIT_PER_HOUR", 5),
		SubmissionPoints:       getEnvAsInt("SUBMISSION_POINTS", 10),
		FrequentReporterCount:  getEnvAsInt("FREQUENT_REPORTER_COUNT", 10),
		CommunityHeroStreak:    getEnvAsInt("COMMUNITY_HERO_STREAK", 7),

		DefaultResolutionHours: getEnvAsFloat("DEFAULT_RESOLUTION_HOURS", 168),
		DefaultEscalationHours: getEnvAsFloat("DEFAULT_ESCALATION_HOURS", 72),

		EscalationSweepCron: getEnv("ESCALATION_SWEEP_CRON", "*/15 * * * *"),
		OverdueSweepCron:    getEnv("OVERDUE_SWEEP_CRON", "5 * * * *"),
		SweepBatchSize:      getEnvAsInt("SWEEP_BATCH_SIZE", 200),

		WSEventsPerSecond: getEnvAsFloat("WS_EVENTS_PER_SECOND", 50),
	}
}

func (c *AppConfig) DBConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mustGetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		slog.Error("Environment variable is required but not set", "key", key)
		os.Exit(1)
	}
	return value
}

func mustGetEnvAsBool(key string) bool {
	valStr := mustGetEnv(key)
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		slog.Error("Environment variable must be a boolean (true/false)", "key", key, "value", valStr)
		os.Exit(1)
	}
	return val
}

func mustGetEnvAsInt(key string) int {
	valStr := mustGetEnv(key)
	val, err := strconv.Atoi(valStr)
	if err != nil {
		slog.Error("Environment variable must be an integer", "key", key, "value", valStr)
		os.Exit(1)
	}
	return val
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		slog.Warn("Environment variable must be an integer, using fallback", "key", key, "value", valStr, "fallback", fallback)
		return fallback
	}
	return val
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		slog.Warn("Environment variable must be a float, using fallback", "key", key, "value", valStr, "fallback", fallback)
		return fallback
	}
	return val
}
