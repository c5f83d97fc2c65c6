package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sunday-league/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	DBURL                       string
	CacheEnabled                bool
	CacheTTL                    time.Duration
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	NotifyEnabled               bool
	NotifyWebhookURL            string
	NotifyChannel               string
	NotifyTimeout               time.Duration
	NotifyCircuitEnabled        bool
	NotifyCircuitFailureCount   int
	NotifyCircuitOpenTimeout    time.Duration
	NotifyCircuitHalfOpenMaxReq int
	AvatarEnabled               bool
	AvatarBaseURL               string
	AvatarAPIKey                string
	AvatarStyle                 string
	AvatarTimeout               time.Duration
	AvatarWorkerCount           int
	AvatarCircuitEnabled        bool
	AvatarCircuitFailureCount   int
	AvatarCircuitOpenTimeout    time.Duration
	AvatarCircuitHalfOpenMaxReq int
	LogLevel                    logging.Level
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "sunday-league"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DBURL:          strings.TrimSpace(getEnv("DATABASE_URL", "")),
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cfg.CacheEnabled = cacheEnabled

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheTTL = cacheTTL

	cfg.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_READ_TIMEOUT must be > 0")
	}
	cfg.ReadTimeout = readTimeout

	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_WRITE_TIMEOUT must be > 0")
	}
	cfg.WriteTimeout = writeTimeout

	notifyEnabled, err := strconv.ParseBool(getEnv("NOTIFY_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_ENABLED: %w", err)
	}
	cfg.NotifyEnabled = notifyEnabled

	cfg.NotifyWebhookURL = strings.TrimSpace(getEnv("NOTIFY_WEBHOOK_URL", ""))
	if notifyEnabled && cfg.NotifyWebhookURL == "" {
		return Config{}, fmt.Errorf("NOTIFY_WEBHOOK_URL is required when NOTIFY_ENABLED=true")
	}
	cfg.NotifyChannel = strings.TrimSpace(getEnv("NOTIFY_CHANNEL", ""))

	notifyTimeout, err := time.ParseDuration(getEnv("NOTIFY_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_TIMEOUT: %w", err)
	}
	if notifyTimeout <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_TIMEOUT must be > 0")
	}
	cfg.NotifyTimeout = notifyTimeout

	notifyCircuitEnabled, err := strconv.ParseBool(getEnv("NOTIFY_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_ENABLED: %w", err)
	}
	cfg.NotifyCircuitEnabled = notifyCircuitEnabled

	notifyCircuitFailureCount, err := getEnvAsInt("NOTIFY_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if notifyCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NOTIFY_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cfg.NotifyCircuitFailureCount = notifyCircuitFailureCount

	notifyCircuitOpenTimeout, err := time.ParseDuration(getEnv("NOTIFY_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if notifyCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	cfg.NotifyCircuitOpenTimeout = notifyCircuitOpenTimeout

	notifyCircuitHalfOpenMaxReq, err := getEnvAsInt("NOTIFY_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if notifyCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("NOTIFY_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.NotifyCircuitHalfOpenMaxReq = notifyCircuitHalfOpenMaxReq

	avatarEnabled, err := strconv.ParseBool(getEnv("AVATAR_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_ENABLED: %w", err)
	}
	cfg.AvatarEnabled = avatarEnabled

	cfg.AvatarBaseURL = strings.TrimSpace(getEnv("AVATAR_BASE_URL", ""))
	if avatarEnabled && cfg.AvatarBaseURL == "" {
		return Config{}, fmt.Errorf("AVATAR_BASE_URL is required when AVATAR_ENABLED=true")
	}
	cfg.AvatarAPIKey = strings.TrimSpace(getEnv("AVATAR_API_KEY", ""))
	cfg.AvatarStyle = strings.TrimSpace(getEnv("AVATAR_STYLE", ""))

	avatarTimeout, err := time.ParseDuration(getEnv("AVATAR_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_TIMEOUT: %w", err)
	}
	if avatarTimeout <= 0 {
		return Config{}, fmt.Errorf("AVATAR_TIMEOUT must be > 0")
	}
	cfg.AvatarTimeout = avatarTimeout

	avatarWorkerCount, err := getEnvAsInt("AVATAR_WORKER_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_WORKER_COUNT: %w", err)
	}
	if avatarWorkerCount < 1 {
		return Config{}, fmt.Errorf("AVATAR_WORKER_COUNT must be >= 1")
	}
	cfg.AvatarWorkerCount = avatarWorkerCount

	avatarCircuitEnabled, err := strconv.ParseBool(getEnv("AVATAR_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_CIRCUIT_ENABLED: %w", err)
	}
	cfg.AvatarCircuitEnabled = avatarCircuitEnabled

	avatarCircuitFailureCount, err := getEnvAsInt("AVATAR_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if avatarCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("AVATAR_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cfg.AvatarCircuitFailureCount = avatarCircuitFailureCount

	avatarCircuitOpenTimeout, err := time.ParseDuration(getEnv("AVATAR_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if avatarCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("AVATAR_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	cfg.AvatarCircuitOpenTimeout = avatarCircuitOpenTimeout

	avatarCircuitHalfOpenMaxReq, err := getEnvAsInt("AVATAR_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse AVATAR_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if avatarCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("AVATAR_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.AvatarCircuitHalfOpenMaxReq = avatarCircuitHalfOpenMaxReq

	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
