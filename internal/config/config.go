package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	Port               string
	CORSOrigin         string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	JWTSecret          string
	TokenExpiration    int64 // Session token lifetime in seconds
	BcryptCost         int64
	MaxFileSize        int64
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDB            int64
	AuthRateLimit      int64 // Max auth attempts per IP per window, 0 disables
	AuthRateWindow     int64 // Window length in seconds
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioBucket        string
	MinioUseSSL        bool
	MinioPublicURL     string
	UploadFolder       string
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                    // Default development
		LogLevel:           getLogLevel(),                                       // Default INFO
		Port:               getEnv("PORT", "8080"),                              // Default 8080
		CORSOrigin:         getEnv("CORS_ORIGIN", ""),                           // Empty disables CORS headers
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                     // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),              // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "bookvault_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "bookvault_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "bookvault_db"),       // Default database name
		JWTSecret:          getEnv("JWT_SECRET", "bookvault_secret"),            // Default secret key
		TokenExpiration:    getEnvAsInt64("TOKEN_EXPIRATION", 604800),           // Default 7 days
		BcryptCost:         getEnvAsInt64("BCRYPT_COST", 10),                    // Default bcrypt cost
		MaxFileSize:        getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024),         // Default 5 MB
		RedisHost:          getEnv("REDIS_HOST", "redis"),                       // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),                   // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                        // Default empty
		RedisDB:            getEnvAsInt64("REDIS_DATABASE", 0),                  // Default 0
		AuthRateLimit:      getEnvAsInt64("AUTH_RATE_LIMIT", 20),                // Default 20 attempts
		AuthRateWindow:     getEnvAsInt64("AUTH_RATE_WINDOW", 60),               // Default 60 seconds
		MinioEndpoint:      getEnv("MINIO_ENDPOINT", "minio:9000"),              // Default minio:9000
		MinioAccessKey:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),            // Default minioadmin
		MinioSecretKey:     getEnv("MINIO_SECRET_KEY", "minioadmin"),            // Default minioadmin
		MinioBucket:        getEnv("MINIO_BUCKET", "book-images"),               // Default bucket
		MinioUseSSL:        getEnvAsBool("MINIO_USE_SSL", false),                // Default plain HTTP
		MinioPublicURL:     getEnv("MINIO_PUBLIC_URL", ""),                      // Empty derives from endpoint
		UploadFolder:       getEnv("UPLOAD_FOLDER", "bookvault"),                // Object key prefix
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
