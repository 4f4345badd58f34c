package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// DefaultEnvFile is read, when present, before falling back to the process environment.
const DefaultEnvFile = ".env"

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	HTTPSEnabled    bool

	// Database configuration
	DBHost               string
	DBPort               int
	DBUser               string
	DBPassword           string
	DBName               string
	DBSSLMode            string
	DBInsecureSkipVerify bool
	DBResetSchema        bool
	DBMaxConns           int32
	DBMinConns           int32
	DBMaxConnLifetime    time.Duration
	DBMaxConnIdleTime    time.Duration
	DBHealthCheckPeriod  time.Duration

	// Image upload configuration
	UploadDir      string
	MaxUploadBytes int64

	// Logging configuration
	LogLevel string
}

// Load loads configuration from the environment, reading DefaultEnvFile first if it exists.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom loads configuration from the environment and the given dotenv file.
// A missing file is not an error; environment variables take precedence over it.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	src := source{v: v}

	cfg := &Config{
		ServerPort:           src.getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          src.getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         src.getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:          src.getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:      src.getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		HTTPSEnabled:         src.getEnvBool("HTTPS_ENABLED", false),
		DBHost:               src.getEnv("DB_HOST", ""),
		DBPort:               src.getEnvInt("DB_PORT", 0),
		DBUser:               src.getEnv("DB_USER", ""),
		DBPassword:           src.getEnv("DB_PASS", ""),
		DBName:               src.getEnv("DB_NAME", ""),
		DBSSLMode:            src.getEnv("DB_SSL_MODE", "verify-full"),
		DBInsecureSkipVerify: src.getEnvBool("DB_INSECURE_SKIP_VERIFY", false),
		DBResetSchema:        src.getEnvBool("DB_RESET_SCHEMA", false),
		DBMaxConns:           int32(src.getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:           int32(src.getEnvInt("DB_MIN_CONNS", 2)),
		DBMaxConnLifetime:    src.getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    src.getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  src.getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		UploadDir:            src.getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes:       int64(src.getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		LogLevel:             src.getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBPort < 1 || c.DBPort > 65535 {
		return fmt.Errorf("DB_PORT is required and must be a valid port")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASS is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR is required")
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// source resolves keys from the environment first, then the dotenv file.
type source struct {
	v *viper.Viper
}

// getEnv gets a value with a default.
func (s source) getEnv(key, defaultValue string) string {
	if value := s.v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets a value as int with a default.
func (s source) getEnvInt(key string, defaultValue int) int {
	if value := s.v.GetString(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets a value as bool with a default.
func (s source) getEnvBool(key string, defaultValue bool) bool {
	if value := s.v.GetString(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets a value as duration with a default.
func (s source) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := s.v.GetString(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
