// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Membership MembershipConfig
	Cache      CacheConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AuthConfig contains bearer-token settings.
type AuthConfig struct {
	JWTSecret string
}

// MembershipConfig contains membership request policy settings.
type MembershipConfig struct {
	// AllowReapplyAfterDenial permits a user to apply again after a denied
	// request. Enabled by default.
	AllowReapplyAfterDenial bool
}

// CacheConfig contains optional Redis cache settings. Caching is disabled
// when RedisURL is empty.
type CacheConfig struct {
	RedisURL string
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverHost, err := getRequiredEnv("SERVER_HOST")
	if err != nil {
		return nil, err
	}

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	dbHost, err := getRequiredEnv("DB_HOST")
	if err != nil {
		return nil, err
	}

	dbPort, err := getRequiredEnv("DB_PORT")
	if err != nil {
		return nil, err
	}

	dbUser, err := getRequiredEnv("DB_USER")
	if err != nil {
		return nil, err
	}

	dbPassword, err := getRequiredEnv("DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	dbName, err := getRequiredEnv("DB_NAME")
	if err != nil {
		return nil, err
	}

	dbSSLMode, err := getRequiredEnv("DB_SSLMODE")
	if err != nil {
		return nil, err
	}

	jwtSecret, err := getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	allowReapply, err := getBoolEnv("ALLOW_REAPPLY_AFTER_DENIAL", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
		},
		Membership: MembershipConfig{
			AllowReapplyAfterDenial: allowReapply,
		},
		Cache: CacheConfig{
			RedisURL: os.Getenv("REDIS_URL"),
		},
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// URL returns the PostgreSQL connection URL used by the migration runner.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// getBoolEnv reads an optional boolean environment variable with a default.
func getBoolEnv(key string, def bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean, got %q", key, value)
	}
	return parsed, nil
}
