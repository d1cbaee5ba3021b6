// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var ErrAPIURLMissing = errors.New("environment variable API_URL must be set")

// Config holds all application configuration.
type Config struct {
	APIURL           *url.URL
	Port             int
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool
	Database         DatabaseConfig
}

// DatabaseConfig holds the database configuration.
//
// If Host is empty, sqlite is used with the database file at SQLitePath.
type DatabaseConfig struct {
	SQLitePath      string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load loads configuration from environment variables.
func Load() (Config, error) {
	rawURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLMissing
	}

	apiURL, err := url.Parse(strings.TrimSuffix(rawURL, "/"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return Config{
		APIURL:           apiURL,
		Port:             getEnvAsInt("PORT", 8080),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:      getEnvAsBool("ENABLE_PPROF", false),
		Database: DatabaseConfig{
			SQLitePath:      filepath.Join(getEnv("DATA_DIR", "data"), "gorm.db"),
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "finsight"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "finsight"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
	}, nil
}

// DataDir returns the directory the sqlite database is stored in.
func (c DatabaseConfig) DataDir() string {
	return filepath.Dir(c.SQLitePath)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
