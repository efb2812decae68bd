package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel         string // Minimum log level (debug, info, warning, error)
	JWTIssuer        string // Issuer claim for JWTs
	JWTTTLMinutes    int    // Lifetime of issued JWTs
	MaxMazeDimension int    // Largest width or depth accepted for an exploration
	KeepReports      int    // Number of exploration reports kept in memory
}

// Load reads the configuration from the environment, loading a .env file
// first when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c := Config{
		HostIP:    getEnvWithDefault("HOST_IP", "0.0.0.0"),
		GinMode:   getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:  getEnvWithDefault("LOG_LEVEL", "info"),
		JWTIssuer: getEnvWithDefault("JWT_ISSUER", "vinom-droid"),
	}

	var err error
	if c.RESTPort, err = getEnvAsIntWithDefault("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if c.JWTTTLMinutes, err = getEnvAsIntWithDefault("JWT_TTL_MINUTES", 60); err != nil {
		return Config{}, err
	}
	if c.MaxMazeDimension, err = getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 64); err != nil {
		return Config{}, err
	}
	if c.KeepReports, err = getEnvAsIntWithDefault("KEEP_REPORTS", 100); err != nil {
		return Config{}, err
	}

	return c, nil
}

// MustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		logrus.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as a
// positive integer, or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("environment variable %s must be positive, got %d", key, value)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
