package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string   // Host IP for the server
	RESTPort           int      // Port for the REST API
	BaseURL            string   // Prefix placed in front of the versioned routes
	GinMode            string   // Mode for the Gin framework (e.g., release, debug, test)
	CORSOrigins        []string // Origins allowed to call the API
	RedisAddr          string   // Address of the solution cache, empty disables caching
	RedisPassword      string   // Password for the solution cache
	RedisDB            int      // Database index for the solution cache
	SolutionTTLSeconds int      // Lifetime of cached solutions
	JWTSecret          string   // Secret key for JWT signing, empty disables write authorization
	JWTIssuer          string   // Issuer claim for JWTs
	MaxMapCells        int      // Largest accepted map, in cells
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:             getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 3000),
		BaseURL:            getEnvWithDefault("BASE_URL", ""),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		CORSOrigins:        splitList(getEnvWithDefault("CORS_ORIGINS", "*")),
		RedisAddr:          getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:      getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsIntWithDefault("REDIS_DB", 0),
		SolutionTTLSeconds: getEnvAsIntWithDefault("SOLUTION_TTL_SECONDS", 300),
		JWTSecret:          getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:          getEnvWithDefault("JWT_ISSUER", "torus-maze"),
		MaxMapCells:        getEnvAsIntWithDefault("MAX_MAP_CELLS", 10000),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// It logs a fatal error when the value is set but cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
