// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
)

// Config holds the runtime configuration of the API server. Each field
// corresponds to an environment variable: strings for identifiers and
// credentials, nothing fancier. Missing required variables abort startup.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name
}

// ImportConfig holds the configuration of the room import tool: the same
// database plus credentials for the campus Buildings API.
type ImportConfig struct {
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	CampusAPIBase      string // base URL of the campus Buildings API gateway
	CampusClientID     string // OAuth2 client id
	CampusClientSecret string // OAuth2 client secret
}

// Load reads the server configuration from environment variables. Required
// variables are enforced by must() and missing values cause the program to
// exit with a fatal log message.
func Load() Config {
	return Config{
		Env:    must("APP_ENV"),
		Port:   must("APP_PORT"),
		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"), // empty allowed
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),
	}
}

// LoadImport reads the import tool configuration. The campus API base URL
// defaults to the public gateway; the OAuth2 credentials are required.
func LoadImport() ImportConfig {
	base := os.Getenv("CAMPUS_API_BASE")
	if base == "" {
		base = "https://gw.api.it.umich.edu"
	}
	return ImportConfig{
		DBUser:             must("DB_USER"),
		DBPass:             os.Getenv("DB_PASS"),
		DBHost:             must("DB_HOST"),
		DBPort:             must("DB_PORT"),
		DBName:             must("DB_NAME"),
		CampusAPIBase:      base,
		CampusClientID:     must("CAMPUS_CLIENT_ID"),
		CampusClientSecret: must("CAMPUS_CLIENT_SECRET"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
