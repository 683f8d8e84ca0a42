package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Storage
	DataDir     string // directory holding the JSON collection files
	UploadDir   string // directory for locally stored audio files
	MaxUploadMB int    // multipart body limit for uploads

	// Redis (optional; rate limiting and realtime fan-out degrade gracefully without it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Google Cloud Storage (optional; local disk is used when bucket is empty)
	GCSBucket              string
	GCSCredentialsJSONPath string // if empty, Application Default Credentials are used

	// JWT
	JWTSecret string // required; startup fails when unset
	TokenTTL  time.Duration

	// Admin bootstrap: accounts registered with one of these emails get the admin role
	AdminEmails string // comma-separated

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "echomap"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		DataDir:     getenv("DATA_DIR", "data"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: getint("MAX_UPLOAD_MB", 10),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),

		// No fallback secret: an unset JWT_SECRET aborts startup in main.
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getdur("JWT_TTL", 168*time.Hour),

		AdminEmails: getenv("ADMIN_EMAILS", ""),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as a slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// AdminEmailList returns the bootstrap admin emails as a slice
func (c *Config) AdminEmailList() []string {
	return splitList(c.AdminEmails)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
