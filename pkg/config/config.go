package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the environment-driven application configuration.
type Config struct {
	Port      string
	Env       string
	SecretKey string
	BaseURL   string

	DatabaseURL string
	UploadDir   string

	MailServer   string
	MailPort     int
	MailUseTLS   bool
	MailUsername string
	MailPassword string
	Admins       []string

	Languages []string
	// PostsPerPage is configured but the feed deliberately renders every
	// post; see the listing handler.
	PostsPerPage int
}

// Load reads configuration from the environment, consulting a .env file
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		SecretKey:    getEnv("SECRET_KEY", "you-will-never-guess"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "app.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "static/uploads"),
		MailServer:   getEnv("MAIL_SERVER", ""),
		MailPort:     getEnvInt("MAIL_PORT", 25),
		MailUseTLS:   os.Getenv("MAIL_USE_TLS") != "",
		MailUsername: getEnv("MAIL_USERNAME", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
		Admins:       getEnvList("ADMINS", nil),
		Languages:    getEnvList("LANGUAGES", []string{"en"}),
		PostsPerPage: getEnvInt("POSTS_PER_PAGE", 25),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
