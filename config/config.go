package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	WebPort     string
	BackendURL  string // Base URL the web shell and leadctl use to reach the API
	CORSOrigins []string
	// Proxies whose X-Forwarded-For is believed; the web shell forwards the visitor address
	TrustedProxies []string
	// Storage
	StorageDriver string // "postgres" or "sqlite"
	DBUrl         string
	SQLitePath    string
	DBAutoMigrate bool
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Resend takes precedence over SMTP when the key is set
	ResendAPIKey string
	ContactEmail string // Inbox that receives lead notifications
	// Redis Configuration (rate limiting + notification queue)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitIntakeThreshold int
	// Admin access to the lead lists
	AdminJWTSecret string
	// Company info shown on the landing page
	Company CompanyConfig
}

// CompanyConfig holds the read-only company content served by /api/company-info
type CompanyConfig struct {
	Name        string
	Slogan      string
	Description string
	Phone       string
	Email       string
	Address     string
	Services    []string
}

var defaultServices = []string{
	"Transport persoane cu microbuze",
	"Transport marfă cu microbuze Sprinter",
	"Transport rapid național și internațional",
	"Servicii de transport pentru evenimente",
	"Transport de grupuri și delegații",
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		WebPort:        getEnv("WEB_PORT", "3000"),
		BackendURL:     strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8080"), "/"),
		CORSOrigins:    getEnvList("CORS_ORIGINS", ",", []string{"*"}),
		TrustedProxies: getEnvList("TRUSTED_PROXIES", ",", []string{"127.0.0.1", "::1"}),
		// Storage
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "postgres")),
		DBUrl:         getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "standeal.db"),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@standeal.md"),
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ContactEmail:  getEnv("CONTACT_EMAIL", "office@standeal.md"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitIntakeThreshold: getEnvInt("RATE_LIMIT_INTAKE_THRESHOLD", 10),
		AdminJWTSecret:           getEnv("ADMIN_JWT_SECRET", ""),
		Company: CompanyConfig{
			Name:        getEnv("COMPANY_NAME", "Standeal.md"),
			Slogan:      getEnv("COMPANY_SLOGAN", "Soluții de transport profesionale în Moldova și Europa"),
			Description: getEnv("COMPANY_DESCRIPTION", "Compania Standeal oferă servicii de transport profesionale cu microbuze Mercedes Sprinter pentru persoane și mărfuri în Moldova și Europa."),
			Phone:       getEnv("COMPANY_PHONE", "+373 68 727 975"),
			Email:       getEnv("COMPANY_EMAIL", "office@standeal.md"),
			Address:     getEnv("COMPANY_ADDRESS", "Chișinău, Moldova"),
			Services:    getEnvList("COMPANY_SERVICES", "|", defaultServices),
		},
	}

	if cfg.StorageDriver == "postgres" && cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback and notifications are sent in-process.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a separated environment variable, dropping blank items
func getEnvList(key, sep string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return append([]string(nil), fallback...)
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), fallback...)
	}
	return items
}
