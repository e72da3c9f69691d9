package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string
	APP_ENV     string

	SEED_DEMO_DATA bool

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = resolveDatabaseURL()
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	APP_ENV = getEnv("APP_ENV", "development")

	SEED_DEMO_DATA = getEnv("SEED_DEMO_DATA", "false") == "true"

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

// IsDevelopment reports whether error details may be included in responses.
func IsDevelopment() bool {
	return APP_ENV == "development"
}

// resolveDatabaseURL accepts either a full DB_URL or the discrete
// DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD variables.
func resolveDatabaseURL() string {
	if url := getEnv("DB_URL", ""); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "")
	if host == "" {
		log.Fatal("Missing database configuration: set DB_URL or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD")
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		getEnv("DB_PORT", "5432"),
		mustEnv("DB_USER"),
		mustEnv("DB_PASSWORD"),
		mustEnv("DB_NAME"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// MembershipPriceID maps a membership type to its configured Stripe price.
// Returns "" when the type has no dues price configured.
func MembershipPriceID(membershipType string) string {
	switch membershipType {
	case "individual":
		return getEnv("STRIPE_PRICE_INDIVIDUAL", "")
	case "corporate":
		return getEnv("STRIPE_PRICE_CORPORATE", "")
	case "student":
		return getEnv("STRIPE_PRICE_STUDENT", "")
	default:
		return ""
	}
}
