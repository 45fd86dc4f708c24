package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	UploadDir string

	SendgridKey  string
	EmailSender  string
	ContactInbox string

	PaymentApiURL string // payment gateway base URL, empty disables capture checks
	PaymentApiKey string

	CartTTLDays int // anonymous cart rows older than this are purged
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		SendgridKey:  getEnv("SENDGRID_API_KEY", ""),
		EmailSender:  getEnv("EMAIL_SENDER", "no-reply@finacademy.local"),
		ContactInbox: getEnv("CONTACT_INBOX", "support@finacademy.local"),

		PaymentApiURL: getEnv("PAYMENT_API_URL", ""),
		PaymentApiKey: getEnv("PAYMENT_API_KEY", ""),

		CartTTLDays: getEnvInt("CART_TTL_DAYS", 30),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Contact notifications are disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
