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
	PageSize  int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	SendGridApiKey string
	EmailSender    string

	MobileMoneyApiURL string
	MoovMoneyApiKey   string
	AirtelMoneyApiKey string
	TigoCashApiKey    string
	PaymentPollSpec   string // cron spec for the pending-payment poller
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
		PageSize:  getEnvInt("PAGE_SIZE", 20),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "tchadskills"),
		DBPort:     getEnv("DB_PORT", "5432"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@tchadskills.com"),

		MobileMoneyApiURL: getEnv("MOBILE_MONEY_API_URL", "https://api.mobilemoney.td/v1"),
		MoovMoneyApiKey:   getEnv("MOOV_MONEY_API_KEY", ""),
		AirtelMoneyApiKey: getEnv("AIRTEL_MONEY_API_KEY", ""),
		TigoCashApiKey:    getEnv("TIGO_CASH_API_KEY", ""),
		PaymentPollSpec:   getEnv("PAYMENT_POLL_CRON", "@every 1m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
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
