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

	FrontendBaseURL string

	WaveApiURL string
	WaveApiKey string // empty means the checkout provider is not configured

	AIApiURL string
	AIApiKey string

	EmailSender string
	Password    string // SMTP Password
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

		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),

		WaveApiURL: getEnv("WAVE_API_URL", "https://api.wave.com/v1/"),
		WaveApiKey: getEnv("WAVE_API_KEY", ""),

		AIApiURL: getEnv("AI_API_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIApiKey: getEnv("AI_API_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.WaveApiKey == "" {
		log.Println("Warning: WAVE_API_KEY not set. Checkout creation will answer in unconfigured mode.")
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
