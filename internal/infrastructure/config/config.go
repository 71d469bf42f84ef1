package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Metrics / health server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// RabbitMQ
	RabbitHost     string
	RabbitPort     string
	RabbitUser     string
	RabbitPassword string

	// Postgres
	PostgresDSN string

	// MongoDB (failure journal)
	MongoURI string
	MongoDB  string

	// OpenAI extractor
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	// Radar geocoding
	RadarBaseURL string
	RadarAPIKey  string

	// Airline logo lookup
	AirlineLogoBaseURL string

	// Cirium flight status
	CiriumBaseURL string
	CiriumAppID   string
	CiriumAppKey  string

	// Firebase messaging
	FCMCredentialsFile string
	FCMProjectID       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		RabbitHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres dbname=touristar port=5432 sslmode=disable"),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "touristar"),

		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo-16k"),

		RadarBaseURL: getEnv("RADAR_BASE_URL", "https://api.radar.io"),
		RadarAPIKey:  getEnv("RADAR_API_KEY", ""),

		AirlineLogoBaseURL: getEnv("AIRLINE_LOGO_BASE_URL", ""),

		CiriumBaseURL: getEnv("CIRIUM_BASE_URL", "https://api.flightstats.com"),
		CiriumAppID:   getEnv("CIRIUM_APP_ID", ""),
		CiriumAppKey:  getEnv("CIRIUM_APP_KEY", ""),

		FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", "client_secrets.json"),
		FCMProjectID:       getEnv("FCM_PROJECT_ID", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
