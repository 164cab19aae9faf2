package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Events   EventsConfig
	Tutor    TutorConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	JwtSecret          string
	VisitorStore       string // "memory" | "redis"
	RedisURL           string
	SidebarLimit       int // recent sessions shown next to a chat
}

type DatabaseConfig struct {
	Driver     string // "postgres" | "sqlite"
	Connection string
}

type EventsConfig struct {
	Enabled bool
	Topic   string // in-process topic for chat events
	NatsURL string
}

type TutorConfig struct {
	Provider          string // "keyword" | "huggingface" | "ollama"
	Model             string
	OllamaBaseURL     string
	HuggingFaceURL    string
	HuggingFaceAPIKey string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string // OTLP/HTTP collector, host:port
	ServiceName string
	SampleRatio float64
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			VisitorStore:       getEnv("VISITOR_STORE", "memory"),
			RedisURL:           getEnv("REDIS_URL", ""),
			SidebarLimit:       getEnvAsInt("SIDEBAR_SESSION_LIMIT", 10),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Events: EventsConfig{
			Enabled: getEnvAsBool("EVENTS_ENABLED", true),
			Topic:   getEnv("CHAT_EVENTS_TOPIC", "CHAT_EVENTS"),
			NatsURL: getEnv("NATS_URL", ""),
		},
		Tutor: TutorConfig{
			Provider:          getEnv("TUTOR_PROVIDER", "keyword"),
			Model:             getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceURL:    getEnv("HUGGINGFACE_BASE_URL", ""),
			HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "study-assistant-backend"),
			SampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", 1),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
