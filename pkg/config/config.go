package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host           string
	Port           int
	PortAttempts   int
	DisableBrowser bool
	BrowserDelay   time.Duration
	LogLevel       string

	LLM LLM

	MaxAttempts  int
	OutputDir    string
	StudioFile   string
	DatabaseURL  string
	GenerateRate int
	LaunchWait   time.Duration
	ServerBinary string
}

// LLM groups the chat backend settings.
type LLM struct {
	Provider string
	BaseURL  string
	APIKey   string
	AppTitle string
	Referer  string
	Timeout  time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "ollama"))
	apiKey := os.Getenv("LLM_API_KEY")
	switch provider {
	case "openrouter":
		if apiKey == "" {
			apiKey = os.Getenv("OPENROUTER_API_KEY")
		}
	case "gemini":
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	cfg := Config{
		Host:           getEnv("HOST", "127.0.0.1"),
		Port:           getEnvInt("PORT", 7860),
		PortAttempts:   getEnvInt("PORT_ATTEMPTS", 10),
		DisableBrowser: os.Getenv("DISABLE_BROWSER") == "1",
		BrowserDelay:   time.Duration(getEnvInt("BROWSER_DELAY_SECONDS", 3)) * time.Second,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LLM: LLM{
			Provider: provider,
			BaseURL:  getEnv("LLM_BASE_URL", defaultBaseURL(provider)),
			APIKey:   apiKey,
			AppTitle: getEnv("OPENROUTER_APP_TITLE", "Asemic Artist"),
			Referer:  os.Getenv("OPENROUTER_REFERER"),
			Timeout:  time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		MaxAttempts:  getEnvInt("MAX_ATTEMPTS", 3),
		OutputDir:    os.Getenv("OUTPUT_DIR"),
		StudioFile:   os.Getenv("STUDIO_FILE"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GenerateRate: getEnvInt("GENERATE_RATE_PER_MINUTE", 10),
		LaunchWait:   time.Duration(getEnvInt("LAUNCH_WAIT_SECONDS", 15)) * time.Second,
		ServerBinary: getEnv("SERVER_BINARY", "asemic-server"),
	}
	return cfg
}

// Addr is the host:port the server listens on.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// URL is the browser address of the UI.
func (c Config) URL() string {
	return "http://" + c.Addr()
}

func defaultBaseURL(provider string) string {
	switch provider {
	case "openrouter":
		return "https://openrouter.ai/api/v1"
	case "openai":
		return "https://api.openai.com/v1"
	case "gemini":
		return ""
	default:
		return "http://localhost:11434/v1"
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
