package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	DBPath             string
	GeminiBaseURL      string
	GoogleTasksBaseURL string
	TranslationFolder  string
	TrustedProxies     []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		DBPath:             getEnv("TODO_DB_PATH", "todo.db"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GoogleTasksBaseURL: getEnv("GOOGLE_TASKS_BASE_URL", "https://tasks.googleapis.com"),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:     parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
