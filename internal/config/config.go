package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	TargetLang       string
	GeminiAPIKey     string
	TranslationModel string
	DatabaseURL      string
	VocabDir         string
	BlacklistFile    string
	WorkerCount      int
	BatchSize        int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		TargetLang:       getEnv("TARGET_LANG", "zh-CN"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		TranslationModel: getEnv("TRANSLATION_MODEL", "gemini-2.5-flash"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		VocabDir:         getEnv("VOCAB_DIR", ".ident-translator"),
		BlacklistFile:    getEnv("BLACKLIST_FILE", ""),
		WorkerCount:      getEnvInt("WORKER_COUNT", 8),
		BatchSize:        getEnvInt("BATCH_SIZE", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
