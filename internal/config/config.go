package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config структура конфигурации
type Config struct {
	Port       string
	APIBaseURL string // Базовый URL бэкенда ReWear
	RedisURL   string // Пустое значение отключает Redis-хранилище сессий
	AppEnv     string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		APIBaseURL: getEnv("REWEAR_API_URL", ""),
		RedisURL:   getEnv("REDIS_URL", ""),
		AppEnv:     getEnv("APP_ENV", "production"), // По умолчанию production
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("❌ Ошибка: переменная REWEAR_API_URL не задана")
	}

	return cfg
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
