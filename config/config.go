package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	CatalogAPIURL     string
	CatalogTimeout    time.Duration
	CacheTTL          time.Duration
	JWTSecret         string
	JWTExpiry         time.Duration
	AuthLoginDelay    time.Duration
	AuthRegisterDelay time.Duration
	DataDir           string
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		CatalogAPIURL:     getEnv("CATALOG_API_URL", "https://fakestoreapi.com"),
		CatalogTimeout:    getDuration("CATALOG_TIMEOUT", 10*time.Second),
		CacheTTL:          getDuration("CACHE_TTL", 5*time.Minute),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getDuration("JWT_EXPIRY", 24*time.Hour),
		AuthLoginDelay:    getDuration("AUTH_LOGIN_DELAY", 800*time.Millisecond),
		AuthRegisterDelay: getDuration("AUTH_REGISTER_DELAY", time.Second),
		DataDir:           getEnv("DATA_DIR", "./data"),
		RedisURL:          os.Getenv("REDIS_URL"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Server will run on port: %s", cfg.Port)
	log.Printf("Catalog API: %s", cfg.CatalogAPIURL)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
