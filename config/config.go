package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	AIServiceURL      string
	AIRequestTimeout  time.Duration
	FallbackTimeout   time.Duration
	TesseractDataPath string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	aiServiceURL := os.Getenv("AI_SERVICE_URL")
	if aiServiceURL == "" {
		aiServiceURL = "http://localhost:8000"
	}

	tessdataPath := os.Getenv("TESSDATA_PREFIX")
	if tessdataPath == "" {
		tessdataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	return &Config{
		ServerPort:        serverPort,
		AIServiceURL:      aiServiceURL,
		AIRequestTimeout:  durationFromEnv("AI_REQUEST_TIMEOUT_SECONDS", 60*time.Second),
		FallbackTimeout:   durationFromEnv("AI_FALLBACK_TIMEOUT_SECONDS", 30*time.Second),
		TesseractDataPath: tessdataPath,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Invalid %s=%q, using default %s", key, raw, fallback)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
