package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	APIBaseURL string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the shell server's configuration from the environment,
// after an optional .env file.
func Load() Config {
	godotenv.Load()
	return Config{
		Addr:       getEnv("EDUBIT_ADDR", ":8000"),
		APIBaseURL: getEnv("EDUBIT_API_URL", "http://localhost:8080"),
	}
}
