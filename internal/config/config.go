package config

import (
	"os"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

func Load() Config {

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	return cfg
}
