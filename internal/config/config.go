package config

import "os"

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPath       string
	ServerPort   string
	SelectPolicy string
	SessionTTL   string
	ContentDir   string
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "paarspiel"),
		DBPath:       getEnv("DB_PATH", "questions.db"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		SelectPolicy: getEnv("SELECT_POLICY", "recycle"),
		SessionTTL:   getEnv("SESSION_TTL_MIN", "30"),
		ContentDir:   getEnv("CONTENT_DIR", "data"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
