package config

import (
	"os"
	"strings"
)

// AdminTokenPlaceholder is the shipped default for ADMIN_TOKEN. The admin
// gate refuses to run while the token still has this value.
const AdminTokenPlaceholder = "change-me"

// Settings is built once at startup from the environment and passed down
// explicitly; nothing reads the environment after Load returns.
type Settings struct {
	Host string
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	CORSOrigins []string
	APIPrefix   string
	AdminToken  string
}

func Load() Settings {
	return Settings{
		Host: getenv("HOST", "0.0.0.0"),
		Port: getenv("APP_PORT", "8000"),

		DBHost: getenv("DB_HOST", "localhost"),
		DBPort: getenv("DB_PORT", "5432"),
		DBUser: getenv("DB_USER", "cinema"),
		DBPass: getenv("DB_PASS", "cinema"),
		DBName: getenv("DB_NAME", "cinema"),

		CORSOrigins: splitOrigins(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		APIPrefix:   getenv("API_PREFIX", "/api"),
		AdminToken:  getenv("ADMIN_TOKEN", AdminTokenPlaceholder),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
