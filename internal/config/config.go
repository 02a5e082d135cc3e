package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	MongoURI        string
	Database        string
	Port            string
	JWTSecret       string
	StripeSecretKey string
	CORSOrigins     []string
}

// Load reads configuration from the environment. MONGO_URI wins when set;
// otherwise the Atlas URI is assembled from DB_USER and DB_PASS.
func Load() *Config {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.xqlvbzz.mongodb.net/?retryWrites=true&w=majority",
			url.QueryEscape(os.Getenv("DB_USER")),
			url.QueryEscape(os.Getenv("DB_PASS")),
		)
	}

	return &Config{
		MongoURI:        uri,
		Database:        getEnv("MONGO_DATABASE", "AccuMedDB"),
		Port:            getEnv("PORT", "5000"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		CORSOrigins:     splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
