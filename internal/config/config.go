package config

import "os"

type Config struct {
	HTTPPort     string
	MongoURI     string
	MongoDB      string
	AccessSecret string
	CorsOrigin   string
}

// Load reads the configuration from the environment. An empty MongoURI
// selects the in-memory store.
func Load() *Config {
	return &Config{
		HTTPPort:     envOrDefault("PLANBOARD_PORT", "3000"),
		MongoURI:     os.Getenv("PLANBOARD_MONGO_URI"),
		MongoDB:      envOrDefault("PLANBOARD_MONGO_DB", "planboard"),
		AccessSecret: envOrDefault("PLANBOARD_ACCESS_SECRET", "dev-secret-change-me"),
		CorsOrigin:   envOrDefault("PLANBOARD_CORS_ORIGIN", "http://localhost:5173"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
