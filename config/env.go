package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	MongoURI          string
	MongoDatabase     string
	PostgresDSN       string // optional; empty disables the secondary store
	RabbitMQURL       string // optional; empty disables event publishing
	MQTTBroker        string // optional; empty disables MQTT ingest
	MQTTClientID      string
	HTTPPort          string
	HealthGateEnabled bool
}

func Load() *Config {
	return &Config{
		MongoURI:          getSecret("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "fleet"),
		PostgresDSN:       getSecret("POSTGRES_DSN", ""),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		MQTTBroker:        getEnv("MQTT_BROKER", ""),
		MQTTClientID:      getEnv("MQTT_CLIENT_ID", "camion-tracker"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		HealthGateEnabled: getBool("HEALTH_GATE_ENABLED", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret prefers a mounted secret file (<KEY>_FILE) over the plain
// environment variable; local development sets the env var directly.
func getSecret(key, fallback string) string {
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return getEnv(key, fallback)
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
