package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisURL            string
	ServerPort          string
	ReportTTL           int // seconds an artifact stays downloadable
	MaxUploadSize       int64
	GSTMultiplier       float64
	WebsiteFeeRate      float64
	ShippingFlatRate    float64
	ShippingPerKGRate   float64
	ShippingFlatLimitKG float64
	ProfitBase          string // gst or discounted
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReportTTL:           getEnvAsInt("REPORT_TTL", 900),
		MaxUploadSize:       int64(getEnvAsInt("MAX_UPLOAD_SIZE", 10*1024*1024)),
		GSTMultiplier:       getEnvAsFloat("GST_MULTIPLIER", 1.18),
		WebsiteFeeRate:      getEnvAsFloat("WEBSITE_FEE_RATE", 0.0185),
		ShippingFlatRate:    getEnvAsFloat("SHIPPING_FLAT_RATE", 65),
		ShippingPerKGRate:   getEnvAsFloat("SHIPPING_PER_KG_RATE", 65),
		ShippingFlatLimitKG: getEnvAsFloat("SHIPPING_FLAT_LIMIT_KG", 1.0),
		ProfitBase:          getEnv("PROFIT_BASE", "gst"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
