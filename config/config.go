package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	RedisURL        string
	StripeSecretKey string
	PaymentTopicARN string // SNS topic ARN for payment events, optional
}

func LoadConfig() (*Config, error) {
	// .env is optional, system env wins
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8085"),
		Env:             getEnv("APP_ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "parcelDB"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		StripeSecretKey: os.Getenv("STRIPE_API_KEY"),
		PaymentTopicARN: os.Getenv("PAYMENT_SNS_TOPIC_ARN"),
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("missing required environment variable STRIPE_API_KEY")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
