package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"transportbilty/models"
)

type Config struct {
	PostgresURL  string
	MongoURL     string
	DBType       string
	Port         string
	SuggestLimit int
	QueryTimeout time.Duration
	PrintHeader  models.PrintHeader
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		MongoURL:     os.Getenv("MONGO_URL"),
		DBType:       os.Getenv("DB_TYPE"),
		Port:         os.Getenv("PORT"),
		SuggestLimit: 5,
		QueryTimeout: 5 * time.Second,
		PrintHeader: models.PrintHeader{
			CompanyName: os.Getenv("PRINT_COMPANY_NAME"),
			Address:     os.Getenv("PRINT_ADDRESS"),
			City:        os.Getenv("PRINT_CITY"),
			State:       os.Getenv("PRINT_STATE"),
			Pincode:     os.Getenv("PRINT_PINCODE"),
			GSTIN:       os.Getenv("PRINT_GSTIN"),
			Mobile:      os.Getenv("PRINT_MOBILE"),
			Footnote:    os.Getenv("PRINT_FOOTNOTE"),
		},
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("SUGGEST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SuggestLimit = n
		}
	}
	if v := os.Getenv("QUERY_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QueryTimeout = time.Duration(n) * time.Second
		}
	}
	return cfg
}
