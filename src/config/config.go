package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// built once in main and handed to the components that need it; handlers
// never touch the environment directly.
type Config struct {
	Env          string
	Port         string
	JWTSecret    string
	DSN          string
	AllowOrigins []string
	SeedDemo     bool
}

// Load reads the environment (and a .env file if present) into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		Env:       getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "4000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		DSN:       os.Getenv("DATABASE_URL"),
		SeedDemo:  os.Getenv("SEED_DEMO") == "true",
	}

	if cfg.DSN == "" {
		cfg.DSN = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "rrhh"),
		)
	}

	origins := getEnv("ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	return cfg
}

// IsProduction reports whether the app runs in production mode. The test-db
// probe route is only mounted outside production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
