package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const insecureSecret = "changethis"

type Config struct {
	Port                   string
	Env                    string
	DBPath                 string
	SecretKey              string
	AccessTokenTTL         time.Duration
	FirstSuperuser         string
	FirstSuperuserPassword string
	OpenRegistration       bool
	CORSOrigins            string
	LogLevel               string
}

var AppConfig *Config

// Load reads .env (if present) and the process environment into AppConfig.
func Load() error {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   GetEnv("PORT", "3000"),
		Env:                    GetEnv("ENV", "development"),
		DBPath:                 GetEnv("DB_PATH", "./data/item-notes.db"),
		SecretKey:              GetEnv("SECRET_KEY", insecureSecret),
		AccessTokenTTL:         time.Duration(GetEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*8)) * time.Minute,
		FirstSuperuser:         GetEnv("FIRST_SUPERUSER", "admin@example.com"),
		FirstSuperuserPassword: GetEnv("FIRST_SUPERUSER_PASSWORD", insecureSecret),
		OpenRegistration:       GetEnvBool("USERS_OPEN_REGISTRATION", true),
		CORSOrigins:            GetEnv("CORS_ORIGINS", "*"),
		LogLevel:               GetEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if !c.IsProduction() {
		return nil
	}
	if c.SecretKey == insecureSecret {
		return errors.New("SECRET_KEY must be changed in production")
	}
	if c.FirstSuperuserPassword == insecureSecret {
		return errors.New("FIRST_SUPERUSER_PASSWORD must be changed in production")
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}
