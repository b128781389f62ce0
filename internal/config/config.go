package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	QR       QRConfig
	Seed     SeedConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Port        int
	Env         string
	LogLevel    string
	Timezone    string
	CORSOrigins []string
}

// QRConfig describes the office geofence embedded in check-in QR codes.
type QRConfig struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	TTL          time.Duration
}

// SeedConfig is the bootstrap admin account created on first start.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	} else if err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris-timekeeping"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:        getEnv("APP_NAME", "HRIS Timekeeping"),
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Manila"),
		CORSOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.CORSOrigins) == 0 {
		config.App.CORSOrigins = []string{"http://localhost:3000"}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// QR check-in configuration
	lat, err := strconv.ParseFloat(getEnv("QR_LATITUDE", "14.5995"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid QR_LATITUDE: %w", err)
	}
	lng, err := strconv.ParseFloat(getEnv("QR_LONGITUDE", "120.9842"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid QR_LONGITUDE: %w", err)
	}
	radius, err := strconv.Atoi(getEnv("QR_RADIUS_METERS", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid QR_RADIUS_METERS: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("QR_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid QR_TTL: %w", err)
	}
	config.QR = QRConfig{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
		TTL:          ttl,
	}

	config.Seed = SeedConfig{
		AdminUsername: getEnv("SEED_ADMIN_USERNAME", ""),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.QR.RadiusMeters <= 0 {
		return fmt.Errorf("QR_RADIUS_METERS must be positive")
	}
	if c.QR.TTL <= 0 {
		return fmt.Errorf("QR_TTL must be positive")
	}
	if (c.Seed.AdminUsername == "") != (c.Seed.AdminPassword == "") {
		return fmt.Errorf("SEED_ADMIN_USERNAME and SEED_ADMIN_PASSWORD must be set together")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
