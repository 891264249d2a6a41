package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full project configuration.
type Config struct {
	Database DBConfig
	Services ServicesConfig
	JWT      JWTConfig
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

type ServicesConfig struct {
	VehicleServicePort int `yaml:"vehicle_service"`
	AuthServicePort    int `yaml:"auth_service"`
}

type JWTConfig struct {
	Secret        string `yaml:"secret"`
	ExpiryMinutes int    `yaml:"expiry_minutes"`
}

// Load reads CONFIG_DIR (default ./config); environment variables always win.
func Load() Config {
	configDir := getEnv("CONFIG_DIR", "./config")

	cfg := Config{
		Database: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "chargestation_user",
			Password: "chargestation_pass",
			Database: "chargestation_db",
			SSLMode:  "disable",
		},
		Services: ServicesConfig{
			VehicleServicePort: 3000,
			AuthServicePort:    3001,
		},
		JWT: JWTConfig{
			Secret:        "dev_secret",
			ExpiryMinutes: 60,
		},
	}

	loadYAML(filepath.Join(configDir, "db.yaml"), &cfg.Database)
	loadYAML(filepath.Join(configDir, "service.yaml"), &cfg.Services)
	loadYAML(filepath.Join(configDir, "jwt.yaml"), &cfg.JWT)

	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Database = getEnv("DB_NAME", cfg.Database.Database)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)

	cfg.Services.VehicleServicePort = getEnvInt("VEHICLE_SERVICE_PORT", cfg.Services.VehicleServicePort)
	cfg.Services.AuthServicePort = getEnvInt("AUTH_SERVICE_PORT", cfg.Services.AuthServicePort)

	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.ExpiryMinutes = getEnvInt("JWT_EXPIRY_MINUTES", cfg.JWT.ExpiryMinutes)

	return cfg
}

// loadYAML fills dst from a yaml file if it exists; missing files keep defaults.
func loadYAML(path string, dst any) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, dst)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// DSN returns the Postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
