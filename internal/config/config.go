package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Report settings
	SampleMonthlyReport bool // Serve the legacy sample series from the monthly report (default: false)
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	sampleMonthly := false
	if sampleEnv := os.Getenv("REPORT_SAMPLE_MONTHLY"); sampleEnv != "" {
		val, err := strconv.ParseBool(sampleEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid REPORT_SAMPLE_MONTHLY value: %v", err)
		}
		sampleMonthly = val
	}
	cfg := &Config{
		AppPort:    os.Getenv("TIMETRACK_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		// Report settings
		SampleMonthlyReport: sampleMonthly,
	}
	// Basic validation for required fields
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration is incomplete")
	}
	return cfg, nil
}

// ConnectDatabase initializes a GORM database connection to PostgreSQL.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
