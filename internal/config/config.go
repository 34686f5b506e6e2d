package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AttendanceConfig holds the policy knobs of the report and the marking
// rules.
type AttendanceConfig struct {
	// LateCutoff is the local wall-clock time ("HH:mm") after which an entry
	// counts as late.
	LateCutoff    string
	AbsenceWeight float64
	LateWeight    float64
	Timezone      string

	// Work site geofence. Radius 0 disables the check.
	SiteLatitude    float64
	SiteLongitude   float64
	SiteRadiusMeter float64
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "asistencia"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Attendance policy configuration
	absenceWeight, err := strconv.ParseFloat(getEnv("ATTENDANCE_ABSENCE_WEIGHT", "5.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_ABSENCE_WEIGHT: %w", err)
	}
	lateWeight, err := strconv.ParseFloat(getEnv("ATTENDANCE_LATE_WEIGHT", "2.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_WEIGHT: %w", err)
	}
	siteLat, err := strconv.ParseFloat(getEnv("SITE_LATITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_LATITUDE: %w", err)
	}
	siteLon, err := strconv.ParseFloat(getEnv("SITE_LONGITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_LONGITUDE: %w", err)
	}
	siteRadius, err := strconv.ParseFloat(getEnv("SITE_RADIUS_METERS", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_RADIUS_METERS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateCutoff:      getEnv("ATTENDANCE_LATE_CUTOFF", "08:15"),
		AbsenceWeight:   absenceWeight,
		LateWeight:      lateWeight,
		Timezone:        getEnv("ATTENDANCE_TIMEZONE", "America/Lima"),
		SiteLatitude:    siteLat,
		SiteLongitude:   siteLon,
		SiteRadiusMeter: siteRadius,
	}

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
	if !validator.IsValidClockTime(c.Attendance.LateCutoff) {
		return fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF: %q", c.Attendance.LateCutoff)
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

// LateCutoffMinutes parses the configured cutoff into minutes since
// midnight.
func (c *Config) LateCutoffMinutes() (int, error) {
	t, err := time.Parse("15:04", c.Attendance.LateCutoff)
	if err != nil {
		return 0, fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF: %q", c.Attendance.LateCutoff)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	return strings.Split(getEnv(key, fallback), ",")
}
