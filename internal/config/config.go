package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	AI     AIConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// AIConfig holds fallbacks for provider settings that admins have not set
// through the settings screen. Credentials and prompts always come from the
// store; only the OpenRouter referral metadata has config-level defaults.
type AIConfig struct {
	SiteURL  string `mapstructure:"site_url"`
	SiteName string `mapstructure:"site_name"`
}

// Load reads configuration from environment variables with the BANANADB_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BANANADB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "bananadb")
	v.SetDefault("db.password", "bananadb_secret")
	v.SetDefault("db.name", "bananadb")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "bananadb")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-1")
	v.SetDefault("email.from_address", "noreply@bananadb.app")
	v.SetDefault("email.from_name", "BananaDB")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	// AI defaults
	v.SetDefault("ai.site_url", "http://localhost:5173")
	v.SetDefault("ai.site_name", "BananaDB")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "BANANADB_SERVER_PORT",
		"server.read_timeout":  "BANANADB_SERVER_READ_TIMEOUT",
		"server.write_timeout": "BANANADB_SERVER_WRITE_TIMEOUT",
		"server.environment":   "BANANADB_SERVER_ENVIRONMENT",
		"db.host":              "BANANADB_DB_HOST",
		"db.port":              "BANANADB_DB_PORT",
		"db.user":              "BANANADB_DB_USER",
		"db.password":          "BANANADB_DB_PASSWORD",
		"db.name":              "BANANADB_DB_NAME",
		"db.sslmode":           "BANANADB_DB_SSLMODE",
		"db.max_open":          "BANANADB_DB_MAX_OPEN",
		"db.max_idle":          "BANANADB_DB_MAX_IDLE",
		"jwt.secret":           "BANANADB_JWT_SECRET",
		"jwt.access_expiry":    "BANANADB_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "BANANADB_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "BANANADB_JWT_ISSUER",
		"log.level":            "BANANADB_LOG_LEVEL",
		"log.format":           "BANANADB_LOG_FORMAT",
		"cors.allowed_origins": "BANANADB_CORS_ALLOWED_ORIGINS",
		"email.provider":       "BANANADB_EMAIL_PROVIDER",
		"email.region":         "BANANADB_EMAIL_REGION",
		"email.from_address":   "BANANADB_EMAIL_FROM_ADDRESS",
		"email.from_name":      "BANANADB_EMAIL_FROM_NAME",
		"email.frontend_url":   "BANANADB_EMAIL_FRONTEND_URL",
		"ai.site_url":          "BANANADB_AI_SITE_URL",
		"ai.site_name":         "BANANADB_AI_SITE_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BANANADB_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BANANADB_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	cfg.AI = AIConfig{
		SiteURL:  v.GetString("ai.site_url"),
		SiteName: v.GetString("ai.site_name"),
	}

	return cfg, nil
}
