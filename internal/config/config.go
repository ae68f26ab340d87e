package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Redis  RedisConfig
	S3     S3Config
	Email  EmailConfig
	Seed   SeedConfig
	App    AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// StoreConfig selects where master data and the visit/approval logs live.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
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

// RedisConfig holds the stats cache connection. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a Redis address is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// S3Config holds AWS S3 settings for report uploads. An empty Bucket
// disables uploads and reports are streamed back directly.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Enabled reports whether report uploads are configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// SeedConfig drives the demo dataset used by the memory store and cmd/seed.
type SeedConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Value         uint64 `mapstructure:"value"`
	Today         string `mapstructure:"today"`
	VisitDays     int    `mapstructure:"visit_days"`
	ApprovalDays  int    `mapstructure:"approval_days"`
	AdminPassword string `mapstructure:"admin_password"`
	RepPassword   string `mapstructure:"rep_password"`
}

// AppConfig holds domain settings.
type AppConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured timezone used to derive "today".
func (a *AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from environment variables with the MRTRACK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MRTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("store.driver", StoreMemory)

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "mrtrack")
	v.SetDefault("db.password", "mrtrack_secret")
	v.SetDefault("db.name", "mrtrack_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "mrtrack")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// Redis defaults
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@mrtrack.local")
	v.SetDefault("email.from_name", "MR Track")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	// Seed defaults
	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.value", 1)
	v.SetDefault("seed.today", "")
	v.SetDefault("seed.visit_days", 30)
	v.SetDefault("seed.approval_days", 14)
	v.SetDefault("seed.admin_password", "admin123")
	v.SetDefault("seed.rep_password", "temp123")

	v.SetDefault("app.timezone", "Asia/Kolkata")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "MRTRACK_SERVER_PORT",
		"server.read_timeout":  "MRTRACK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "MRTRACK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "MRTRACK_SERVER_ENVIRONMENT",
		"store.driver":         "MRTRACK_STORE_DRIVER",
		"db.host":              "MRTRACK_DB_HOST",
		"db.port":              "MRTRACK_DB_PORT",
		"db.user":              "MRTRACK_DB_USER",
		"db.password":          "MRTRACK_DB_PASSWORD",
		"db.name":              "MRTRACK_DB_NAME",
		"db.sslmode":           "MRTRACK_DB_SSLMODE",
		"db.max_open":          "MRTRACK_DB_MAX_OPEN",
		"db.max_idle":          "MRTRACK_DB_MAX_IDLE",
		"jwt.secret":           "MRTRACK_JWT_SECRET",
		"jwt.access_expiry":    "MRTRACK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "MRTRACK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "MRTRACK_JWT_ISSUER",
		"log.level":            "MRTRACK_LOG_LEVEL",
		"log.format":           "MRTRACK_LOG_FORMAT",
		"cors.allowed_origins": "MRTRACK_CORS_ALLOWED_ORIGINS",
		"redis.addr":           "MRTRACK_REDIS_ADDR",
		"redis.password":       "MRTRACK_REDIS_PASSWORD",
		"redis.db":             "MRTRACK_REDIS_DB",
		"redis.ttl":            "MRTRACK_REDIS_TTL",
		"s3.region":            "MRTRACK_S3_REGION",
		"s3.bucket":            "MRTRACK_S3_BUCKET",
		"s3.endpoint":          "MRTRACK_S3_ENDPOINT",
		"s3.access_key":        "MRTRACK_S3_ACCESS_KEY",
		"s3.secret_key":        "MRTRACK_S3_SECRET_KEY",
		"s3.presign_expiry":    "MRTRACK_S3_PRESIGN_EXPIRY",
		"email.provider":       "MRTRACK_EMAIL_PROVIDER",
		"email.region":         "MRTRACK_EMAIL_REGION",
		"email.from_address":   "MRTRACK_EMAIL_FROM_ADDRESS",
		"email.from_name":      "MRTRACK_EMAIL_FROM_NAME",
		"email.frontend_url":   "MRTRACK_EMAIL_FRONTEND_URL",
		"seed.enabled":         "MRTRACK_SEED_ENABLED",
		"seed.value":           "MRTRACK_SEED_VALUE",
		"seed.today":           "MRTRACK_SEED_TODAY",
		"seed.visit_days":      "MRTRACK_SEED_VISIT_DAYS",
		"seed.approval_days":   "MRTRACK_SEED_APPROVAL_DAYS",
		"seed.admin_password":  "MRTRACK_SEED_ADMIN_PASSWORD",
		"seed.rep_password":    "MRTRACK_SEED_REP_PASSWORD",
		"app.timezone":         "MRTRACK_APP_TIMEZONE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if MRTRACK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MRTRACK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Store = StoreConfig{
		Driver: strings.ToLower(v.GetString("store.driver")),
	}
	if cfg.Store.Driver != StoreMemory && cfg.Store.Driver != StorePostgres {
		return nil, fmt.Errorf("unsupported store.driver %q", cfg.Store.Driver)
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

	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		TTL:      v.GetDuration("redis.ttl"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Seed = SeedConfig{
		Enabled:       v.GetBool("seed.enabled"),
		Value:         v.GetUint64("seed.value"),
		Today:         v.GetString("seed.today"),
		VisitDays:     v.GetInt("seed.visit_days"),
		ApprovalDays:  v.GetInt("seed.approval_days"),
		AdminPassword: v.GetString("seed.admin_password"),
		RepPassword:   v.GetString("seed.rep_password"),
	}
	cfg.App = AppConfig{
		Timezone: v.GetString("app.timezone"),
	}

	return cfg, nil
}
