package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	s "github.com/be1500616/zergoqrf/pkg/string"
)

// Server captures process level configuration.
type Server struct {
	Environment    string
	Addr           string
	LogLevel       string
	AllowedOrigins []string
	TrustedProxies []string
	RequestTimeout time.Duration
	AdminAPIToken  string

	Identity IdentityConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Sessions SessionConfig
	OTPLimit RateLimitConfig
}

// IdentityConfig points at the hosted identity provider.
type IdentityConfig struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
	JWTSecret      string
	Timeout        time.Duration
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers    string
	AuditTopic string
}

type SessionConfig struct {
	AnonymousTTL    time.Duration
	CleanupInterval time.Duration
}

// RateLimitConfig bounds OTP dispatches per phone number.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// DevJWTSecret is used only when no secret is configured outside production.
const DevJWTSecret = "dev-secret-key-change-in-production"

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; real
// environment variables win.
func FromEnv() Server {
	_ = godotenv.Load()

	env := getString("APP_ENV", "development")
	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	if jwtSecret == "" && env != "production" {
		jwtSecret = DevJWTSecret
	}

	return Server{
		Environment:    env,
		Addr:           getString("API_ADDR", ":8080"),
		LogLevel:       getString("LOG_LEVEL", "info"),
		AllowedOrigins: s.SplitList(os.Getenv("ALLOWED_ORIGINS")),
		TrustedProxies: s.SplitList(os.Getenv("TRUSTED_PROXIES")),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),
		AdminAPIToken:  os.Getenv("ADMIN_API_TOKEN"),
		Identity: IdentityConfig{
			URL:            strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
			AnonKey:        os.Getenv("SUPABASE_ANON_KEY"),
			ServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
			JWTSecret:      jwtSecret,
			Timeout:        getDuration("IDENTITY_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    os.Getenv("KAFKA_BROKERS"),
			AuditTopic: getString("AUDIT_TOPIC", "auth.audit"),
		},
		Sessions: SessionConfig{
			AnonymousTTL:    getDuration("ANONYMOUS_SESSION_TTL", 24*time.Hour),
			CleanupInterval: getDuration("SESSION_CLEANUP_INTERVAL", time.Hour),
		},
		OTPLimit: RateLimitConfig{
			Limit:  getInt("OTP_RATE_LIMIT", 5),
			Window: getDuration("OTP_RATE_WINDOW", 15*time.Minute),
		},
	}
}

// IsProduction reports whether the service runs with production safeguards.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
