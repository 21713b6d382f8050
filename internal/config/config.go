package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	Identity  IdentityConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port          string
	Host          string
	Environment   string
	AllowedOrigin string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// IdentityConfig points at the external identity provider that verifies
// staff bearer tokens. The issuer is required: without it the admin surface
// cannot authenticate anyone, so startup is refused.
type IdentityConfig struct {
	IssuerURL string
	ClientID  string
}

// EmailConfig configures the transactional-email provider. All fields are
// optional; when absent, notification sends fail individually while the rest
// of the API keeps working.
type EmailConfig struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "careers")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("EMAIL_SENDER_NAME", "The Lifewood Team")
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:          viper.GetString("SERVER_PORT"),
			Host:          viper.GetString("SERVER_HOST"),
			Environment:   viper.GetString("SERVER_ENVIRONMENT"),
			AllowedOrigin: viper.GetString("CORS_ALLOWED_ORIGIN"),
			ReadTimeout:   30 * time.Second,
			WriteTimeout:  30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      getEnvOrPanic("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Identity: IdentityConfig{
			IssuerURL: getEnvOrPanic("IDP_ISSUER_URL"),
			ClientID:  viper.GetString("IDP_CLIENT_ID"),
		},
		Email: EmailConfig{
			APIKey:      os.Getenv("BREVO_API_KEY"),
			SenderEmail: viper.GetString("EMAIL_SENDER"),
			SenderName:  viper.GetString("EMAIL_SENDER_NAME"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	if cfg.Email.APIKey == "" || cfg.Email.SenderEmail == "" {
		log.Println("WARNING: email credentials (BREVO_API_KEY / EMAIL_SENDER) are not set; applicant notifications will be skipped")
	}

	return cfg, nil
}

func getEnvOrPanic(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}
