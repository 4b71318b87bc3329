package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/menyentuh/website/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	StaticDir   string `env:"STATIC_DIR"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS Configuration
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Mail Configuration
	Mail MailConfig

	// Contact route rate limiting
	ContactRatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	ContactRateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"menyentuh-website"`

	// Client Configuration
	WhatsAppNumber string `env:"WHATSAPP_NUMBER"`
}

// MailConfig holds the outbound email provider settings.
// APIKey is the only secret; an empty key disables the contact endpoint.
type MailConfig struct {
	APIKey        string        `env:"RESEND_API_KEY"`
	APIURL        string        `env:"RESEND_API_URL" envDefault:"https://api.resend.com"`
	From          string        `env:"MAIL_FROM" envDefault:"Menyentuh Website <website@menyentuh.nl>"`
	To            string        `env:"MAIL_TO" envDefault:"info@menyentuh.nl"`
	SubjectPrefix string        `env:"MAIL_SUBJECT_PREFIX" envDefault:"Nieuw bericht via menyentuh.nl"`
	Timeout       time.Duration `env:"MAIL_TIMEOUT" envDefault:"8s"`
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{
		"internal/config/env/.env.production",
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse builds the configuration from the current process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Mail.APIURL = strings.TrimSuffix(cfg.Mail.APIURL, "/")

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if cfg.ContactRatePerMinute <= 0 {
		return nil, fmt.Errorf("%w: CONTACT_RATE_PER_MINUTE must be positive, got %d", logging.ErrInvalidConfig, cfg.ContactRatePerMinute)
	}
	if cfg.ContactRateBurst <= 0 {
		return nil, fmt.Errorf("%w: CONTACT_RATE_BURST must be positive, got %d", logging.ErrInvalidConfig, cfg.ContactRateBurst)
	}
	// A zero http.Client timeout would wait on the email API forever
	if cfg.Mail.Timeout <= 0 {
		return nil, fmt.Errorf("%w: MAIL_TIMEOUT must be positive, got %s", logging.ErrInvalidConfig, cfg.Mail.Timeout)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
