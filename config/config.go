package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	MailDriverSMTP = "smtp"
	MailDriverSES  = "ses"
	MailDriverNone = "none"
)

// Config holds all configuration values.
type Config struct {
	Port        string `mapstructure:"PORT"`
	GinMode     string `mapstructure:"GIN_MODE"`
	Env         string `mapstructure:"APP_ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Comma-separated proxy IPs/CIDRs whose forwarding headers are honoured.
	TrustedProxiesRaw string `mapstructure:"TRUSTED_PROXIES"`

	// Hugging Face text generation.
	HuggingFaceAPIKey   string  `mapstructure:"HUGGINGFACE_API_KEY"`
	HFModel             string  `mapstructure:"HF_MODEL"`
	HFTimeoutSeconds    int     `mapstructure:"HF_TIMEOUT_SECONDS"`
	HFRequestsPerSecond float64 `mapstructure:"HF_RPS"`

	// Outbound mail.
	MailDriver          string `mapstructure:"MAIL_DRIVER"`
	SMTPHost            string `mapstructure:"SMTP_HOST"`
	SMTPPort            int    `mapstructure:"SMTP_PORT"`
	SMTPUsername        string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword        string `mapstructure:"SMTP_PASSWORD"`
	SMTPUseTLS          bool   `mapstructure:"SMTP_USE_TLS"`
	MailFrom            string `mapstructure:"MAIL_FROM"`
	AdminEmail          string `mapstructure:"ADMIN_EMAIL"`
	AWSRegion           string `mapstructure:"AWS_REGION"`
	EmailTimeoutSeconds int    `mapstructure:"EMAIL_TIMEOUT_SECONDS"`

	// Redis backs the booking volume counters when set.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RateLimitPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`

	AffiliateBookingID    string `mapstructure:"AFFILIATE_BOOKING_ID"`
	AffiliateExpediaID    string `mapstructure:"AFFILIATE_EXPEDIA_ID"`
	AffiliateHotelsID     string `mapstructure:"AFFILIATE_HOTELS_ID"`
	AffiliateAgodaID      string `mapstructure:"AFFILIATE_AGODA_ID"`
	AffiliateTrivagoID    string `mapstructure:"AFFILIATE_TRIVAGO_ID"`
	AffiliateGoIbiboID    string `mapstructure:"AFFILIATE_GOIBIBO_ID"`
	AffiliateMakeMyTripID string `mapstructure:"AFFILIATE_MAKEMYTRIP_ID"`
}

var defaults = map[string]any{
	"PORT":                    "8080",
	"GIN_MODE":                "debug",
	"APP_ENV":                 "development",
	"LOG_LEVEL":               "info",
	"FRONTEND_URL":            "",
	"TRUSTED_PROXIES":         "",
	"HUGGINGFACE_API_KEY":     "",
	"HF_MODEL":                "mistralai/Mistral-7B-Instruct-v0.3",
	"HF_TIMEOUT_SECONDS":      15,
	"HF_RPS":                  1.0,
	"MAIL_DRIVER":             MailDriverNone,
	"SMTP_HOST":               "smtp.gmail.com",
	"SMTP_PORT":               587,
	"SMTP_USERNAME":           "",
	"SMTP_PASSWORD":           "",
	"SMTP_USE_TLS":            true,
	"MAIL_FROM":               "",
	"ADMIN_EMAIL":             "",
	"AWS_REGION":              "us-east-1",
	"EMAIL_TIMEOUT_SECONDS":   30,
	"REDIS_ADDR":              "",
	"REDIS_PASSWORD":          "",
	"REDIS_DB":                0,
	"RATE_LIMIT_PER_MIN":      100,
	"AFFILIATE_BOOKING_ID":    "",
	"AFFILIATE_EXPEDIA_ID":    "",
	"AFFILIATE_HOTELS_ID":     "",
	"AFFILIATE_AGODA_ID":      "",
	"AFFILIATE_TRIVAGO_ID":    "",
	"AFFILIATE_GOIBIBO_ID":    "",
	"AFFILIATE_MAKEMYTRIP_ID": "",
}

// Load reads .env (if present), an optional config.yaml, and the environment,
// in increasing order of precedence.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.MailDriver = strings.ToLower(strings.TrimSpace(cfg.MailDriver))
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.RateLimitPerMin <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MIN must be positive"))
	}
	if c.HFRequestsPerSecond <= 0 {
		errs = append(errs, errors.New("HF_RPS must be positive"))
	}

	switch c.MailDriver {
	case MailDriverNone:
	case MailDriverSMTP:
		if c.SMTPHost == "" || c.SMTPPort <= 0 {
			errs = append(errs, errors.New("SMTP_HOST and SMTP_PORT are required for the smtp mail driver"))
		}
		if c.Sender() == "" {
			errs = append(errs, errors.New("MAIL_FROM or SMTP_USERNAME is required for the smtp mail driver"))
		}
	case MailDriverSES:
		if c.AWSRegion == "" {
			errs = append(errs, errors.New("AWS_REGION is required for the ses mail driver"))
		}
		if c.MailFrom == "" {
			errs = append(errs, errors.New("MAIL_FROM is required for the ses mail driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_DRIVER %q", c.MailDriver))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Sender is the From address for outgoing mail.
func (c *Config) Sender() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.SMTPUsername
}

// AdminAddress receives contact-form notifications.
func (c *Config) AdminAddress() string {
	if c.AdminEmail != "" {
		return c.AdminEmail
	}
	return c.Sender()
}

func (c *Config) HFTimeout() time.Duration {
	return time.Duration(c.HFTimeoutSeconds) * time.Second
}

func (c *Config) EmailTimeout() time.Duration {
	return time.Duration(c.EmailTimeoutSeconds) * time.Second
}

// AllowedOrigins returns the local dev origins plus any comma-separated
// FRONTEND_URL entries.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(c.FrontendURL, ",") {
		if u = strings.TrimSpace(u); u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

// TrustedProxies splits TRUSTED_PROXIES. An empty list means forwarding headers
// are ignored and the connection address identifies the client.
func (c *Config) TrustedProxies() []string {
	var out []string
	for _, p := range strings.Split(c.TrustedProxiesRaw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AffiliateIDs maps provider names to configured affiliate ids. Unset ids are
// omitted so the built-in defaults apply.
func (c *Config) AffiliateIDs() map[string]string {
	ids := map[string]string{
		"Booking.com": c.AffiliateBookingID,
		"Expedia":     c.AffiliateExpediaID,
		"Hotels.com":  c.AffiliateHotelsID,
		"Agoda":       c.AffiliateAgodaID,
		"Trivago":     c.AffiliateTrivagoID,
		"GoIbibo":     c.AffiliateGoIbiboID,
		"MakeMyTrip":  c.AffiliateMakeMyTripID,
	}
	for k, v := range ids {
		if v == "" {
			delete(ids, k)
		}
	}
	return ids
}
