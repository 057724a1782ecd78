package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, fee rate, intervals)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Stripe  StripeConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the identity provider; only the shared secret lives here.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type StripeConfig struct {
	SecretKey            string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret        string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	WebhookTolerance     time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
	SuccessURL           string        `envconfig:"STRIPE_CHECKOUT_SUCCESS_URL" default:"http://localhost:3000/bookings/success"`
	CancelURL            string        `envconfig:"STRIPE_CHECKOUT_CANCEL_URL" default:"http://localhost:3000/bookings/cancel"`
	OnboardingRefreshURL string        `envconfig:"STRIPE_ONBOARDING_REFRESH_URL" default:"http://localhost:3000/payouts/refresh"`
	OnboardingReturnURL  string        `envconfig:"STRIPE_ONBOARDING_RETURN_URL" default:"http://localhost:3000/payouts/return"`
}

type BookingConfig struct {
	// basis points of the booking total kept by the platform (1000 = 10%)
	PlatformFeeBps  int64         `envconfig:"BOOKING_PLATFORM_FEE_BPS" default:"1000"`
	SweepInterval   time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"15m"`
	PendingTTL      time.Duration `envconfig:"BOOKING_PENDING_TTL" default:"0"`
	CheckoutTimeout time.Duration `envconfig:"BOOKING_CHECKOUT_TIMEOUT" default:"20s"`
	// how long an event whose target is not stored yet keeps being refused
	// so the processor redelivers it; matches the processor's retry horizon
	WebhookRetryWindow time.Duration `envconfig:"BOOKING_WEBHOOK_RETRY_WINDOW" default:"72h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Validate() error {
	if c.PlatformFeeBps < 0 || c.PlatformFeeBps > 10000 {
		return fmt.Errorf("BOOKING_PLATFORM_FEE_BPS must be within 0..10000, got %d", c.PlatformFeeBps)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("BOOKING_SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	if c.PendingTTL < 0 {
		return fmt.Errorf("BOOKING_PENDING_TTL must not be negative, got %s", c.PendingTTL)
	}
	if c.WebhookRetryWindow < 0 {
		return fmt.Errorf("BOOKING_WEBHOOK_RETRY_WINDOW must not be negative, got %s", c.WebhookRetryWindow)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Stripe: StripeConfig{
			SecretKey:            "sk_test_dummy",
			WebhookSecret:        "whsec_test",
			WebhookTolerance:     5 * time.Minute,
			SuccessURL:           "http://localhost/success",
			CancelURL:            "http://localhost/cancel",
			OnboardingRefreshURL: "http://localhost/refresh",
			OnboardingReturnURL:  "http://localhost/return",
		},
		Booking: BookingConfig{
			PlatformFeeBps:     1000,
			SweepInterval:      time.Minute,
			CheckoutTimeout:    5 * time.Second,
			WebhookRetryWindow: 72 * time.Hour,
		},
	}
}
