package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe fallback
// - default: Values common across all environments (port, timezone, rules), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	OrderTime OrderTimeConfig
	Metrics   MetricsConfig
	Swagger   SwaggerConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

const (
	HoursModeInstant   = "instant"
	HoursModeTimeOfDay = "time_of_day"
)

// OrderTimeConfig holds the rule switches applied to every evaluation.
type OrderTimeConfig struct {
	EnforceMaxLead  bool   `envconfig:"ORDER_TIME_ENFORCE_MAX_LEAD" default:"false"`
	AssumePM        bool   `envconfig:"ORDER_TIME_ASSUME_PM" default:"false"`
	HoursMode       string `envconfig:"ORDER_TIME_HOURS_MODE" default:"instant"`
	DefaultNextDays int    `envconfig:"ORDER_TIME_DEFAULT_NEXT_DAYS" default:"1"`
	// Location only decides which wall clock "now" is read from.
	Location string `envconfig:"ORDER_TIME_LOCATION" default:"Local"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type SwaggerConfig struct {
	Enabled bool `envconfig:"SWAGGER_ENABLED" default:"false"`
}

func (c OrderTimeConfig) Validate() error {
	switch c.HoursMode {
	case HoursModeInstant, HoursModeTimeOfDay:
	default:
		return fmt.Errorf("ORDER_TIME_HOURS_MODE must be %q or %q, got %q", HoursModeInstant, HoursModeTimeOfDay, c.HoursMode)
	}
	if c.DefaultNextDays < 1 {
		return fmt.Errorf("ORDER_TIME_DEFAULT_NEXT_DAYS must be at least 1, got %d", c.DefaultNextDays)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.OrderTime.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid order time config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		OrderTime: OrderTimeConfig{
			HoursMode:       HoursModeInstant,
			DefaultNextDays: 1,
			Location:        "UTC",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
