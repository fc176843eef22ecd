package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (API endpoint, credential)
// - default: Values common across all environments (page size, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Auth    AuthConfig
	Session SessionConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string `envconfig:"API_BASE_URL" required:"true"`
	// Zero means no timeout: a slow gateway call delays resolution
	// indefinitely unless the caller cancels its context.
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"0"`
}

type AuthConfig struct {
	Token string `envconfig:"API_TOKEN" default:""`
}

type SessionConfig struct {
	ListingsPageSize int  `envconfig:"LISTINGS_PAGE_SIZE" default:"20"`
	Pickup           bool `envconfig:"DEFAULT_PICKUP" default:"true"`
	FlashDealOptIn   bool `envconfig:"FLASH_DEAL_OPT_IN" default:"false"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kathmandu"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"20700"` // 5*60*60 + 45*60
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8889",
		},
		Auth: AuthConfig{
			Token: "test-token",
		},
		Session: SessionConfig{
			ListingsPageSize: 20,
			Pickup:           true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kathmandu",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 20700,
			Format:         "text",
		},
	}
}
