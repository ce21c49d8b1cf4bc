package shared

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"prod"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// One configured base for the API; the auth endpoints historically
	// lived on a second host, so they get their own override that falls
	// back to APIBaseURL.
	APIBaseURL  string `envconfig:"API_BASE_URL" default:"http://localhost:3000/api"`
	AuthBaseURL string `envconfig:"AUTH_BASE_URL"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	RequestRPS  int           `envconfig:"REQUEST_RPS" default:"5"`

	SessionPath string `envconfig:"SESSION_PATH"`

	RedisAddr string        `envconfig:"REDIS_ADDR"`
	RedisPass string        `envconfig:"REDIS_PASSWORD"`
	RedisDB   int           `envconfig:"REDIS_DB"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"15m"`

	MetricsAddr string `envconfig:"METRICS_ADDR"`
	PageLimit   int    `envconfig:"BOOKINGS_PAGE_LIMIT" default:"100"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if c.AuthBaseURL == "" {
		c.AuthBaseURL = c.APIBaseURL
	}
	if c.SessionPath == "" {
		c.SessionPath = defaultSessionPath()
	}
	if c.APIBaseURL == "http://localhost:3000/api" {
		log.Warn().Msg("API_BASE_URL not set, using localhost default")
	}
	return c, nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "checkinn", "session.json")
}
