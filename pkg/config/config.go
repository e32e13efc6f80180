package config

import (
	"time"
)

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxmirror]"`
}

// Feed configures the exchange rate feed: a primary host, a mirror tried
// only after the primary fails, the per-request timeout and the staleness
// window for cached responses.
type Feed struct {
	PrimaryURL  string        `envconfig:"PRIMARY_URL" default:"https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1"`
	FallbackURL string        `envconfig:"FALLBACK_URL" default:"https://latest.currency-api.pages.dev/v1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"30m"`
}

type Cache struct {
	Backend string `envconfig:"BACKEND" default:"memory"` // memory or redis
}

type Redis struct {
	URL         string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix   string        `envconfig:"KEY_PREFIX" default:"fxmirror:"`
	PoolSize    int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Feed      *Feed      `envconfig:"FEED"`
	Cache     *Cache     `envconfig:"CACHE"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
