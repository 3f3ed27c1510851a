package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
)

// Config holds runtime configuration for a collection run.
// Values come from defaults, then NHLDB_* environment variables, then CLI flags.
type Config struct {
	Output       string        `split_words:"true" default:"nhl_players.json"`
	DelayMS      int           `split_words:"true" default:"100"`
	StartYear    int           `split_words:"true" default:"2015"`
	EndYear      int           `split_words:"true" default:"2025"`
	IncludeGames bool          `split_words:"true" default:"false"`
	GameLimit    int           `split_words:"true" default:"10"`
	Teams        []string      `split_words:"true"`
	Provider     string        `split_words:"true" default:"nhle"`
	NHLE         NHLEConfig    `envconfig:"NHLE"`
	Retry        RetryConfig   `envconfig:"RETRY"`
	Metrics      MetricsConfig `envconfig:"METRICS"`
	Log          LogConfig     `envconfig:"LOG"`
}

// NHLEConfig controls how we talk to the NHL web API.
type NHLEConfig struct {
	BaseURL   string        `split_words:"true" default:"https://api-web.nhle.com/v1"`
	UserAgent string        `split_words:"true" default:"NHL Player Database Generator 1.0"`
	Timeout   time.Duration `split_words:"true" default:"30s"`
}

// RetryConfig controls per-request retries. One attempt means no retries.
type RetryConfig struct {
	Attempts int           `split_words:"true" default:"1"`
	Backoff  time.Duration `split_words:"true" default:"500ms"`
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `split_words:"true" default:"false"`
	Port         string `split_words:"true" default:"9090"`
	OTLPEndpoint string `split_words:"true"`
	OTLPInsecure bool   `split_words:"true" default:"true"`
	ServiceName  string `split_words:"true" default:"nhl-player-db"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `split_words:"true" default:"info"`
	Format string `split_words:"true" default:"text"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Output:    defaultOutput,
		DelayMS:   defaultDelayMS,
		StartYear: defaultStartYear,
		EndYear:   defaultEndYear,
		GameLimit: defaultGameLimit,
		Provider:  ProviderNHLE,
		NHLE: NHLEConfig{
			BaseURL:   defaultBaseURL,
			UserAgent: defaultUserAgent,
			Timeout:   defaultHTTPTimeout,
		},
		Retry: RetryConfig{
			Attempts: defaultRetryAttempts,
			Backoff:  defaultRetryBackoff,
		},
		Metrics: MetricsConfig{
			Port:         defaultMetricsPort,
			OTLPInsecure: true,
			ServiceName:  defaultServiceName,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads NHLDB_* environment variables over the defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	return cfg, nil
}

// Delay is the fixed wait before every upstream request.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// SeasonRange builds the validated season range.
func (c Config) SeasonRange() (seasons.Range, error) {
	return seasons.NewRange(c.StartYear, c.EndYear)
}
