package config

import "time"

const (
	envPrefix = "NHLDB"

	ProviderNHLE    = "nhle"
	ProviderFixture = "fixture"

	defaultOutput    = "nhl_players.json"
	defaultDelayMS   = 100
	defaultStartYear = 2015
	defaultEndYear   = 2025
	defaultGameLimit = 10
	defaultBaseURL   = "https://api-web.nhle.com/v1"
	defaultUserAgent = "NHL Player Database Generator 1.0"
	// Upper bound on a single upstream request.
	defaultHTTPTimeout   = 30 * time.Second
	defaultRetryAttempts = 1
	defaultRetryBackoff  = 500 * time.Millisecond
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nhl-player-db"
)
