package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/teams"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty output", func(c *Config) { c.Output = " " }, "output path"},
		{"negative delay", func(c *Config) { c.DelayMS = -1 }, "delay"},
		{"reversed years", func(c *Config) { c.StartYear, c.EndYear = 2025, 2015 }, "start year must not be after end year"},
		{"short year", func(c *Config) { c.StartYear = 15 }, "four-digit"},
		{"game limit", func(c *Config) { c.IncludeGames, c.GameLimit = true, 0 }, "game limit"},
		{"provider", func(c *Config) { c.Provider = "espn" }, "unknown provider"},
		{"timeout", func(c *Config) { c.NHLE.Timeout = 0 }, "timeout"},
		{"retry", func(c *Config) { c.Retry.Attempts = 0 }, "retry attempts"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %v", tc.want, err)
			}
		})
	}
}

func TestValidateUnknownTeamSuggests(t *testing.T) {
	cfg := Default()
	cfg.Teams = []string{"BOX"}
	err := cfg.Validate()
	if !errors.Is(err, teams.ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
	if !strings.Contains(err.Error(), "BOS") {
		t.Fatalf("expected suggestion in %v", err)
	}
}

func TestValidateGameLimitIgnoredWithoutGames(t *testing.T) {
	cfg := Default()
	cfg.GameLimit = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected game limit to be ignored, got %v", err)
	}
}
