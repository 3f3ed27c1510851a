package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/teams"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var problems []error

	if strings.TrimSpace(c.Output) == "" {
		problems = append(problems, errors.New("output path must not be empty"))
	}
	if c.DelayMS < 0 {
		problems = append(problems, fmt.Errorf("delay must not be negative, got %d", c.DelayMS))
	}
	if _, err := c.SeasonRange(); err != nil {
		problems = append(problems, err)
	}
	if c.IncludeGames && c.GameLimit <= 0 {
		problems = append(problems, fmt.Errorf("game limit must be positive, got %d", c.GameLimit))
	}
	switch strings.ToLower(c.Provider) {
	case ProviderNHLE, ProviderFixture:
	default:
		problems = append(problems, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if _, err := teams.Select(c.Teams); err != nil {
		problems = append(problems, err)
	}
	if c.NHLE.Timeout <= 0 {
		problems = append(problems, fmt.Errorf("request timeout must be positive, got %s", c.NHLE.Timeout))
	}
	if c.Retry.Attempts < 1 {
		problems = append(problems, fmt.Errorf("retry attempts must be at least 1, got %d", c.Retry.Attempts))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
