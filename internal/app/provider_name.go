package app

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-player-db/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
