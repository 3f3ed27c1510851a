package providers

import (
	"testing"

	"github.com/preston-bernstein/nhl-player-db/internal/teststubs"
)

func TestStubSatisfiesDataProvider(t *testing.T) {
	var _ DataProvider = (*teststubs.StubProvider)(nil)
}
