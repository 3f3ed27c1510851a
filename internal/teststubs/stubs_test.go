package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
)

func TestStubProviderReturnsConfiguredRosters(t *testing.T) {
	season := seasons.New(2023)
	stub := &StubProvider{
		Rosters:    map[string][]string{RosterKey("BOS", season): {"A B"}},
		RosterErrs: map[string]error{RosterKey("TOR", season): errors.New("boom")},
	}

	roster, err := stub.FetchRoster(context.Background(), "BOS", season)
	if err != nil || len(roster.Players) != 1 {
		t.Fatalf("unexpected roster %+v err=%v", roster, err)
	}
	if _, err := stub.FetchRoster(context.Background(), "TOR", season); err == nil {
		t.Fatalf("expected configured error")
	}
	if empty, err := stub.FetchRoster(context.Background(), "MTL", season); err != nil || len(empty.Players) != 0 {
		t.Fatalf("expected empty roster for unknown key")
	}
	if stub.Calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", stub.Calls.Load())
	}
	if got := stub.Requested(); len(got) != 3 || got[0] != "BOS/20232024" {
		t.Fatalf("unexpected requested keys %v", got)
	}
}

func TestStubProviderCancelsAfterThreshold(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stub := &StubProvider{Cancel: cancel, CancelAfter: 2}

	_, _ = stub.FetchRoster(ctx, "BOS", seasons.New(2020))
	if ctx.Err() != nil {
		t.Fatalf("expected context alive after first call")
	}
	_, _ = stub.FetchSchedule(ctx, "BOS", seasons.New(2020))
	if ctx.Err() == nil {
		t.Fatalf("expected context canceled after second call")
	}
}

func TestStubDatabaseWriter(t *testing.T) {
	w := &StubDatabaseWriter{}
	n, err := w.Write(rosters.Database{Teams: map[string][]string{"BOS": {"A B", "C D"}}})
	if err != nil || n != 2 || len(w.Written) != 1 {
		t.Fatalf("unexpected write result n=%d err=%v", n, err)
	}
	w.Err = errors.New("disk full")
	if _, err := w.Write(rosters.Database{}); err == nil {
		t.Fatalf("expected configured error")
	}
}
