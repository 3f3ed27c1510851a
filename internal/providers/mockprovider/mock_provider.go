package mockprovider

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/preston-bernstein/nhl-player-db/internal/domain/games"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/players"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/rosters"
	"github.com/preston-bernstein/nhl-player-db/internal/domain/seasons"
)

type Provider struct {
	mock.Mock
}

func (p *Provider) FetchRoster(ctx context.Context, team string, season seasons.ID) (rosters.Roster, error) {
	args := p.Called(ctx, team, season)

	var res rosters.Roster
	if args.Get(0) != nil {
		res = args.Get(0).(rosters.Roster)
	}

	return res, args.Error(1)
}

func (p *Provider) FetchSchedule(ctx context.Context, team string, season seasons.ID) ([]games.Game, error) {
	args := p.Called(ctx, team, season)

	var res []games.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]games.Game)
	}

	return res, args.Error(1)
}

func (p *Provider) FetchBoxscore(ctx context.Context, gameID int64, team string) ([]players.Player, error) {
	args := p.Called(ctx, gameID, team)

	var res []players.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]players.Player)
	}

	return res, args.Error(1)
}
