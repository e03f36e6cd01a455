package fixture

import (
	"context"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// SourceName identifies this provider in logs, metrics and load errors.
const SourceName = "fixture"

// Provider returns a static set of tables useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []players.Player{
		{Name: "Stephen Curry", Position: players.PointGuard},
		{Name: "Devin Booker", Position: players.ShootingGuard},
		{Name: "LeBron James", Position: players.SmallForward},
		{Name: "Giannis Antetokounmpo", Position: players.PowerForward},
		{Name: "Nikola Jokic", Position: players.Center},
	}, nil
}

// rankRows lists ranks in teams.Fields order.
var rankRows = []struct {
	team  string
	ranks [15]int
}{
	{"Boston Celtics", [15]int{4, 12, 7, 9, 18, 2, 3, 14, 21, 6, 11, 27, 1, 8, 16}},
	{"Los Angeles Lakers", [15]int{22, 5, 28, 19, 7, 13, 23, 26, 4, 30, 15, 9, 17, 24, 10}},
	{"Golden State Warriors", [15]int{11, 29, 16, 1, 25, 20, 14, 6, 30, 8, 3, 18, 26, 12, 22}},
	{"Miami Heat", [15]int{30, 18, 1, 26, 10, 24, 8, 19, 12, 2, 28, 5, 9, 29, 6}},
}

// FetchTeamDefense returns deterministic defensive ranks for a handful of teams.
func (p *Provider) FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fields := teams.Fields()
	out := make([]teams.DefenseProfile, 0, len(rankRows))
	for _, row := range rankRows {
		profile := teams.DefenseProfile{Team: row.team, Ranks: make(map[teams.Field]int, len(fields))}
		for i, f := range fields {
			profile.Ranks[f] = row.ranks[i]
		}
		out = append(out, profile)
	}
	return out, nil
}
