package testutil

import (
	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// SampleTeam is the team SampleProfiles always contains.
const SampleTeam = "Boston Celtics"

// SamplePlayers returns a small roster in a fixed order.
func SamplePlayers() []players.Player {
	return []players.Player{
		{Name: "Stephen Curry", Position: players.PointGuard},
		{Name: "LeBron James", Position: players.SmallForward},
		{Name: "Nikola Jokic", Position: players.Center},
	}
}

// SampleProfiles returns SampleTeam with sf_points set to sfPoints, plus one
// fully ranked team.
func SampleProfiles(sfPoints int) []teams.DefenseProfile {
	full := make(map[teams.Field]int)
	for i, f := range teams.Fields() {
		full[f] = i + 1
	}
	return []teams.DefenseProfile{
		{
			Team: SampleTeam,
			Ranks: map[teams.Field]int{
				{Position: players.SmallForward, Stat: teams.Points}: sfPoints,
				{Position: players.PointGuard, Stat: teams.Assists}:  28,
			},
		},
		{Team: "Miami Heat", Ranks: full},
	}
}
