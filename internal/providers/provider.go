package providers

import (
	"context"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// Table kinds reported in logs, metrics and load errors.
const (
	KindPlayers     = "players"
	KindTeamDefense = "team_defense"
	KindSource      = "source" // opening the source itself failed
)

// PlayerProvider loads the player roster.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// DefenseProvider loads per-team defensive ranks.
type DefenseProvider interface {
	FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error)
}

// DataProvider combines both tables. Implementations read their source in full on
// every call and return *DataLoadError when it is missing, unreadable or malformed.
type DataProvider interface {
	PlayerProvider
	DefenseProvider
}
