package testutil

import (
	appplayers "github.com/preston-bernstein/nba-props-service/internal/app/players"
	apppicks "github.com/preston-bernstein/nba-props-service/internal/app/picks"
	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/store"
)

// Services bundles the app services over one in-memory store.
type Services struct {
	Store   *store.MemoryStore
	Players *appplayers.Service
	Teams   *appteams.Service
	Picks   *apppicks.Service
}

// NewServices builds services backed by a store preloaded with the given tables.
// The store is marked loaded. recorder may be nil.
func NewServices(roster []players.Player, profiles []teams.DefenseProfile, recorder *metrics.Recorder) Services {
	ms := store.NewMemoryStore()
	playerSvc := appplayers.NewService(ms)
	teamSvc := appteams.NewService(ms)
	playerSvc.ReplacePlayers(roster)
	teamSvc.ReplaceProfiles(profiles)
	ms.MarkLoaded()
	return Services{
		Store:   ms,
		Players: playerSvc,
		Teams:   teamSvc,
		Picks:   apppicks.NewService(playerSvc, teamSvc, recorder),
	}
}

// NewSampleServices is NewServices over SamplePlayers and SampleProfiles(sfPoints).
func NewSampleServices(sfPoints int, recorder *metrics.Recorder) Services {
	return NewServices(SamplePlayers(), SampleProfiles(sfPoints), recorder)
}
