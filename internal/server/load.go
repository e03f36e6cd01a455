package server

import (
	"context"
	"log/slog"
	"time"

	appplayers "github.com/preston-bernstein/nba-props-service/internal/app/players"
	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// loadTables reads both tables once and hands them to the services. Either
// failure aborts the load with the provider's *providers.DataLoadError.
func loadTables(ctx context.Context, provider providers.DataProvider, playerSvc *appplayers.Service, teamSvc *appteams.Service, timeout time.Duration, logger *slog.Logger) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	roster, err := provider.FetchPlayers(ctx)
	if err != nil {
		return err
	}
	profiles, err := provider.FetchTeamDefense(ctx)
	if err != nil {
		return err
	}

	playerSvc.ReplacePlayers(roster)
	for _, team := range teamSvc.ReplaceProfiles(profiles) {
		logging.Warn(logger, "duplicate team row ignored", slog.String(logging.FieldTeam, team))
	}
	return nil
}
