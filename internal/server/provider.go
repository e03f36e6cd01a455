package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/providers/files"
	"github.com/preston-bernstein/nba-props-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-props-service/internal/providers/sqldb"
)

// dataSource is a selected provider plus whatever it holds open.
type dataSource struct {
	name     string
	provider providers.DataProvider
	close    func() error
}

func selectProvider(cfg config.DataConfig, logger *slog.Logger) (dataSource, error) {
	switch cfg.Source {
	case files.SourceName, "":
		return dataSource{
			name:     files.SourceName,
			provider: files.New(cfg.PlayersPath, cfg.TeamDefensePath),
		}, nil
	case sqldb.SourceSQLite, sqldb.SourcePostgres:
		db, err := sqldb.Open(sqldb.Config{
			Source:       cfg.Source,
			DSN:          cfg.DatabaseDSN,
			PlayersTable: cfg.PlayersTable,
			DefenseTable: cfg.TeamDefenseTable,
		})
		if err != nil {
			return dataSource{}, &providers.DataLoadError{Source: cfg.Source, Kind: providers.KindSource, Err: err}
		}
		return dataSource{name: cfg.Source, provider: db, close: db.Close}, nil
	case fixture.SourceName:
		return dataSource{name: fixture.SourceName, provider: fixture.New()}, nil
	default:
		if logger != nil {
			logger.Warn("unknown data source, falling back to fixture", slog.String("source", cfg.Source))
		}
		return dataSource{name: fixture.SourceName, provider: fixture.New()}, nil
	}
}
