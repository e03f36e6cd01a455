package config

import (
	"strings"
	"time"
)

// DataConfig selects where the player and team-defense tables are loaded from.
type DataConfig struct {
	Source           string // files | sqlite | postgres | fixture
	PlayersPath      string
	TeamDefensePath  string
	DatabaseDSN      string
	PlayersTable     string
	TeamDefenseTable string
	LoadTimeout      time.Duration
}

func loadData(base DataConfig) DataConfig {
	return DataConfig{
		Source:           strings.ToLower(envOrDefault(envDataSource, base.Source)),
		PlayersPath:      envOrDefault(envPlayersPath, base.PlayersPath),
		TeamDefensePath:  envOrDefault(envTeamDefensePath, base.TeamDefensePath),
		DatabaseDSN:      envOrDefault(envDatabaseDSN, base.DatabaseDSN),
		PlayersTable:     envOrDefault(envPlayersTable, base.PlayersTable),
		TeamDefenseTable: envOrDefault(envTeamDefenseTable, base.TeamDefenseTable),
		LoadTimeout:      durationEnvOrDefault(envDataLoadTimeout, base.LoadTimeout),
	}
}
