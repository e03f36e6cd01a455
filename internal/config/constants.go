package config

import "time"

const (
	envConfigFile       = "CONFIG_FILE"
	envPort             = "PORT"
	envDataSource       = "DATA_SOURCE"
	envPlayersPath      = "PLAYERS_PATH"
	envTeamDefensePath  = "TEAM_DEFENSE_PATH"
	envDatabaseDSN      = "DATABASE_DSN"
	envPlayersTable     = "PLAYERS_TABLE"
	envTeamDefenseTable = "TEAM_DEFENSE_TABLE"
	envDataLoadTimeout  = "DATA_LOAD_TIMEOUT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envMCPEnabled       = "MCP_ENABLED"
	envMCPPath          = "MCP_PATH"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	defaultPort             = "4000"
	defaultDataSource       = "files"
	defaultPlayersPath      = "data/players.csv"
	defaultTeamDefensePath  = "data/teamdefense.csv"
	defaultPlayersTable     = "players"
	defaultTeamDefenseTable = "team_defense"
	// Local flat files load in milliseconds; the budget is for remote databases.
	defaultDataLoadTimeout = 10 * Duration(time.Second)
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nba-props-service"
	defaultMCPEnabled      = true
	defaultMCPPath         = "/mcp"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)
