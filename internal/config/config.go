package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	Data    DataConfig
	Metrics MetricsConfig
	MCP     MCPConfig
	Log     LogConfig
}

// MCPConfig controls the MCP tool endpoint mounted on the HTTP server.
type MCPConfig struct {
	Enabled bool
	Path    string
}

// LogConfig mirrors logging.Config without importing the logging package.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration with precedence defaults < CONFIG_FILE (YAML) < environment.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv(envConfigFile); path != "" {
		fc, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		fc.applyTo(&cfg)
	}

	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.Data = loadData(cfg.Data)
	cfg.Metrics = loadMetrics(cfg.Metrics)
	cfg.MCP = MCPConfig{
		Enabled: boolEnvOrDefault(envMCPEnabled, cfg.MCP.Enabled),
		Path:    envOrDefault(envMCPPath, cfg.MCP.Path),
	}
	cfg.Log = LogConfig{
		Level:  envOrDefault(envLogLevel, cfg.Log.Level),
		Format: envOrDefault(envLogFormat, cfg.Log.Format),
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Port: defaultPort,
		Data: DataConfig{
			Source:           defaultDataSource,
			PlayersPath:      defaultPlayersPath,
			TeamDefensePath:  defaultTeamDefensePath,
			PlayersTable:     defaultPlayersTable,
			TeamDefenseTable: defaultTeamDefenseTable,
			LoadTimeout:      defaultDataLoadTimeout,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		MCP: MCPConfig{
			Enabled: defaultMCPEnabled,
			Path:    defaultMCPPath,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
