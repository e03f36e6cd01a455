package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape accepted via CONFIG_FILE. Zero values leave defaults untouched.
type fileConfig struct {
	Port string `yaml:"port"`
	Data struct {
		Source           string `yaml:"source"`
		PlayersPath      string `yaml:"players_path"`
		TeamDefensePath  string `yaml:"team_defense_path"`
		DatabaseDSN      string `yaml:"database_dsn"`
		PlayersTable     string `yaml:"players_table"`
		TeamDefenseTable string `yaml:"team_defense_table"`
		LoadTimeout      string `yaml:"load_timeout"`
	} `yaml:"data"`
	Metrics struct {
		Enabled      *bool  `yaml:"enabled"`
		Port         string `yaml:"port"`
		OtlpEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
		OtlpInsecure *bool  `yaml:"otlp_insecure"`
	} `yaml:"metrics"`
	MCP struct {
		Enabled *bool  `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"mcp"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

func (fc fileConfig) applyTo(cfg *Config) {
	setString(&cfg.Port, fc.Port)

	setString(&cfg.Data.Source, fc.Data.Source)
	setString(&cfg.Data.PlayersPath, fc.Data.PlayersPath)
	setString(&cfg.Data.TeamDefensePath, fc.Data.TeamDefensePath)
	setString(&cfg.Data.DatabaseDSN, fc.Data.DatabaseDSN)
	setString(&cfg.Data.PlayersTable, fc.Data.PlayersTable)
	setString(&cfg.Data.TeamDefenseTable, fc.Data.TeamDefenseTable)
	if d, err := time.ParseDuration(fc.Data.LoadTimeout); err == nil && d > 0 {
		cfg.Data.LoadTimeout = d
	}

	setBool(&cfg.Metrics.Enabled, fc.Metrics.Enabled)
	setString(&cfg.Metrics.Port, fc.Metrics.Port)
	setString(&cfg.Metrics.OtlpEndpoint, fc.Metrics.OtlpEndpoint)
	setString(&cfg.Metrics.ServiceName, fc.Metrics.ServiceName)
	setBool(&cfg.Metrics.OtlpInsecure, fc.Metrics.OtlpInsecure)

	setBool(&cfg.MCP.Enabled, fc.MCP.Enabled)
	setString(&cfg.MCP.Path, fc.MCP.Path)

	setString(&cfg.Log.Level, fc.Log.Level)
	setString(&cfg.Log.Format, fc.Log.Format)
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func setBool(dst *bool, val *bool) {
	if val != nil {
		*dst = *val
	}
}
