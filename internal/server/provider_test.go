package server

import (
	"context"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/providers/files"
	"github.com/preston-bernstein/nba-props-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-props-service/internal/providers/sqldb"
	"github.com/preston-bernstein/nba-props-service/internal/testutil"
)

func TestSelectProviderDefaultsToFiles(t *testing.T) {
	src, err := selectProvider(config.DataConfig{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.provider.(*files.Provider); !ok || src.name != files.SourceName {
		t.Fatalf("expected files provider, got %T (%s)", src.provider, src.name)
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	src, err := selectProvider(config.DataConfig{Source: "unknown"}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", src.provider)
	}
	if !strings.Contains(buf.String(), "falling back to fixture") {
		t.Fatalf("expected fallback warning, got %s", buf.String())
	}
}

func TestSelectProviderOpensSQLite(t *testing.T) {
	src, err := selectProvider(config.DataConfig{
		Source:           sqldb.SourceSQLite,
		DatabaseDSN:      t.TempDir() + "/props.db",
		PlayersTable:     "players",
		TeamDefenseTable: "team_defense",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.provider.(*sqldb.Provider); !ok || src.close == nil {
		t.Fatalf("expected closable sqldb provider, got %T", src.provider)
	}
	if err := src.close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestSelectProviderRejectsBadTableName(t *testing.T) {
	_, err := selectProvider(config.DataConfig{
		Source:           sqldb.SourcePostgres,
		DatabaseDSN:      "postgres://localhost/props?sslmode=disable",
		PlayersTable:     "players; drop table x",
		TeamDefenseTable: "team_defense",
	}, nil)
	loadErr, ok := providers.AsDataLoadError(err)
	if !ok || loadErr.Kind != providers.KindSource || loadErr.Source != sqldb.SourcePostgres {
		t.Fatalf("expected source DataLoadError for invalid table name, got %v", err)
	}
}

func TestProviderFactoryWrapsWithInstrumentation(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	src, err := newProviderFactory(nil, rec).build(config.DataConfig{Source: fixture.SourceName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.provider.(*fixture.Provider); ok {
		t.Fatalf("expected wrapped provider")
	}
	if _, err := src.provider.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap := rec.Snapshot(fixture.SourceName, "players"); snap.Calls != 1 {
		t.Fatalf("expected one recorded load, got %+v", snap)
	}
}
