package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/lib/pq"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// Supported sources and the database/sql driver each one uses.
const (
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

var drivers = map[string]string{
	SourceSQLite:   "sqlite",
	SourcePostgres: "postgres",
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Config names the database and the two tables to read.
type Config struct {
	Source       string
	DSN          string
	PlayersTable string
	DefenseTable string
}

// Provider reads both tables from a SQL database. Columns are matched by name
// exactly as in the flat-file provider.
type Provider struct {
	source       string
	db           *sql.DB
	playersTable string
	defenseTable string
}

// Open validates cfg and opens a connection pool. The connection itself is
// established lazily on the first fetch.
func Open(cfg Config) (*Provider, error) {
	driver, ok := drivers[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("unsupported sql source %q", cfg.Source)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%s DSN is required", cfg.Source)
	}
	for _, name := range []string{cfg.PlayersTable, cfg.DefenseTable} {
		if !identPattern.MatchString(name) {
			return nil, fmt.Errorf("invalid table name %q", name)
		}
	}
	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Source, err)
	}
	return &Provider{
		source:       cfg.Source,
		db:           db,
		playersTable: cfg.PlayersTable,
		defenseTable: cfg.DefenseTable,
	}, nil
}

// Close releases the connection pool.
func (p *Provider) Close() error {
	return p.db.Close()
}

// FetchPlayers reads the players table.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	tbl, err := p.readTable(ctx, p.playersTable)
	if err == nil {
		var out []players.Player
		if out, err = providers.PlayersFromTable(tbl); err == nil {
			return out, nil
		}
	}
	return nil, p.loadError(providers.KindPlayers, p.playersTable, err)
}

// FetchTeamDefense reads the team defense table.
func (p *Provider) FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error) {
	tbl, err := p.readTable(ctx, p.defenseTable)
	if err == nil {
		var out []teams.DefenseProfile
		if out, err = providers.DefenseFromTable(tbl); err == nil {
			return out, nil
		}
	}
	return nil, p.loadError(providers.KindTeamDefense, p.defenseTable, err)
}

// readTable selects every row of table. Table names are validated in Open.
func (p *Provider) readTable(ctx context.Context, table string) (providers.Table, error) {
	rows, err := p.db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return providers.Table{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return providers.Table{}, err
	}

	var records [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return providers.Table{}, err
		}
		rec := make([]string, len(cols))
		for i, c := range cells {
			if c.Valid {
				rec[i] = c.String
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return providers.Table{}, err
	}
	return providers.NewTable(cols, records)
}

func (p *Provider) loadError(kind, table string, err error) error {
	return &providers.DataLoadError{Source: p.source, Kind: kind, Path: table, Err: err}
}
