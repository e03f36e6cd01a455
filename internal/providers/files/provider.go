package files

import (
	"context"
	"fmt"
	"os"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// SourceName identifies this provider in logs, metrics and load errors.
const SourceName = "files"

// Provider reads both tables from flat files. The codec is picked from each
// file's extension: .csv, .json or .yaml/.yml.
type Provider struct {
	playersPath string
	defensePath string
}

// New creates a file provider for the given paths.
func New(playersPath, defensePath string) *Provider {
	return &Provider{playersPath: playersPath, defensePath: defensePath}
}

// FetchPlayers reads and maps the roster file.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	tbl, err := readTable(ctx, p.playersPath)
	if err == nil {
		var out []players.Player
		if out, err = providers.PlayersFromTable(tbl); err == nil {
			return out, nil
		}
	}
	return nil, loadError(providers.KindPlayers, p.playersPath, err)
}

// FetchTeamDefense reads and maps the team defense file.
func (p *Provider) FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error) {
	tbl, err := readTable(ctx, p.defensePath)
	if err == nil {
		var out []teams.DefenseProfile
		if out, err = providers.DefenseFromTable(tbl); err == nil {
			return out, nil
		}
	}
	return nil, loadError(providers.KindTeamDefense, p.defensePath, err)
}

func readTable(ctx context.Context, path string) (providers.Table, error) {
	if err := ctx.Err(); err != nil {
		return providers.Table{}, err
	}
	if path == "" {
		return providers.Table{}, fmt.Errorf("no path configured")
	}
	decode, err := codecFor(path)
	if err != nil {
		return providers.Table{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return providers.Table{}, err
	}
	defer f.Close()
	return decode(f)
}

func loadError(kind, path string, err error) error {
	return &providers.DataLoadError{Source: SourceName, Kind: kind, Path: path, Err: err}
}
