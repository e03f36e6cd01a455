package providers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// Table is a decoded source table. Column names are normalized (trimmed,
// lowercased) and each row maps column name to raw cell text.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// NormalizeColumn is the header matching rule shared by every codec. A
// leading byte-order mark, as written by spreadsheet exports, is dropped.
func NormalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

// NewTable builds a table from a header row and positional records.
// Every record must have as many cells as the header.
func NewTable(header []string, records [][]string) (Table, error) {
	if len(header) == 0 {
		return Table{}, ErrMissingHeader
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = NormalizeColumn(h)
	}
	rows := make([]map[string]string, 0, len(records))
	for i, rec := range records {
		if len(rec) != len(cols) {
			return Table{}, fmt.Errorf("row %d: expected %d cells, got %d", i+1, len(cols), len(rec))
		}
		row := make(map[string]string, len(cols))
		for j, col := range cols {
			if _, dup := row[col]; dup {
				continue
			}
			row[col] = rec[j]
		}
		rows = append(rows, row)
	}
	return Table{Columns: cols, Rows: rows}, nil
}

// HasColumn reports whether the normalized column is present.
func (t Table) HasColumn(name string) bool {
	name = NormalizeColumn(name)
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t Table) require(cols ...string) error {
	if len(t.Columns) == 0 {
		return ErrMissingHeader
	}
	for _, c := range cols {
		if !t.HasColumn(c) {
			return fmt.Errorf("%w %q", ErrMissingColumn, c)
		}
	}
	return nil
}

// PlayersFromTable maps a roster table. The name and position columns are required.
func PlayersFromTable(t Table) ([]players.Player, error) {
	if err := t.require("name", "position"); err != nil {
		return nil, err
	}
	out := make([]players.Player, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, players.Player{
			Name:     strings.TrimSpace(row["name"]),
			Position: players.ParsePosition(row["position"]),
		})
	}
	return out, nil
}

// DefenseFromTable maps a team defense table. The team column is required; the
// fifteen rank columns are picked up by name and anything else is ignored.
func DefenseFromTable(t Table) ([]teams.DefenseProfile, error) {
	if err := t.require("team"); err != nil {
		return nil, err
	}
	rankCols := make(map[string]teams.Field)
	for _, col := range t.Columns {
		if f, ok := teams.ParseColumn(col); ok {
			rankCols[col] = f
		}
	}

	out := make([]teams.DefenseProfile, 0, len(t.Rows))
	for _, row := range t.Rows {
		profile := teams.DefenseProfile{
			Team:  strings.TrimSpace(row["team"]),
			Ranks: make(map[teams.Field]int, len(rankCols)),
		}
		for col, f := range rankCols {
			if rank, ok := parseRank(row[col]); ok {
				profile.Ranks[f] = rank
			}
		}
		out = append(out, profile)
	}
	return out, nil
}

// parseRank accepts integer cells, including integral floats such as "3.0".
// Blank, non-numeric and fractional cells are absent, as are floats beyond
// the int32 range.
func parseRank(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
