package teams

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
)

// Stat is a prop type.
type Stat string

const (
	Points   Stat = "Points"
	Rebounds Stat = "Rebounds"
	Assists  Stat = "Assists"
)

// Stats returns the supported prop types in display order.
func Stats() []Stat {
	return []Stat{Points, Rebounds, Assists}
}

// ParseStat matches a prop type case-insensitively.
func ParseStat(raw string) (Stat, bool) {
	for _, s := range Stats() {
		if strings.EqualFold(strings.TrimSpace(raw), string(s)) {
			return s, true
		}
	}
	return "", false
}

// Column is the lowercase token used in rank column names.
func (s Stat) Column() string {
	return strings.ToLower(string(s))
}

var positionPrefixes = map[players.Position]string{
	players.PointGuard:    "pg",
	players.ShootingGuard: "sg",
	players.SmallForward:  "sf",
	players.PowerForward:  "pf",
	players.Center:        "c",
}

// ColumnFor derives the rank column name for a position and prop type.
// Positions outside the recognized set have no column.
func ColumnFor(position players.Position, propType string) (string, bool) {
	prefix, ok := positionPrefixes[position]
	if !ok {
		return "", false
	}
	return prefix + "_" + strings.ToLower(propType), true
}

// Field selects one of the fifteen rank columns.
type Field struct {
	Position players.Position
	Stat     Stat
}

// Column renders the field as its column name, e.g. "sf_points".
func (f Field) Column() string {
	col, _ := ColumnFor(f.Position, string(f.Stat))
	return col
}

func (f Field) String() string {
	return f.Column()
}

// ParseColumn is the inverse of Column. Names outside the fifteen rank columns are rejected.
func ParseColumn(column string) (Field, bool) {
	column = strings.ToLower(strings.TrimSpace(column))
	idx := strings.LastIndex(column, "_")
	if idx <= 0 {
		return Field{}, false
	}
	stat, ok := ParseStat(column[idx+1:])
	if !ok {
		return Field{}, false
	}
	for pos, prefix := range positionPrefixes {
		if prefix == column[:idx] {
			return Field{Position: pos, Stat: stat}, true
		}
	}
	return Field{}, false
}

// FieldFor is the typed form of ColumnFor.
func FieldFor(position players.Position, propType string) (Field, bool) {
	col, ok := ColumnFor(position, propType)
	if !ok {
		return Field{}, false
	}
	return ParseColumn(col)
}

// Fields returns the fifteen rank fields in radar order: positions PG..C, and
// points, rebounds, assists within each position.
func Fields() []Field {
	out := make([]Field, 0, len(positionPrefixes)*len(Stats()))
	for _, pos := range players.Positions() {
		for _, s := range Stats() {
			out = append(out, Field{Position: pos, Stat: s})
		}
	}
	return out
}

// Columns returns the fifteen rank column names in Fields order.
func Columns() []string {
	fields := Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Column()
	}
	return out
}

// DefenseProfile holds one team's defensive ranks. Ranks only contains cells that
// were present and numeric in the source.
type DefenseProfile struct {
	Team  string
	Ranks map[Field]int
}

// Rank returns the rank for f, if present.
func (p DefenseProfile) Rank(f Field) (int, bool) {
	r, ok := p.Ranks[f]
	return r, ok
}

// MarshalJSON encodes the profile flat, in column order, omitting absent ranks.
func (p DefenseProfile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	team, err := json.Marshal(p.Team)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`{"team":`)
	buf.Write(team)
	for _, f := range Fields() {
		rank, ok := p.Ranks[f]
		if !ok {
			continue
		}
		v, _ := json.Marshal(rank)
		buf.WriteString(`,"` + f.Column() + `":`)
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
