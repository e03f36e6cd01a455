package teams

import (
	"gonum.org/v1/gonum/stat"

	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// Radar display range. Ranks run from 1 (stingiest defense) to 30.
const (
	RadarMin = 1
	RadarMax = 30
)

// Store defines the contract for persisting and retrieving defense profiles.
type Store interface {
	ListProfiles() []teams.DefenseProfile
	TeamNames() []string
	GetProfile(team string) (teams.DefenseProfile, bool)
	SetProfiles([]teams.DefenseProfile) []string
}

// DefenseTable is the read-only view of the whole defense table.
type DefenseTable struct {
	Columns []string               `json:"columns"`
	Rows    []teams.DefenseProfile `json:"rows"`
}

// RadarPoint is one radar axis. Rank is nil when the source cell was absent.
type RadarPoint struct {
	Column   string `json:"column"`
	Position string `json:"position"`
	Stat     string `json:"stat"`
	Rank     *int   `json:"rank,omitempty"`
}

// StatMean is the mean rank of one prop type across the positions that have a rank.
type StatMean struct {
	Stat  string  `json:"stat"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Radar is a team's fifteen defensive ranks in teams.Fields order.
type Radar struct {
	Team   string       `json:"team"`
	Min    int          `json:"min"`
	Max    int          `json:"max"`
	Points []RadarPoint `json:"points"`
	Means  []StatMean   `json:"means"`
}

// Service coordinates defense table operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// FindTeam looks a team up by exact, case-sensitive name.
func (s *Service) FindTeam(name string) (teams.DefenseProfile, bool) {
	return s.store.GetProfile(name)
}

// ListTeams returns distinct team names in first-seen order.
func (s *Service) ListTeams() []string {
	return s.store.TeamNames()
}

// Table returns every defense row with the column list used to render it.
func (s *Service) Table() DefenseTable {
	return DefenseTable{
		Columns: append([]string{"team"}, teams.Columns()...),
		Rows:    s.store.ListProfiles(),
	}
}

// Radar builds the radar view for one team.
func (s *Service) Radar(name string) (Radar, bool) {
	profile, ok := s.store.GetProfile(name)
	if !ok {
		return Radar{}, false
	}
	return BuildRadar(profile), true
}

// BuildRadar lays a profile out on the fifteen radar axes.
func BuildRadar(profile teams.DefenseProfile) Radar {
	fields := teams.Fields()
	points := make([]RadarPoint, 0, len(fields))
	byStat := make(map[teams.Stat][]float64)
	for _, f := range fields {
		pt := RadarPoint{Column: f.Column(), Position: f.Position.String(), Stat: string(f.Stat)}
		if rank, ok := profile.Rank(f); ok {
			r := rank
			pt.Rank = &r
			byStat[f.Stat] = append(byStat[f.Stat], float64(rank))
		}
		points = append(points, pt)
	}

	var means []StatMean
	for _, st := range teams.Stats() {
		xs := byStat[st]
		if len(xs) == 0 {
			continue
		}
		means = append(means, StatMean{Stat: string(st), Mean: stat.Mean(xs, nil), Count: len(xs)})
	}

	return Radar{
		Team:   profile.Team,
		Min:    RadarMin,
		Max:    RadarMax,
		Points: points,
		Means:  means,
	}
}

// ReplaceProfiles swaps the defense table and reports duplicated team names.
func (s *Service) ReplaceProfiles(items []teams.DefenseProfile) []string {
	return s.store.SetProfiles(items)
}
