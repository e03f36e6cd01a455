package picks

import (
	"github.com/preston-bernstein/nba-props-service/internal/domain/picks"
	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
)

// PlayerNotFoundMessage is shown when a name query matches nobody.
const PlayerNotFoundMessage = "Player not found!"

// PlayerFinder resolves a name query to a player.
type PlayerFinder interface {
	FindPlayer(query string) (players.Player, bool)
}

// TeamFinder resolves an exact team name to its defense profile.
type TeamFinder interface {
	FindTeam(name string) (teams.DefenseProfile, bool)
}

// Result is the outcome of one recommendation. Column is set whenever the
// position maps to a column; Rank only when HasRank.
type Result struct {
	Label   picks.Label
	Column  string
	Rank    int
	HasRank bool
}

// Pick is the end-to-end outcome for a player query.
type Pick struct {
	Query   string
	Player  players.Player
	Found   bool
	Message string
	Team    string
	Prop    string
	Result  Result
}

// Service runs the recommendation engine over the loaded tables.
type Service struct {
	players PlayerFinder
	teams   TeamFinder
	metrics *metrics.Recorder
}

// NewService constructs a Service. recorder may be nil.
func NewService(playerFinder PlayerFinder, teamFinder TeamFinder, recorder *metrics.Recorder) *Service {
	return &Service{players: playerFinder, teams: teamFinder, metrics: recorder}
}

// Recommend classifies the team's rank against position for propType.
// An empty position means no player is selected; every other gap in the data
// yields InvalidSelection.
func (s *Service) Recommend(position players.Position, team string, propType string) Result {
	res := s.recommend(position, team, propType)
	s.metrics.RecordRecommendation(res.Label.String())
	return res
}

func (s *Service) recommend(position players.Position, team string, propType string) Result {
	if position.IsZero() {
		return Result{Label: picks.NoPlayerSelected}
	}
	profile, ok := s.teams.FindTeam(team)
	if !ok {
		return Result{Label: picks.InvalidSelection}
	}
	column, ok := teams.ColumnFor(position, propType)
	if !ok {
		return Result{Label: picks.InvalidSelection}
	}
	res := Result{Label: picks.InvalidSelection, Column: column}
	field, ok := teams.ParseColumn(column)
	if !ok {
		return res
	}
	rank, ok := profile.Rank(field)
	if !ok {
		return res
	}
	res.Rank = rank
	res.HasRank = true
	res.Label, _ = picks.Classify(rank)
	return res
}

// Pick resolves query to a player and recommends against team for propType.
// An unmatched query is reported with PlayerNotFoundMessage and treated as no player.
func (s *Service) Pick(query, team, propType string) Pick {
	out := Pick{Query: query, Team: team, Prop: propType}
	player, ok := s.players.FindPlayer(query)
	if ok {
		out.Player = player
		out.Found = true
	} else if query != "" {
		out.Message = PlayerNotFoundMessage
	}
	out.Result = s.Recommend(out.Player.Position, team, propType)
	return out
}
