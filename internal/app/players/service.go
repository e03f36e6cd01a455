package players

import (
	"strings"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	SetPlayers([]players.Player)
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the roster in insertion order.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// FindPlayer returns the first player whose name contains query, ignoring case.
// The query is matched literally. A blank query selects nobody.
func (s *Service) FindPlayer(query string) (players.Player, bool) {
	if strings.TrimSpace(query) == "" {
		return players.Player{}, false
	}
	needle := strings.ToLower(query)
	for _, p := range s.store.ListPlayers() {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, true
		}
	}
	return players.Player{}, false
}

// ReplacePlayers swaps the in-memory roster with a new snapshot.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(items)
}
