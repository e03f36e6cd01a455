package store

import (
	"sync"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// MemoryStore keeps the loaded tables in memory. It is written once at startup
// and read concurrently afterwards.
type MemoryStore struct {
	mu        sync.RWMutex
	players   []players.Player
	profiles  []teams.DefenseProfile
	teamIndex map[string]int
	loaded    bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teamIndex: make(map[string]int),
	}
}

// ListPlayers returns a copy of the roster in insertion order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.players))
	copy(result, s.players)
	return result
}

// ListProfiles returns a copy of every defense row in insertion order, duplicates included.
func (s *MemoryStore) ListProfiles() []teams.DefenseProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.DefenseProfile, len(s.profiles))
	for i, p := range s.profiles {
		result[i] = cloneProfile(p)
	}
	return result
}

// TeamNames returns distinct team names in first-seen order.
func (s *MemoryStore) TeamNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.teamIndex))
	for i, p := range s.profiles {
		if s.teamIndex[p.Team] == i {
			names = append(names, p.Team)
		}
	}
	return names
}

// GetProfile retrieves the first profile loaded for team.
func (s *MemoryStore) GetProfile(team string) (teams.DefenseProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.teamIndex[team]
	if !ok {
		return teams.DefenseProfile{}, false
	}
	return cloneProfile(s.profiles[idx]), true
}

// SetPlayers replaces the roster.
func (s *MemoryStore) SetPlayers(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make([]players.Player, len(roster))
	copy(s.players, roster)
}

// SetProfiles replaces the defense table and returns the names of teams that
// appeared more than once. The first row for a team wins lookups.
func (s *MemoryStore) SetProfiles(profiles []teams.DefenseProfile) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles = make([]teams.DefenseProfile, len(profiles))
	s.teamIndex = make(map[string]int, len(profiles))
	var dups []string
	for i, p := range profiles {
		s.profiles[i] = cloneProfile(p)
		if _, seen := s.teamIndex[p.Team]; seen {
			dups = append(dups, p.Team)
			continue
		}
		s.teamIndex[p.Team] = i
	}
	return dups
}

// MarkLoaded flags the store as ready to serve.
func (s *MemoryStore) MarkLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
}

// Loaded reports whether both tables have been loaded.
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func cloneProfile(p teams.DefenseProfile) teams.DefenseProfile {
	ranks := make(map[teams.Field]int, len(p.Ranks))
	for f, r := range p.Ranks {
		ranks[f] = r
	}
	return teams.DefenseProfile{Team: p.Team, Ranks: ranks}
}
