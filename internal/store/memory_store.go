package store

import (
	"sort"
	"sync"

	domaingames "nba-companion-service/internal/domain/games"
	"nba-companion-service/internal/domain/news"
	"nba-companion-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of the latest refresh in memory.
// Writes are tagged with the generation obtained at the start of a refresh;
// a commit from a superseded refresh is discarded so a slow response can
// never overwrite fresher data.
type MemoryStore struct {
	mu       sync.RWMutex
	gen      uint64
	games    map[string]domaingames.Game
	teams    map[string]teams.Team
	articles []news.Article
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domaingames.Game),
		teams: make(map[string]teams.Team),
	}
}

// BeginRefresh allocates a new generation. Only commits carrying the most
// recently allocated generation are applied.
func (s *MemoryStore) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	return s.gen
}

// Generation returns the most recently allocated generation.
func (s *MemoryStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// SetGames replaces the games snapshot. It reports whether the commit was
// applied; a stale generation is discarded.
func (s *MemoryStore) SetGames(gen uint64, games []domaingames.Game) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.games = make(map[string]domaingames.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
	return true
}

// SetTeams replaces the teams snapshot under the same generation rules.
func (s *MemoryStore) SetTeams(gen uint64, list []teams.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.teams = make(map[string]teams.Team, len(list))
	for _, t := range list {
		s.teams[t.ID] = t
	}
	return true
}

// SetArticles replaces the news snapshot under the same generation rules.
func (s *MemoryStore) SetArticles(gen uint64, articles []news.Article) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.articles = append([]news.Article(nil), articles...)
	return true
}

// ListGames returns a copy of the current games, ordered by start time then ID.
func (s *MemoryStore) ListGames() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// ListTeams returns a copy of the current teams, ordered by ID.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// ListArticles returns a copy of the current news snapshot.
func (s *MemoryStore) ListArticles() []news.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]news.Article(nil), s.articles...)
}
