package teams

import domainteams "nba-companion-service/internal/domain/teams"

// Store defines the contract for reading the teams snapshot.
type Store interface {
	ListTeams() []domainteams.Team
	GetTeam(id string) (domainteams.Team, bool)
}

// Service coordinates team reads using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current team directory.
func (s *Service) Teams() []domainteams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (domainteams.Team, bool) {
	return s.store.GetTeam(id)
}
