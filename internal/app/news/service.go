package news

import domainnews "nba-companion-service/internal/domain/news"

// Store defines the contract for reading the news snapshot.
type Store interface {
	ListArticles() []domainnews.Article
}

// Service coordinates news reads using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Articles returns the current news snapshot.
func (s *Service) Articles() []domainnews.Article {
	return s.store.ListArticles()
}
