// ABOUTME: Content store holds the authoritative article list for the rendering layer
// ABOUTME: Seeded with a fallback set and replaced wholesale by at most one refresh

package store

import (
	"context"
	"sync"

	"biblicalman-api/core/domain"
	coreerrors "biblicalman-api/core/errors"
	"biblicalman-api/core/interfaces"
)

// Refresher produces one fetch outcome
type Refresher interface {
	Refresh(ctx context.Context) domain.FetchOutcome
}

// Listener is notified with the new list after it replaces the previous one
type Listener func(articles []domain.Article)

// Store is the in-memory content store. The zero value is not usable; use NewStore.
type Store struct {
	mu        sync.RWMutex
	articles  []domain.Article
	version   int
	listeners map[int]Listener
	nextID    int

	source  Refresher
	logger  interfaces.Logger
	once    sync.Once
	outcome domain.FetchOutcome
	done    chan struct{}
}

// NewStore creates a store holding fallback until a refresh succeeds
func NewStore(fallback []domain.Article, source Refresher, logger interfaces.Logger) *Store {
	return &Store{
		articles:  domain.CloneArticles(fallback),
		listeners: make(map[int]Listener),
		source:    source,
		logger:    interfaces.LoggerOrNop(logger),
		done:      make(chan struct{}),
	}
}

// Articles returns a copy of the current list
func (s *Store) Articles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneArticles(s.articles)
}

// Get returns the article with the given id
func (s *Store) Get(id string) (domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Article{}, &coreerrors.NotFoundError{Resource: "article", ID: id}
}

// Version is 0 while the fallback is held and 1 after it was replaced
func (s *Store) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Refreshed reports whether the fallback set has been replaced
func (s *Store) Refreshed() bool {
	return s.Version() > 0
}

// Subscribe registers fn for replacement notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Refresh runs the refresher at most once for the lifetime of the store.
// Later calls return the first outcome without refetching. Only a success
// outcome replaces the list; empty and failure outcomes keep it unchanged.
func (s *Store) Refresh(ctx context.Context) domain.FetchOutcome {
	s.once.Do(func() {
		defer close(s.done)

		if s.source == nil {
			s.outcome = domain.Succeeded(nil)
			return
		}

		s.outcome = s.source.Refresh(ctx)
		if s.outcome.Kind != domain.OutcomeSuccess {
			s.logger.Warn("Keeping fallback articles", map[string]interface{}{
				"outcome": s.outcome.Kind.String(),
			})
			return
		}

		s.replace(s.outcome.Articles)
	})
	return s.outcome
}

// Start runs Refresh in the background. Use Done to wait for it.
func (s *Store) Start(ctx context.Context) {
	go s.Refresh(ctx)
}

// Done is closed once the refresh attempt has finished
func (s *Store) Done() <-chan struct{} {
	return s.done
}

func (s *Store) replace(articles []domain.Article) {
	s.mu.Lock()
	s.articles = domain.CloneArticles(articles)
	s.version++
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.logger.Info("Article list replaced", map[string]interface{}{
		"articles": len(articles),
	})

	for _, l := range listeners {
		l(domain.CloneArticles(articles))
	}
}
