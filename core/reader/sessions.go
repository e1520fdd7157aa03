// ABOUTME: Session registry keeps one reader view per client
// ABOUTME: Backed by go-cache with a sliding expiry so idle sessions are dropped

package reader

import (
	"time"

	coreerrors "biblicalman-api/core/errors"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultSessionTTL is used when no TTL is configured
const DefaultSessionTTL = 30 * time.Minute

// Sessions maps session ids to views
type Sessions struct {
	views   *gocache.Cache
	ttl     time.Duration
	newView func() *View
}

// NewSessions creates a registry whose views are built by newView
func NewSessions(ttl time.Duration, newView func() *View) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	views := gocache.New(ttl, ttl/2)
	// Closing an evicted view drops any insight still in flight for it
	views.OnEvicted(func(_ string, v interface{}) {
		if view, ok := v.(*View); ok {
			view.Close()
		}
	})

	return &Sessions{
		views:   views,
		ttl:     ttl,
		newView: newView,
	}
}

// Create starts a new session with a closed view
func (s *Sessions) Create() (string, *View) {
	id := uuid.NewString()
	view := s.newView()
	s.views.Set(id, view, s.ttl)
	return id, view
}

// Get returns the session's view and extends its lifetime
func (s *Sessions) Get(id string) (*View, error) {
	v, ok := s.views.Get(id)
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "reader session", ID: id}
	}
	view := v.(*View)
	s.views.Set(id, view, s.ttl)
	return view, nil
}

// Delete ends a session
func (s *Sessions) Delete(id string) {
	s.views.Delete(id)
}

// Count returns the number of live sessions
func (s *Sessions) Count() int {
	return s.views.ItemCount()
}
