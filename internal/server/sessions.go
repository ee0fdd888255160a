package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jonathan/tax-return-agent/internal/pipeline"
)

const (
	// sessionTTL is how long an upload session survives without activity.
	sessionTTL = 30 * time.Minute
	// sessionSweepInterval is how often expired sessions are purged.
	sessionSweepInterval = 5 * time.Minute
)

// Session accumulates uploaded documents until the client asks for a
// calculation. Sessions expire after sessionTTL; an expired session simply
// means the client re-uploads. Documents must only be touched through the
// SessionStore, which serializes access; handlers run on separate goroutines
// and a client may upload to the same session in parallel.
type Session struct {
	ID        string              `json:"id"`
	Documents []pipeline.Document `json:"-"`
	CreatedAt time.Time           `json:"created_at"`
}

// SessionStore holds in-flight upload sessions in memory. Documents are never
// written to disk; when a session expires its contents are gone. go-cache
// guards only the session map, so the store carries its own mutex for the
// document slices inside sessions.
type SessionStore struct {
	cache *gocache.Cache
	mu    sync.Mutex
}

// NewSessionStore creates a session store with expiry sweeping.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		cache: gocache.New(sessionTTL, sessionSweepInterval),
	}
}

// Create starts a new empty session and returns it.
func (s *SessionStore) Create() *Session {
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.cache.Set(session.ID, session, gocache.DefaultExpiration)
	return session
}

// Get returns the session for an ID, or false if it never existed or expired.
func (s *SessionStore) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// AddDocuments appends documents to a session and refreshes its expiry.
// Safe for concurrent use.
func (s *SessionStore) AddDocuments(session *Session, docs ...pipeline.Document) {
	s.mu.Lock()
	session.Documents = append(session.Documents, docs...)
	s.mu.Unlock()
	s.cache.Set(session.ID, session, gocache.DefaultExpiration)
}

// Documents returns a point-in-time copy of a session's documents, safe to
// read while other requests keep uploading.
func (s *SessionStore) Documents(session *Session) []pipeline.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pipeline.Document(nil), session.Documents...)
}

// Delete removes a session and its documents.
func (s *SessionStore) Delete(id string) {
	s.cache.Delete(id)
}
