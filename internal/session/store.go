package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/prompt"
)

// Store keeps sessions in memory and drops them after ttl of inactivity
type Store struct {
	sessions  *cache.Cache
	ttl       time.Duration
	builder   *prompt.Builder
	clipboard Clipboard
}

// NewStore creates a session store sharing one prompt builder and clipboard
func NewStore(ttl time.Duration, builder *prompt.Builder, clipboard Clipboard) *Store {
	c := cache.New(ttl, ttl/2)
	c.OnEvicted(func(id string, v interface{}) {
		if sess, ok := v.(*Session); ok {
			sess.Close()
		}
		logger.Debug("Session expired", logger.Fields{"session_id": id})
	})
	return &Store{
		sessions:  c,
		ttl:       ttl,
		builder:   builder,
		clipboard: clipboard,
	}
}

// Create starts a new session with a random id
func (st *Store) Create() *Session {
	sess := New(uuid.New().String(), st.builder, st.clipboard)
	st.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess
}

// Get returns the session and extends its lifetime
func (st *Store) Get(id string) (*Session, bool) {
	v, found := st.sessions.Get(id)
	if !found {
		return nil, false
	}
	sess := v.(*Session)
	st.sessions.Set(id, sess, cache.DefaultExpiration)
	return sess, true
}

// GetOrCreate returns the session for id, creating a fresh one when it is
// unknown or expired
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := st.Get(id); ok {
			return sess, false
		}
	}
	return st.Create(), true
}

// Delete drops a session
func (st *Store) Delete(id string) {
	st.sessions.Delete(id)
}

// Count returns the number of live sessions
func (st *Store) Count() int {
	return st.sessions.ItemCount()
}
