// Package store keeps the live session registry.
// Each chat connection owns one session; sessions are isolated from each
// other and expire after a period of inactivity.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
	"github.com/0xcro3dile/docuchat-go/internal/domain/ports"
)

// SessionStore tracks live sessions with TTL eviction. Whenever a session
// leaves the store - explicit end or TTL expiry - its history is persisted
// through the transcript store.
type SessionStore struct {
	sessions    *cache.Cache
	transcripts ports.TranscriptStore
	log         *zap.Logger
}

// NewSessionStore creates a session registry. ttl bounds how long an idle
// session survives before its transcript is flushed and the session dropped.
func NewSessionStore(ttl time.Duration, transcripts ports.TranscriptStore, log *zap.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &SessionStore{
		sessions:    cache.New(ttl, ttl/2),
		transcripts: transcripts,
		log:         log,
	}
	s.sessions.OnEvicted(s.persist)
	return s
}

// Create registers a fresh session and returns it.
func (s *SessionStore) Create() *entities.Session {
	sess := entities.NewSession(uuid.NewString())
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	s.log.Info("session created", zap.String("session_id", sess.ID))
	return sess
}

// Get returns the session for the given ID, or nil when unknown.
func (s *SessionStore) Get(id string) *entities.Session {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return v.(*entities.Session)
}

// Touch extends the session's TTL after activity.
func (s *SessionStore) Touch(sess *entities.Session) {
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
}

// End removes the session, flushing its transcript via eviction.
func (s *SessionStore) End(id string) {
	s.sessions.Delete(id)
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	return s.sessions.ItemCount()
}

// persist is the eviction hook: serialize the history, then drop the session.
func (s *SessionStore) persist(id string, v interface{}) {
	sess, ok := v.(*entities.Session)
	if !ok {
		return
	}
	if err := s.transcripts.Save(sess.History); err != nil {
		s.log.Error("transcript save failed",
			zap.String("session_id", id),
			zap.Error(err))
		return
	}
	s.log.Info("session ended",
		zap.String("session_id", id),
		zap.Int("history_len", len(sess.History)))
}
