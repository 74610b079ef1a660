package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"skinlab/internal/app/analysis"
)

// Factory создает сессию анализа с заданным id
type Factory func(id string) *analysis.Session

type entry struct {
	session  *analysis.Session
	lastSeen time.Time
}

// Store хранит сессии страницы в памяти процесса. Сессия живет, пока к ней обращаются.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	factory  Factory
	now      func() time.Time
}

func NewStore(ttl time.Duration, factory Factory) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
	}
}

// Create создает новую сессию
func (s *Store) Create() *analysis.Session {
	id := uuid.New().String()
	sess := s.factory(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{session: sess, lastSeen: s.now()}
	return sess
}

// Get возвращает сессию и продлевает ей жизнь
func (s *Store) Get(id string) (*analysis.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(e) {
		delete(s.sessions, id)
		e.session.Reset()
		return nil, false
	}
	e.lastSeen = s.now()
	return e.session, true
}

// Delete удаляет сессию и отменяет ее таймер
func (s *Store) Delete(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		e.session.Reset()
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}

// Evict удаляет просроченные сессии, возвращает сколько удалено
func (s *Store) Evict() int {
	s.mu.Lock()
	var stale []*analysis.Session
	for id, e := range s.sessions {
		if s.expired(e) {
			stale = append(stale, e.session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Reset()
	}
	return len(stale)
}

// Run периодически чистит просроченные сессии до отмены ctx
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping session janitor")
			return ctx.Err()
		case <-ticker.C:
			if n := s.Evict(); n > 0 {
				log.WithField("evicted", n).Debug("expired sessions removed")
			}
		}
	}
}
