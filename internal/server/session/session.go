package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/common"
)

// Session is the request-scoped view of one session. Data is loaded from
// the store on first use; a new id is allocated when the user changes. It is
// safe for concurrent use by resolvers of the same request.
type Session struct {
	store Store
	ttl   time.Duration

	mu        sync.Mutex
	id        string
	data      Data
	loaded    bool
	issued    bool
	destroyed bool
}

// New returns a session for id, which is empty when the request carried no
// valid cookie.
func New(store Store, ttl time.Duration, id string) *Session {
	return &Session{store: store, ttl: ttl, id: id}
}

// ID returns the current session id, empty until one exists.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// load must be called with the lock held.
func (s *Session) load(ctx context.Context) error {
	if s.loaded || s.id == "" {
		return nil
	}
	data, err := s.store.Get(ctx, s.id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.data = Data{}
	case err != nil:
		return err
	default:
		s.data = *data
	}
	s.loaded = true
	return nil
}

// UserID returns the authenticated user id, or "" for an anonymous session.
func (s *Session) UserID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return "", err
	}
	return s.data.UserID, nil
}

// SetUserID records userID as the authenticated user and persists the
// session. A fresh id is issued whenever the user changes, and the record
// under the previous id is removed, so an id handed out before login never
// becomes authenticated.
func (s *Session) SetUserID(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return err
	}

	id, previous := s.id, ""
	if id == "" || s.data.UserID != userID {
		fresh, err := common.NewSessionID()
		if err != nil {
			return fmt.Errorf("error generating session id: %w", err)
		}
		id, previous = fresh, s.id
	}

	data := s.data
	data.UserID = userID
	if err := s.store.Set(ctx, id, data, s.ttl); err != nil {
		return err
	}
	if previous != "" {
		if err := s.store.Destroy(ctx, previous); err != nil {
			return err
		}
	}

	s.id = id
	s.data = data
	s.loaded = true
	s.issued = true
	s.destroyed = false
	return nil
}

// Destroy removes the session from the store. It reports false when there
// was no session to destroy.
func (s *Session) Destroy(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == "" {
		return false, nil
	}
	if err := s.store.Destroy(ctx, s.id); err != nil {
		return false, err
	}

	s.id = ""
	s.data = Data{}
	s.loaded = true
	s.issued = false
	s.destroyed = true
	return true, nil
}

// Issued reports whether the cookie must be (re)sent with the response.
func (s *Session) Issued() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}

// Destroyed reports whether the cookie must be cleared.
func (s *Session) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// TTL is the lifetime applied to stored data and the cookie.
func (s *Session) TTL() time.Duration {
	return s.ttl
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
