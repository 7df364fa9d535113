package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/dmitrijs2005/gqlblog/internal/server/models"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/users"
	"github.com/dmitrijs2005/gqlblog/internal/server/session"
)

// ErrNoSession is returned when an operation needs a session but the
// request has none attached.
var ErrNoSession = errors.New("no session available")

// AuthService is the authentication gate: it checks credentials and reads or
// writes the authenticated user id of the current session.
type AuthService struct {
	users  users.Repository
	hasher PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users users.Repository, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Login returns the user for matching credentials and records it in sess.
// Unknown email and wrong password both yield (nil, nil).
func (s *AuthService) Login(ctx context.Context, sess *session.Session, email, password string) (*models.User, error) {
	if sess == nil {
		return nil, ErrNoSession
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// spend the same bcrypt time as a real comparison
			s.hasher.Verify(password, s.placeholderHash())
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !s.hasher.Verify(password, u.Password) {
		return nil, nil
	}

	if err := sess.SetUserID(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}
	return u, nil
}

// CurrentUser returns the session's user, or nil for an anonymous session or
// one whose user no longer exists.
func (s *AuthService) CurrentUser(ctx context.Context, sess *session.Session) (*models.User, error) {
	if sess == nil {
		return nil, nil
	}

	userID, err := sess.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading session: %w", err)
	}
	if userID == "" {
		return nil, nil
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return u, nil
}

// CurrentUserID returns the session's user id without a repository lookup.
func (s *AuthService) CurrentUserID(ctx context.Context, sess *session.Session) (string, error) {
	if sess == nil {
		return "", nil
	}
	id, err := sess.UserID(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading session: %w", err)
	}
	return id, nil
}

// Logout destroys the session. It reports whether there was one.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) (bool, error) {
	if sess == nil {
		return false, nil
	}
	ok, err := sess.Destroy(ctx)
	if err != nil {
		return false, fmt.Errorf("error destroying session: %w", err)
	}
	return ok, nil
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("placeholder-password")
	})
	return s.dummyHash
}
