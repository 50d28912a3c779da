package credentials

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/repository"
)

// Keys persisted in local storage.
const (
	KeyUsers       = "users"
	KeyIsLoggedIn  = "isLoggedIn"
	KeyCurrentUser = "currentUser"

	loggedInValue = "true"
)

// Store keeps the registered users and the current session marker on top of
// a key-value store. Writes touching several keys are not atomic.
type Store struct {
	kv     repository.KeyValueStore
	logger *zap.Logger
}

var (
	_ repository.UserRepository    = (*Store)(nil)
	_ repository.SessionRepository = (*Store)(nil)
)

func NewStore(kv repository.KeyValueStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// ListUsers never fails: a missing, unreadable or malformed list is empty.
func (s *Store) ListUsers(ctx context.Context) []domain.User {
	raw, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Warn("failed to read users", zap.Error(err))
		}
		return []domain.User{}
	}

	var users []domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.logger.Warn("stored users are malformed, treating as empty", zap.Error(err))
		return []domain.User{}
	}
	if users == nil {
		return []domain.User{}
	}
	return users
}

func (s *Store) AddUser(ctx context.Context, user domain.User) error {
	users := s.ListUsers(ctx)
	for _, existing := range users {
		if existing.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	payload, err := json.Marshal(append(users, user))
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyUsers, string(payload))
}

func (s *Store) SetSession(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyIsLoggedIn, loggedInValue); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyCurrentUser, string(payload)); err != nil {
		// drop the flag so no half-written session is left behind
		if delErr := s.kv.Delete(ctx, KeyIsLoggedIn); delErr != nil {
			s.logger.Warn("failed to roll back session flag", zap.Error(delErr))
		}
		return err
	}
	return nil
}

// ClearSession wipes the whole store, registered users included.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.kv.Clear(ctx)
}

// GetSession returns the current user only when both the active flag and a
// parseable user record are present.
func (s *Store) GetSession(ctx context.Context) (*domain.User, bool) {
	flag, err := s.kv.Get(ctx, KeyIsLoggedIn)
	if err != nil || flag != loggedInValue {
		return nil, false
	}

	raw, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, false
	}

	var user *domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user == nil {
		s.logger.Warn("current user record is malformed", zap.Error(err))
		return nil, false
	}
	return user, true
}
