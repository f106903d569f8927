package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studio-console-backend/models"
	"studio-console-backend/storage"
)

// SessionKey is the fixed storage key the session record lives under.
const SessionKey = "currentUser"

// AuthStore holds the single active console session. Login overwrites any
// prior session, in memory and in storage; there is no concurrent-session
// support.
type AuthStore struct {
	mu      sync.RWMutex
	store   storage.Store
	gateway *ServiceDataStore
	log     zerolog.Logger

	current       *models.User
	authenticated bool
}

// NewAuthStore wires the session storage and the external gateway used by
// identifier-based logins.
func NewAuthStore(store storage.Store, gateway *ServiceDataStore, log zerolog.Logger) *AuthStore {
	return &AuthStore{store: store, gateway: gateway, log: log}
}

// LoginProfile carries the caller-supplied identity fields of a login; role
// and registration time are fixed by the login operation itself.
type LoginProfile struct {
	ID         string
	Name       string
	Email      string
	LineUserID string
	Avatar     string
	Phone      string
}

// LoginAsOwner starts an owner session for the given profile.
func (s *AuthStore) LoginAsOwner(ctx context.Context, p LoginProfile) (*models.User, error) {
	return s.login(ctx, p, models.RoleOwner)
}

// LoginAsCustomer starts a customer session for the given profile.
func (s *AuthStore) LoginAsCustomer(ctx context.Context, p LoginProfile) (*models.User, error) {
	return s.login(ctx, p, models.RoleCustomer)
}

func (s *AuthStore) login(ctx context.Context, p LoginProfile, role models.Role) (*models.User, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	user := &models.User{
		ID:           id,
		Name:         p.Name,
		Email:        p.Email,
		Role:         role,
		LineUserID:   p.LineUserID,
		Avatar:       p.Avatar,
		Phone:        p.Phone,
		RegisteredAt: time.Now(),
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.authenticated = true
	s.mu.Unlock()

	s.log.Info().Str("userId", user.ID).Str("role", string(role)).Msg("session started")
	out := *user
	return &out, nil
}

// LoginWithID resolves a profile for the given external identifier through
// the gateway and starts a customer session from it. Unknown identifiers
// propagate the gateway's error; no session state changes on failure.
func (s *AuthStore) LoginWithID(ctx context.Context, externalID string) (*models.User, error) {
	profile, err := s.gateway.LoadDataByID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("login with id: %w", err)
	}
	return s.LoginAsCustomer(ctx, LoginProfile{
		ID:         profile.UUID,
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		LineUserID: externalID,
	})
}

// Logout clears the session and removes the persisted record. Storage
// failures are logged, not surfaced; the in-memory state is cleared either
// way.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.authenticated = false
	s.mu.Unlock()

	if err := s.store.Delete(ctx, SessionKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to remove persisted session")
	}
}

// RestoreSession reloads the persisted session record, if any. Corrupt or
// invalid records yield a clean logged-out state; the caller never sees an
// error.
func (s *AuthStore) RestoreSession(ctx context.Context) {
	raw, ok, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read persisted session")
		return
	}
	if !ok {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" || !user.Role.Valid() {
		s.log.Warn().Err(err).Msg("persisted session invalid, logging out")
		s.Logout(ctx)
		return
	}

	s.mu.Lock()
	s.current = &user
	s.authenticated = true
	s.mu.Unlock()
}

// UserUpdate is a partial session-user mutation; nil fields are left alone.
type UserUpdate struct {
	Name   *string
	Email  *string
	Avatar *string
	Phone  *string
}

// UpdateUser merges a partial update into the logged-in user, in memory and
// in storage. A no-op when nobody is logged in.
func (s *AuthStore) UpdateUser(ctx context.Context, updates UserUpdate) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	if updates.Name != nil {
		s.current.Name = *updates.Name
	}
	if updates.Email != nil {
		s.current.Email = *updates.Email
	}
	if updates.Avatar != nil {
		s.current.Avatar = *updates.Avatar
	}
	if updates.Phone != nil {
		s.current.Phone = *updates.Phone
	}
	user := *s.current
	s.mu.Unlock()

	if err := s.persist(ctx, &user); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session update")
	}
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// IsAuthenticated reports whether a session is active.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Role returns the active session's role, empty when logged out.
func (s *AuthStore) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Role
}

func (s *AuthStore) IsOwner() bool {
	return s.Role() == models.RoleOwner
}

func (s *AuthStore) IsCustomer() bool {
	return s.Role() == models.RoleCustomer
}

func (s *AuthStore) persist(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	if err := s.store.Set(ctx, SessionKey, string(raw)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
