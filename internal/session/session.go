// Package session keeps the per-visitor key-value state that the site stores
// between requests: the signed-in user record, its token and the display
// preferences. All reads and writes go through Session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

// Keys stored for a session.
const (
	KeyUser     = "user"
	KeyToken    = "token"
	KeyDarkMode = "darkMode"
	KeyLanguage = "language"
)

// Store persists session values. Writes are last-write-wins.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

// Session is the accessor for one visitor's values.
type Session struct {
	id    string
	store Store
}

// New returns the accessor for an existing session id.
func New(id string, store Store) *Session {
	return &Session{id: id, store: store}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like a session id issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.id, key)
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.id, key, value)
}

func (s *Session) Delete(ctx context.Context, keys ...string) error {
	return s.store.Delete(ctx, s.id, keys...)
}

// User returns the stored user record, or nil when nobody is signed in.
func (s *Session) User(ctx context.Context) (*models.UserRecord, error) {
	raw, ok, err := s.Get(ctx, KeyUser)
	if err != nil || !ok {
		return nil, err
	}
	var user models.UserRecord
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	return &user, nil
}

func (s *Session) SetUser(ctx context.Context, user models.UserRecord) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.Set(ctx, KeyUser, string(data))
}

// Token returns the stored auth token or "".
func (s *Session) Token(ctx context.Context) (string, error) {
	token, _, err := s.Get(ctx, KeyToken)
	return token, err
}

func (s *Session) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, KeyToken, token)
}

// SignIn stores the user record together with its token.
func (s *Session) SignIn(ctx context.Context, user models.UserRecord, token string) error {
	if err := s.SetUser(ctx, user); err != nil {
		return err
	}
	return s.SetToken(ctx, token)
}

// SignOut clears the user record and token. Preferences survive.
func (s *Session) SignOut(ctx context.Context) error {
	return s.Delete(ctx, KeyUser, KeyToken)
}

// DarkMode is false unless "true" was stored.
func (s *Session) DarkMode(ctx context.Context) (bool, error) {
	raw, _, err := s.Get(ctx, KeyDarkMode)
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}

func (s *Session) SetDarkMode(ctx context.Context, on bool) error {
	return s.Set(ctx, KeyDarkMode, strconv.FormatBool(on))
}

// Language returns the stored language code or models.DefaultLanguage.
func (s *Session) Language(ctx context.Context) (string, error) {
	raw, ok, err := s.Get(ctx, KeyLanguage)
	if err != nil {
		return "", err
	}
	if !ok || raw == "" {
		return models.DefaultLanguage, nil
	}
	return raw, nil
}

func (s *Session) SetLanguage(ctx context.Context, code string) error {
	return s.Set(ctx, KeyLanguage, code)
}
