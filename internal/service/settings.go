package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/repository"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/session"
)

// MinDisplayNameLength is checked against the trimmed display name.
const MinDisplayNameLength = 2

var (
	ErrNotSignedIn         = errors.New("not signed in")
	ErrInvalidDisplayName  = errors.New("display name too short")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// SettingsUpdate carries the fields to change; nil fields are left alone.
type SettingsUpdate struct {
	FullName *string `json:"fullName"`
	Language *string `json:"language"`
	DarkMode *bool   `json:"darkMode"`
}

type SettingsService interface {
	Get(ctx context.Context, sess *session.Session) (models.Preferences, error)
	Update(ctx context.Context, sess *session.Session, upd SettingsUpdate) (models.Preferences, string, error)
}

type settingsService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewSettingsService(users repository.UserRepository, logger *zap.Logger) SettingsService {
	return &settingsService{users: users, logger: logger}
}

func (s *settingsService) Get(ctx context.Context, sess *session.Session) (models.Preferences, error) {
	user, err := sess.User(ctx)
	if err != nil {
		return models.Preferences{}, err
	}
	if user == nil {
		return models.Preferences{}, ErrNotSignedIn
	}

	dark, err := sess.DarkMode(ctx)
	if err != nil {
		return models.Preferences{}, err
	}
	lang, err := sess.Language(ctx)
	if err != nil {
		return models.Preferences{}, err
	}
	name, ok := models.LanguageName(lang)
	if !ok {
		lang = models.DefaultLanguage
		name, _ = models.LanguageName(lang)
	}

	return models.Preferences{
		FullName:     user.FullName,
		Email:        user.Email,
		Language:     lang,
		LanguageName: name,
		DarkMode:     dark,
		Languages:    models.Languages,
	}, nil
}

// Update validates everything before writing anything.
// The returned message is non-empty when the display name changed.
func (s *settingsService) Update(ctx context.Context, sess *session.Session, upd SettingsUpdate) (models.Preferences, string, error) {
	user, err := sess.User(ctx)
	if err != nil {
		return models.Preferences{}, "", err
	}
	if user == nil {
		return models.Preferences{}, "", ErrNotSignedIn
	}

	if upd.FullName != nil && utf8.RuneCountInString(strings.TrimSpace(*upd.FullName)) < MinDisplayNameLength {
		return models.Preferences{}, "", ErrInvalidDisplayName
	}
	if upd.Language != nil {
		if _, ok := models.LanguageName(*upd.Language); !ok {
			return models.Preferences{}, "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, *upd.Language)
		}
	}

	var message string
	if upd.FullName != nil {
		user.FullName = *upd.FullName
		if err := sess.SetUser(ctx, *user); err != nil {
			return models.Preferences{}, "", err
		}
		if err := s.users.UpdateFullName(ctx, user.Email, user.FullName); err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Failed to update account name", zap.String("email", user.Email), zap.Error(err))
			return models.Preferences{}, "", fmt.Errorf("failed to update account: %w", err)
		}
		message = "Username updated successfully!"
	}
	if upd.Language != nil {
		if err := sess.SetLanguage(ctx, *upd.Language); err != nil {
			return models.Preferences{}, "", err
		}
	}
	if upd.DarkMode != nil {
		if err := sess.SetDarkMode(ctx, *upd.DarkMode); err != nil {
			return models.Preferences{}, "", err
		}
	}

	s.logger.Info("Settings updated", zap.String("session_id", sess.ID()), zap.String("email", user.Email))

	prefs, err := s.Get(ctx, sess)
	return prefs, message, err
}
