package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/internal/common"
	"backend/internal/language"
	"backend/internal/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the user↔language binding. It is the single write path into
// the collaborator-owned users table.
type Service struct {
	db        *gorm.DB
	languages *language.Service
	log       *zap.Logger
}

// NewService constructs the locale binding service.
func NewService(db *gorm.DB, languages *language.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, languages: languages, log: log}
}

// SetLanguage updates a user's preferred language with a single-row UPDATE.
// The code is not validated against the registry (advisory reference), but a
// user id that matches no row is ErrNotFound rather than a silent no-op.
func (s *Service) SetLanguage(ctx context.Context, userID uint, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("user.SetLanguage: %w: language code is required", common.ErrValidation)
	}

	res := s.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", userID).
		Update("language_code", code)
	if res.Error != nil {
		metrics.LocaleUpdatesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("user.SetLanguage: %w: %v", common.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		metrics.LocaleUpdatesTotal.WithLabelValues("missing").Inc()
		return fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
	}

	metrics.LocaleUpdatesTotal.WithLabelValues("ok").Inc()
	return nil
}

// PreferredLanguage resolves the user's binding to a registry entry. A
// missing or dangling code degrades to the default language; only a missing
// user or a storage failure is an error.
func (s *Service) PreferredLanguage(ctx context.Context, userID uint) (*language.Language, error) {
	var u User
	if err := s.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("user lookup: %w: %v", common.ErrStorage, err)
	}

	code := u.LanguageCode
	if code == "" {
		code = language.DefaultCode
	}

	l, err := s.languages.Lookup(ctx, code)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// Dangling binding: the code was removed from the registry after the
	// user picked it. Fall back to the default language.
	s.log.Warn("dangling language binding",
		zap.Uint("user_id", userID),
		zap.String("code", code),
	)
	return s.languages.Lookup(ctx, language.DefaultCode)
}
