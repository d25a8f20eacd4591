package language

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/internal/common"

	"go.uber.org/zap"
)

// Service exposes the language registry: administrative seeding, active and
// RTL listings, script-direction lookups, and UI translation.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// NewService constructs a language registry Service.
func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Create registers a language. The script direction is fixed here for the
// lifetime of the code; there is deliberately no update path for IsRTL.
func (s *Service) Create(ctx context.Context, code, name, nativeName string, isRTL bool) (*Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("language.Create: %w: code and name are required", common.ErrValidation)
	}

	l := &Language{
		Code:       code,
		Name:       name,
		NativeName: nativeName,
		IsRTL:      isRTL,
		IsActive:   true,
	}
	if err := s.repo.Insert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListActive returns the languages offered for user-facing selection, sorted
// by display name.
func (s *Service) ListActive(ctx context.Context) ([]Language, error) {
	return s.repo.ListActive(ctx)
}

// ListRTL returns the active right-to-left languages, sorted by display name.
func (s *Service) ListRTL(ctx context.Context) ([]Language, error) {
	return s.repo.ListActiveRTL(ctx)
}

// IsRTL reports the script direction for code. An unknown code returns
// ErrNotFound so callers can tell "unknown" apart from "known but LTR"; the
// HTTP boundary collapses both to false for contract compatibility.
func (s *Service) IsRTL(ctx context.Context, code string) (bool, error) {
	l, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return false, err
	}
	return l.IsRTL, nil
}

// Lookup returns the registry entry for code, active or not.
func (s *Service) Lookup(ctx context.Context, code string) (*Language, error) {
	return s.repo.FindByCode(ctx, code)
}

// SetActive toggles whether a language is offered for selection. History
// referencing the code is kept either way.
func (s *Service) SetActive(ctx context.Context, code string, active bool) error {
	return s.repo.SetActive(ctx, code, active)
}

// Translate resolves a UI key for the given language code. On any miss the
// key itself is returned verbatim, and storage failures degrade the same way
// after being logged: translation never fails a request.
func (s *Service) Translate(ctx context.Context, key, code string) string {
	if code == "" {
		code = DefaultCode
	}

	t, err := s.repo.FindTranslation(ctx, key, code)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error("language.Translate failed",
				zap.String("key", key),
				zap.String("code", code),
				zap.Error(err),
			)
		}
		return key
	}
	return t.Value
}
