package handlers

import (
	"context"

	"github.com/chennai-a11y/prefsync/internal/application/preference/dto"
	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/i18n"
)

// Service interface for PreferenceHandler - enables unit testing with mocks.

type preferenceService interface {
	ReadSettings(ctx context.Context, token string) (preference.Document, error)
	WriteSettings(ctx context.Context, token string, doc preference.Document) (*dto.WriteSettingsResult, error)
	GetTranslations(ctx context.Context, code string) (i18n.Dictionary, error)
	SetLanguagePreference(ctx context.Context, code string) (*dto.LanguagePreferenceResult, error)
}
