package usecases

import (
	"context"

	"github.com/chennai-a11y/prefsync/internal/application/preference/dto"
	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/errors"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// SetLanguageUseCase accepts a language choice. Persisting it as a cookie
// is left to the transport.
type SetLanguageUseCase struct {
	catalog TranslationCatalog
	logger  logger.Interface
}

func NewSetLanguageUseCase(catalog TranslationCatalog, logger logger.Interface) *SetLanguageUseCase {
	return &SetLanguageUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

func (uc *SetLanguageUseCase) Execute(ctx context.Context, code string) (*dto.LanguagePreferenceResult, error) {
	if code == "" || !uc.catalog.Supports(code) {
		uc.logger.Debugw("rejected unsupported language", "language", code)
		return nil, errors.NewBadRequestError("Unsupported language").WithCause(preference.ErrUnsupportedLanguage)
	}

	return &dto.LanguagePreferenceResult{
		Success:  true,
		Language: code,
	}, nil
}
