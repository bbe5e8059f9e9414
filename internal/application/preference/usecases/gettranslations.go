package usecases

import (
	"context"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/i18n"
	"github.com/chennai-a11y/prefsync/internal/shared/errors"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

type GetTranslationsUseCase struct {
	catalog TranslationCatalog
	logger  logger.Interface
}

func NewGetTranslationsUseCase(catalog TranslationCatalog, logger logger.Interface) *GetTranslationsUseCase {
	return &GetTranslationsUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

func (uc *GetTranslationsUseCase) Execute(ctx context.Context, code string) (i18n.Dictionary, error) {
	dict, ok := uc.catalog.Lookup(code)
	if !ok {
		uc.logger.Debugw("translations requested for unsupported language", "language", code)
		return nil, errors.NewNotFoundError("Language not supported").WithCause(preference.ErrUnsupportedLanguage)
	}
	return dict, nil
}
