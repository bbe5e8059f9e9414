package preference

import (
	"context"

	"github.com/chennai-a11y/prefsync/internal/application/preference/dto"
	"github.com/chennai-a11y/prefsync/internal/application/preference/usecases"
	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/i18n"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// ServiceDDD aggregates the settings use cases behind the HTTP handlers.
type ServiceDDD struct {
	readSettingsUC    *usecases.ReadSettingsUseCase
	writeSettingsUC   *usecases.WriteSettingsUseCase
	getTranslationsUC *usecases.GetTranslationsUseCase
	setLanguageUC     *usecases.SetLanguageUseCase
	logger            logger.Interface
}

func NewServiceDDD(
	store preference.Store,
	catalog usecases.TranslationCatalog,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		readSettingsUC:    usecases.NewReadSettingsUseCase(store, logger),
		writeSettingsUC:   usecases.NewWriteSettingsUseCase(store, catalog, logger),
		getTranslationsUC: usecases.NewGetTranslationsUseCase(catalog, logger),
		setLanguageUC:     usecases.NewSetLanguageUseCase(catalog, logger),
		logger:            logger,
	}
}

// ReadSettings returns the caller's stored document or the defaults.
func (s *ServiceDDD) ReadSettings(ctx context.Context, token string) (preference.Document, error) {
	return s.readSettingsUC.Execute(ctx, token)
}

// WriteSettings replaces the caller's document and returns a localized acknowledgment.
func (s *ServiceDDD) WriteSettings(ctx context.Context, token string, doc preference.Document) (*dto.WriteSettingsResult, error) {
	return s.writeSettingsUC.Execute(ctx, token, doc)
}

func (s *ServiceDDD) GetTranslations(ctx context.Context, code string) (i18n.Dictionary, error) {
	return s.getTranslationsUC.Execute(ctx, code)
}

func (s *ServiceDDD) SetLanguagePreference(ctx context.Context, code string) (*dto.LanguagePreferenceResult, error) {
	return s.setLanguageUC.Execute(ctx, code)
}
