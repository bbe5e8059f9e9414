package usecases

import (
	"context"
	"fmt"

	"github.com/chennai-a11y/prefsync/internal/application/preference/dto"
	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/i18n"
	"github.com/chennai-a11y/prefsync/internal/shared/errors"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
	"github.com/chennai-a11y/prefsync/internal/shared/utils"
)

// InvalidPayloadMessage is returned for bodies that are not a JSON object or
// array.
const InvalidPayloadMessage = "Invalid settings payload"

// WriteSettingsUseCase stores a settings document and builds the localized
// acknowledgment.
type WriteSettingsUseCase struct {
	store   preference.Store
	catalog TranslationCatalog
	logger  logger.Interface
}

func NewWriteSettingsUseCase(
	store preference.Store,
	catalog TranslationCatalog,
	logger logger.Interface,
) *WriteSettingsUseCase {
	return &WriteSettingsUseCase{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute replaces the identity's document. Incomplete or out-of-range
// documents are stored unchanged and reported in the log.
func (uc *WriteSettingsUseCase) Execute(
	ctx context.Context,
	token string,
	doc preference.Document,
) (*dto.WriteSettingsResult, error) {
	if token == "" {
		return nil, unauthenticated()
	}

	if err := doc.Validate(); err != nil {
		return nil, errors.NewBadRequestError(InvalidPayloadMessage).WithCause(preference.ErrInvalidDocument)
	}

	if err := uc.store.Put(ctx, token, doc); err != nil {
		uc.logger.Errorw("failed to write settings",
			"identity", token,
			"error", err,
		)
		return nil, fmt.Errorf("failed to write settings: %w", err)
	}

	if report := Conformance(doc); !report.Conforms() {
		uc.logger.Warnw("accepted non-conforming settings document",
			"identity", token,
			"problems", report.Problems,
		)
	}

	lang := ackLanguage(uc.catalog, doc.Language())

	uc.logger.Infow("settings saved",
		"identity", token,
		"language", lang,
	)

	return &dto.WriteSettingsResult{
		Success:  true,
		Message:  uc.catalog.Message(lang, i18n.KeySettingsSaved),
		Language: lang,
	}, nil
}

// Conformance checks doc against the complete record shape.
func Conformance(doc preference.Document) dto.ConformanceReport {
	settings, problems := doc.Decode()
	problems = append(problems, utils.Violations(settings)...)
	return dto.ConformanceReport{Problems: problems}
}

// ackLanguage falls back to the base language for empty or unknown codes.
func ackLanguage(catalog TranslationCatalog, code string) string {
	if code != "" && catalog.Supports(code) {
		return code
	}
	return i18n.BaseLanguage
}
