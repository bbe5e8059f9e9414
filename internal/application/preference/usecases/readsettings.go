package usecases

import (
	"context"
	"fmt"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/errors"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

const unauthenticatedMessage = "User not authenticated"

func unauthenticated() error {
	return errors.NewUnauthorizedError(unauthenticatedMessage).WithCause(preference.ErrUnauthenticated)
}

// ReadSettingsUseCase returns the stored document for an identity.
type ReadSettingsUseCase struct {
	store  preference.Store
	logger logger.Interface
}

func NewReadSettingsUseCase(store preference.Store, logger logger.Interface) *ReadSettingsUseCase {
	return &ReadSettingsUseCase{
		store:  store,
		logger: logger,
	}
}

// Execute returns the stored document, or the defaults if none was saved.
func (uc *ReadSettingsUseCase) Execute(ctx context.Context, token string) (preference.Document, error) {
	if token == "" {
		return nil, unauthenticated()
	}

	doc, err := uc.store.Get(ctx, token)
	if err != nil {
		uc.logger.Errorw("failed to read settings",
			"identity", token,
			"error", err,
		)
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return doc, nil
}
