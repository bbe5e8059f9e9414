package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/errors"
)

func TestGetTranslationsUseCase_Execute(t *testing.T) {
	log := new(mockLogger)
	log.On("Debugw", mock.Anything, mock.Anything).Return()
	uc := NewGetTranslationsUseCase(loadCatalog(t), log)

	dict, err := uc.Execute(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "Settings", dict["settingsTitle"])

	dict, err = uc.Execute(context.Background(), "xx")
	assert.Nil(t, dict)
	assert.True(t, errors.IsNotFoundError(err))
	assert.ErrorIs(t, err, preference.ErrUnsupportedLanguage)
	assert.Equal(t, "Language not supported", errors.GetAppError(err).Message)
}

func TestSetLanguageUseCase_Execute(t *testing.T) {
	log := new(mockLogger)
	log.On("Debugw", mock.Anything, mock.Anything).Return()
	uc := NewSetLanguageUseCase(loadCatalog(t), log)

	result, err := uc.Execute(context.Background(), "ta")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "ta", result.Language)

	for _, code := range []string{"", "xx"} {
		_, err := uc.Execute(context.Background(), code)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr, code)
		assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
		assert.Equal(t, "Unsupported language", appErr.Message)
		assert.ErrorIs(t, err, preference.ErrUnsupportedLanguage)
	}
}
