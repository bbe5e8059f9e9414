package usecases

import (
	"github.com/chennai-a11y/prefsync/internal/infrastructure/i18n"
)

// TranslationCatalog is the read-only dictionary lookup the use cases need.
type TranslationCatalog interface {
	Lookup(code string) (i18n.Dictionary, bool)
	Supports(code string) bool
	Message(code, key string) string
}
