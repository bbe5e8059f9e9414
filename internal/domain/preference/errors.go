package preference

import "errors"

var (
	// ErrUnauthenticated means the request carried no identity token.
	ErrUnauthenticated = errors.New("user not authenticated")
	// ErrUnsupportedLanguage means the catalog has no dictionary for a code.
	ErrUnsupportedLanguage = errors.New("language not supported")
)
