package presentation

import (
	"encoding/json"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
)

var fontSizes = map[preference.FontSize]string{
	preference.FontSizeSmall:  "14px",
	preference.FontSizeMedium: "16px",
	preference.FontSizeLarge:  "18px",
	preference.FontSizeXLarge: "20px",
}

// FontSizePixels maps a size preset to its CSS length.
func FontSizePixels(size preference.FontSize) (string, bool) {
	px, ok := fontSizes[size]
	return px, ok
}

// Apply reflects a serialized settings record onto doc. Members that are
// missing or of the wrong type are skipped, an unknown font size leaves the
// current size in place, and content that is not a JSON object is ignored.
// Applying the same record twice yields the same state.
func Apply(doc *Document, raw []byte) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}

	if on, ok := boolField(fields, "darkMode"); ok {
		doc.setClass(ClassDark, on)
	}

	if size, ok := stringField(fields, "fontSize"); ok {
		if px, known := FontSizePixels(preference.FontSize(size)); known {
			doc.fontSize = px
		}
	}

	if on, ok := boolField(fields, "highContrast"); ok {
		doc.setClass(ClassContrast, on)
	}

	if on, ok := boolField(fields, "reduceMotion"); ok {
		doc.setClass(ClassReduceMotion, on)
	}

	if lang, ok := stringField(fields, "language"); ok && lang != "" {
		doc.lang = lang
	}
}

func boolField(fields map[string]json.RawMessage, name string) (bool, bool) {
	raw, ok := fields[name]
	if !ok {
		return false, false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	return v, true
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}
