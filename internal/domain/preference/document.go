package preference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDocument is returned for payloads that are not a JSON object or
// array.
var ErrInvalidDocument = errors.New("settings document must be a JSON object or array")

// emptyDocument stands in for a request that carried no body.
var emptyDocument = []byte("{}")

// Document is a settings record exactly as a client submitted it. It is
// stored and returned verbatim; fields may be missing or malformed.
type Document []byte

// ParseDocument accepts raw bytes that encode a JSON object or array. An
// empty body reads as the empty object.
func ParseDocument(raw []byte) (Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		trimmed = emptyDocument
	}
	doc := Document(trimmed)
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	out := make(Document, len(trimmed))
	copy(out, trimmed)
	return out, nil
}

// Validate reports whether d is a well-formed JSON object or array. Arrays
// are storable but carry no settings members.
func (d Document) Validate() error {
	trimmed := bytes.TrimSpace(d)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') || !json.Valid(trimmed) {
		return ErrInvalidDocument
	}
	return nil
}

// DocumentFrom encodes a typed record.
func DocumentFrom(s Settings) Document {
	data, err := json.Marshal(s)
	if err != nil {
		// Settings holds only strings, bools and ints.
		panic(fmt.Sprintf("preference: encode settings: %v", err))
	}
	return data
}

// DefaultDocument returns the encoded default record.
func DefaultDocument() Document {
	return DocumentFrom(Defaults())
}

// MarshalJSON embeds the document as-is.
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// Fields splits the document into its top-level members.
func (d Document) Fields() (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(d, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return fields, nil
}

// Language returns the language member if it is a non-empty string.
func (d Document) Language() string {
	fields, err := d.Fields()
	if err != nil {
		return ""
	}
	var lang string
	if raw, ok := fields["language"]; !ok || json.Unmarshal(raw, &lang) != nil {
		return ""
	}
	return lang
}

// Decode overlays every well-typed member onto the defaults. Problems lists
// members that are missing or could not be decoded.
func (d Document) Decode() (s Settings, problems []string) {
	s = Defaults()

	fields, err := d.Fields()
	if err != nil {
		return s, []string{err.Error()}
	}

	for _, name := range FieldNames {
		raw, ok := fields[name]
		if !ok {
			problems = append(problems, name+" is missing")
			continue
		}
		if err := decodeField(&s, name, raw); err != nil {
			problems = append(problems, fmt.Sprintf("%s has an invalid value", name))
		}
	}
	return s, problems
}

func decodeField(s *Settings, name string, raw json.RawMessage) error {
	var target any
	switch name {
	case "darkMode":
		target = &s.DarkMode
	case "fontSize":
		target = &s.FontSize
	case "ttsEnabled":
		target = &s.TTSEnabled
	case "audioNotifEnabled":
		target = &s.AudioNotifEnabled
	case "highContrast":
		target = &s.HighContrast
	case "reduceMotion":
		target = &s.ReduceMotion
	case "screenReaderEnabled":
		target = &s.ScreenReaderEnabled
	case "enhancedDescEnabled":
		target = &s.EnhancedDescEnabled
	case "navHintsEnabled":
		target = &s.NavHintsEnabled
	case "voiceVolume":
		target = &s.VoiceVolume
	case "language":
		target = &s.Language
	case "timeFormat":
		target = &s.TimeFormat
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return json.Unmarshal(raw, target)
}
