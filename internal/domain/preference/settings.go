package preference

// FontSize is the base text size preset.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
	FontSizeXLarge FontSize = "xlarge"
)

// TimeFormat selects 12 or 24 hour clocks.
type TimeFormat string

const (
	TimeFormat12Hour TimeFormat = "12-hour"
	TimeFormat24Hour TimeFormat = "24-hour"
)

// DefaultLanguage is used whenever no usable language is recorded.
const DefaultLanguage = "en"

// Settings is the typed view of one user's accessibility preferences.
type Settings struct {
	DarkMode            bool       `json:"darkMode"`
	FontSize            FontSize   `json:"fontSize" validate:"oneof=small medium large xlarge"`
	TTSEnabled          bool       `json:"ttsEnabled"`
	AudioNotifEnabled   bool       `json:"audioNotifEnabled"`
	HighContrast        bool       `json:"highContrast"`
	ReduceMotion        bool       `json:"reduceMotion"`
	ScreenReaderEnabled bool       `json:"screenReaderEnabled"`
	EnhancedDescEnabled bool       `json:"enhancedDescEnabled"`
	NavHintsEnabled     bool       `json:"navHintsEnabled"`
	VoiceVolume         int        `json:"voiceVolume" validate:"min=0,max=100"`
	Language            string     `json:"language" validate:"required"`
	TimeFormat          TimeFormat `json:"timeFormat" validate:"oneof=12-hour 24-hour"`
}

// Defaults returns the record served for identities that never saved one.
func Defaults() Settings {
	return Settings{
		DarkMode:            true,
		FontSize:            FontSizeMedium,
		TTSEnabled:          true,
		AudioNotifEnabled:   true,
		HighContrast:        false,
		ReduceMotion:        false,
		ScreenReaderEnabled: true,
		EnhancedDescEnabled: true,
		NavHintsEnabled:     true,
		VoiceVolume:         80,
		Language:            DefaultLanguage,
		TimeFormat:          TimeFormat12Hour,
	}
}

// FieldNames lists every JSON field of a complete record, in display order.
var FieldNames = []string{
	"darkMode",
	"fontSize",
	"ttsEnabled",
	"audioNotifEnabled",
	"highContrast",
	"reduceMotion",
	"screenReaderEnabled",
	"enhancedDescEnabled",
	"navHintsEnabled",
	"voiceVolume",
	"language",
	"timeFormat",
}
