package dto

// WriteSettingsResult acknowledges a stored settings document.
type WriteSettingsResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Language string `json:"-"`
}

// LanguagePreferenceResult echoes the accepted language code.
type LanguagePreferenceResult struct {
	Success  bool   `json:"success"`
	Language string `json:"language"`
}

// ConformanceReport lists how a stored document deviates from a complete
// record. An empty report means the document is complete and valid.
type ConformanceReport struct {
	Problems []string `json:"problems,omitempty"`
}

// Conforms reports whether no problems were found.
func (r ConformanceReport) Conforms() bool {
	return len(r.Problems) == 0
}
