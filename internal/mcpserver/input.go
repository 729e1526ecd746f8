package mcpserver

import (
	"github.com/erraggy/textcase"
	"github.com/erraggy/textcase/caseerrors"
)

// caseFlags are the optional casing flags shared by every tool input.
// A nil flag falls back to the server configuration.
type caseFlags struct {
	TrimLeadingSpaces   *bool `json:"trim_leading_spaces,omitempty"   jsonschema:"Remove leading spaces before converting (default true, configurable via TEXTCASE_TRIM_LEADING_SPACES)"`
	UppercaseAsAcronyms *bool `json:"uppercase_as_acronyms,omitempty" jsonschema:"Keep all-uppercase words as acronyms (default true, configurable via TEXTCASE_UPPERCASE_AS_ACRONYMS)"`
}

// resolve returns the effective flag values for a call.
func (f caseFlags) resolve() (trim, acronyms bool) {
	trim = cfg.TrimLeadingSpaces
	if f.TrimLeadingSpaces != nil {
		trim = *f.TrimLeadingSpaces
	}
	acronyms = cfg.UppercaseAsAcronyms
	if f.UppercaseAsAcronyms != nil {
		acronyms = *f.UppercaseAsAcronyms
	}
	return trim, acronyms
}

// options converts the effective flags into textcase options.
func (f caseFlags) options() []textcase.Option {
	trim, acronyms := f.resolve()
	return []textcase.Option{
		textcase.WithTrimLeadingSpaces(trim),
		textcase.WithUppercaseAsAcronyms(acronyms),
	}
}

// checkTextSize rejects texts larger than cfg.MaxInputBytes.
func checkTextSize(text string) error {
	if len(text) > cfg.MaxInputBytes {
		return &caseerrors.ResourceLimitError{
			ResourceType: "input_bytes",
			Limit:        int64(cfg.MaxInputBytes),
			Actual:       int64(len(text)),
		}
	}
	return nil
}
