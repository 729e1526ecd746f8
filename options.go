package textcase

// Option configures a single casing call.
type Option func(*caseConfig)

// caseConfig holds the per-call settings. A fresh value is built for every
// call so no state is shared between calls.
type caseConfig struct {
	trimLeadingSpaces   bool
	uppercaseAsAcronyms bool
}

// applyOptions builds the configuration for one call, starting from the defaults.
func applyOptions(opts ...Option) caseConfig {
	cfg := caseConfig{
		trimLeadingSpaces:   true,
		uppercaseAsAcronyms: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTrimLeadingSpaces enables or disables removal of leading U+0020 spaces.
// Only plain spaces count; tabs and other whitespace are left alone.
// Default: true
func WithTrimLeadingSpaces(enabled bool) Option {
	return func(cfg *caseConfig) {
		cfg.trimLeadingSpaces = enabled
	}
}

// WithUppercaseAsAcronyms enables or disables acronym preservation.
// When enabled, a word written entirely in upper case is kept as is.
// When disabled, the text is lower-cased before words are capitalized, so
// "NASA" becomes "Nasa".
// Default: true
func WithUppercaseAsAcronyms(enabled bool) Option {
	return func(cfg *caseConfig) {
		cfg.uppercaseAsAcronyms = enabled
	}
}
