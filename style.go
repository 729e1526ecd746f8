package textcase

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/erraggy/textcase/caseerrors"
	"github.com/erraggy/textcase/internal/stringutil"
)

// Style names one of the supported renderings.
type Style string

const (
	// StyleTitle renders Title Case ("Hello World").
	StyleTitle Style = "title"
	// StylePascal renders PascalCase ("HelloWorld").
	StylePascal Style = "pascal"
	// StyleCamel renders camelCase ("helloWorld").
	StyleCamel Style = "camel"
)

// ValidStyles returns all supported styles in a stable order.
func ValidStyles() []Style {
	return []Style{StyleTitle, StylePascal, StyleCamel}
}

// IsValid reports whether s is a supported style.
func (s Style) IsValid() bool {
	switch s {
	case StyleTitle, StylePascal, StyleCamel:
		return true
	}
	return false
}

// ParseStyle resolves a style name. Matching uses Unicode case folding,
// ignores surrounding whitespace, and accepts the "-case" suffix
// ("camel-case", "PascalCase").
func ParseStyle(name string) (Style, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "case"), "-")
	key = strings.TrimSuffix(key, "_")

	if s := Style(key); s.IsValid() {
		return s, nil
	}
	return "", &caseerrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: "must be one of " + joinStyles(", "),
	}
}

// Convert renders text in the given style.
// It returns a *caseerrors.ConfigError if style is not supported.
func Convert(style Style, text string, opts ...Option) (string, error) {
	cfg := applyOptions(opts...)
	switch style {
	case StyleTitle:
		return titleCase(text, cfg), nil
	case StylePascal:
		return pascalCase(text, cfg), nil
	case StyleCamel:
		return camelCase(text, cfg), nil
	default:
		return "", &caseerrors.ConfigError{
			Option:  "style",
			Value:   string(style),
			Message: "must be one of " + joinStyles(", "),
		}
	}
}

func joinStyles(sep string) string {
	return stringutil.CombineWith(sep, ValidStyles())
}
