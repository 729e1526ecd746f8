package textcase

import (
	"strings"

	"github.com/erraggy/textcase/internal/naming"
)

// ToTitleCase capitalizes every word of text. A word is a maximal run of
// letters; digits, spaces and punctuation are copied through untouched.
// Words written entirely in upper case are treated as acronyms and kept.
//
// Example: "Title case THiS BIT." -> "Title Case This BIT."
// Example: ToTitleCase("a BIT", WithUppercaseAsAcronyms(false)) -> "A Bit"
func ToTitleCase(text string, opts ...Option) string {
	return titleCase(text, applyOptions(opts...))
}

// ToPascalCase title-cases text and then removes every space.
// Other separators such as punctuation and digits are kept.
//
// With WithTrimLeadingSpaces(false) the leading spaces of the input survive
// the space removal: exactly as many are put back in front of the result.
//
// Example: "user profile page" -> "UserProfilePage"
// Example: ToPascalCase("  user id", WithTrimLeadingSpaces(false)) -> "  UserId"
func ToPascalCase(text string, opts ...Option) string {
	return pascalCase(text, applyOptions(opts...))
}

// ToCamelCase is ToPascalCase with the first non-space character lowered,
// even when the first word is an acronym.
//
// Example: "user profile page" -> "userProfilePage"
// Example: "NASA rocket" -> "nASARocket"
func ToCamelCase(text string, opts ...Option) string {
	return camelCase(text, applyOptions(opts...))
}

func titleCase(text string, cfg caseConfig) string {
	if cfg.trimLeadingSpaces {
		text, _ = naming.TrimLeadingSpaces(text)
	}
	if text == "" {
		return ""
	}

	// Lowering the whole text first leaves no word fully upper case,
	// which turns acronym preservation off for the scan below.
	if !cfg.uppercaseAsAcronyms {
		text = naming.LowerRunes(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	for tok := range naming.Tokens(text) {
		if tok.Kind == naming.Separator {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(naming.Capitalize(tok.Text, naming.IsAcronym(tok.Text)))
	}
	return b.String()
}

// pascalCase re-inserts the input's leading spaces after stripping, which is
// not the same operation as the trim done by titleCase.
func pascalCase(text string, cfg caseConfig) string {
	leading := 0
	if !cfg.trimLeadingSpaces {
		_, leading = naming.TrimLeadingSpaces(text)
	}

	pascal := naming.StripSpaces(titleCase(text, cfg))
	if leading > 0 {
		pascal = strings.Repeat(" ", leading) + pascal
	}
	return pascal
}

func camelCase(text string, cfg caseConfig) string {
	return naming.LowerFirstNonSpace(pascalCase(text, cfg))
}
