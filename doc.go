// Package textcase renders text in Title Case, PascalCase and camelCase.
//
// textcase offers three functions built on one another:
//
//   - ToTitleCase: capitalize every word, keep separators in place
//   - ToPascalCase: Title Case with every space removed
//   - ToCamelCase: PascalCase with the first letter lowered
//
// # Words and Separators
//
// A word is a maximal run of letters. Everything else (spaces, digits,
// punctuation) is a separator and passes through unchanged. This means
// digits and apostrophes split words:
//
//	textcase.ToTitleCase("api2client")  // "Api2Client"
//	textcase.ToTitleCase("don't")       // "Don'T"
//
// # Acronyms
//
// A word written entirely in upper case is treated as an acronym and kept
// verbatim. Turn this off with WithUppercaseAsAcronyms(false), which lowers
// the whole text before capitalizing:
//
//	textcase.ToTitleCase("a BIT of NASA")                                    // "A BIT Of NASA"
//	textcase.ToTitleCase("a BIT of NASA", textcase.WithUppercaseAsAcronyms(false)) // "A Bit Of Nasa"
//
// # Leading Spaces
//
// Leading U+0020 spaces are trimmed by default. With
// WithTrimLeadingSpaces(false), Title Case keeps them as ordinary separators
// and PascalCase/camelCase put back exactly as many spaces as the input
// started with, even though all other spaces are removed:
//
//	textcase.ToPascalCase("  user id", textcase.WithTrimLeadingSpaces(false)) // "  UserId"
//
// # Style Dispatch
//
// Convert selects the rendering from a Style value, and ParseStyle resolves a
// Style from a user-supplied name. Both report unknown styles with a
// *caseerrors.ConfigError.
//
// All functions are pure: they keep no state and are safe for concurrent use.
// Lower-casing maps one rune to one rune with the Unicode simple case
// mappings, so results do not depend on the host locale and never change
// word boundaries. Style names are matched with golang.org/x/text/cases
// case folding.
package textcase
