// Package naming provides the word scanner and per-word case helpers used by
// the textcase package.
//
// A word is a maximal run of letters ([unicode.IsLetter]). Every other rune
// (space, digit, punctuation) is a separator. [Tokens] walks a string left to
// right and yields alternating word and separator runs without building an
// intermediate word list, so callers can rebuild the string with separators
// in their original positions.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
