package naming

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies whether a Token is a word or a separator run.
type TokenKind int

const (
	// Separator is a maximal run of non-letter runes.
	Separator TokenKind = iota
	// Word is a maximal run of letters.
	Word
)

// String returns the lower-case name of the kind.
func (k TokenKind) String() string {
	switch k {
	case Word:
		return "word"
	case Separator:
		return "separator"
	default:
		return "unknown"
	}
}

// Token is one run produced by Tokens. Text is a substring of the scanned
// input, never a copy.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokens returns a lazy left-to-right scan of s as alternating word and
// separator runs. Concatenating every Token.Text yields s again.
// Example: "Hi, there" -> [word "Hi"] [separator ", "] [word "there"]
func Tokens(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		start := 0
		for start < len(s) {
			first, _ := utf8.DecodeRuneInString(s[start:])
			inWord := unicode.IsLetter(first)

			end := start
			for end < len(s) {
				r, size := utf8.DecodeRuneInString(s[end:])
				if unicode.IsLetter(r) != inWord {
					break
				}
				end += size
			}

			kind := Separator
			if inWord {
				kind = Word
			}
			if !yield(Token{Kind: kind, Text: s[start:end]}) {
				return
			}
			start = end
		}
	}
}

// IsAcronym reports whether every rune of word is an upper-case letter.
// The empty string is not an acronym.
// Example: "NASA" -> true, "NaSA" -> false, "A" -> true
func IsAcronym(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Capitalize upper-cases the first rune of word. When preserveRest is true
// the remaining runes are kept verbatim, otherwise they are lower-cased.
// Example: Capitalize("iNCLUDE", false) -> "Include"
// Example: Capitalize("bIT", true) -> "BIT"
func Capitalize(word string, preserveRest bool) string {
	if word == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(word))

	first, size := utf8.DecodeRuneInString(word)
	b.WriteRune(unicode.ToUpper(first))

	if preserveRest {
		b.WriteString(word[size:])
		return b.String()
	}
	for _, r := range word[size:] {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// TrimLeadingSpaces removes the run of U+0020 at the start of s and returns
// the remainder together with the number of spaces removed. Tabs and other
// whitespace are not spaces here.
// Example: "  abc" -> ("abc", 2)
func TrimLeadingSpaces(s string) (string, int) {
	trimmed := strings.TrimLeft(s, " ")
	return trimmed, len(s) - len(trimmed)
}

// StripSpaces removes every U+0020 from s.
// Example: "Hello There." -> "HelloThere."
func StripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// LowerRunes lower-cases s one rune at a time. Each rune maps to exactly one
// rune, so the rune count and the word boundaries of s are preserved.
// Example: "İSTANBUL" -> "istanbul", "ΟΔΟΣ" -> "οδοσ"
func LowerRunes(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// LowerFirstNonSpace lower-cases the first rune of s that is not U+0020.
// Everything before and after it is returned unchanged. Strings that are
// empty or contain only spaces are returned as is.
// Example: "  HelloWorld" -> "  helloWorld"
func LowerFirstNonSpace(s string) string {
	rest, n := TrimLeadingSpaces(s)
	if rest == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(rest)
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return s[:n] + string(lower) + rest[size:]
}
