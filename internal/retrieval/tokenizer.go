package retrieval

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength is the shortest token kept by the tokenizer. Shorter tokens
// ("a", "is", "to") carry no retrieval signal.
const minTokenLength = 3

// TokenSet is a set of lowercase word tokens.
type TokenSet map[string]struct{}

// Contains reports whether the token is in the set.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Tokenize normalizes free text into a TokenSet: lower-cases the input,
// replaces every character that is not a letter, digit, or whitespace with a
// space, splits on whitespace runs, and drops tokens shorter than three
// characters. Empty or whitespace-only input yields an empty set.
func Tokenize(text string) TokenSet {
	tokens := make(TokenSet)
	if text == "" {
		return tokens
	}

	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	for _, word := range strings.Fields(normalized) {
		if utf8.RuneCountInString(word) >= minTokenLength {
			tokens[word] = struct{}{}
		}
	}

	return tokens
}
