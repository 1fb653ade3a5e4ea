package chat

import (
	"strings"
	"unicode/utf8"
)

// Tokens shorter than this are too common to be selective ("là", "có", ...).
const minTokenRunes = 3

// Normalize lower-cases and trims a raw question.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize splits a normalized query on whitespace, dropping short tokens.
func Tokenize(normalized string) []string {
	var tokens []string
	for _, word := range strings.Fields(normalized) {
		if utf8.RuneCountInString(word) >= minTokenRunes {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
