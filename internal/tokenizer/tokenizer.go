package tokenizer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// acronymRegex handles cases like "HTTPRequest" -> "HTTP Request"
var acronymRegex = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

// camelCaseRegex handles cases like "theOffice" -> "the Office" or "myAPI" -> "my API"
var camelCaseRegex = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Tokenize converts a string into a slice of tokens.
// It splits camel/PascalCase, lowercases the string, and splits by non-alphanumeric characters.
func Tokenize(text string) []string {
	// 1. Split camelCase/PascalCase
	processedText := acronymRegex.ReplaceAllString(text, "$1 $2")
	processedText = camelCaseRegex.ReplaceAllString(processedText, "$1 $2")

	// 2. Lowercase
	lowerText := strings.ToLower(processedText)

	// 3. Split by non-alphanumeric characters
	split := nonAlphanumericRegex.Split(lowerText, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" { // Filter out empty strings
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// Qualify prefixes a token with its field name, producing the qualified
// term form the query language reaches with ':' literals (e.g. "title:fox").
// Tokens never contain ':' themselves, so the qualified form is unambiguous.
func Qualify(field, token string) string {
	return strings.ToLower(field) + ":" + token
}

// TokenizeField produces both the bare tokens of a field's text and their
// field-qualified forms, deduplicated in first-seen order.
func TokenizeField(field, text string) []string {
	tokens := Tokenize(text)

	result := make([]string, 0, 2*len(tokens))
	seen := make(map[string]struct{}, 2*len(tokens))
	for _, token := range tokens {
		for _, term := range []string{token, Qualify(field, token)} {
			if _, dup := seen[term]; !dup {
				result = append(result, term)
				seen[term] = struct{}{}
			}
		}
	}
	return result
}
