package skills

import (
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to token and n-gram
// matching.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"using": true, "used": true, "well": true, "such": true,
	"in": true, "of": true, "on": true, "at": true, "to": true, "a": true,
	"an": true, "as": true, "is": true, "or": true, "by": true,
}

// Tokenize splits text into lowercase tokens, dropping stop words and
// punctuation-only fragments. The characters + # . stay part of a token so
// names like c++, c# and node.js survive; trailing dots are trimmed.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w == "" || stopWords[w] {
			return
		}
		if !containsAlphanumeric(w) {
			return
		}
		tokens = append(tokens, w)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
