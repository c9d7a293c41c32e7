package profile

import (
	"regexp"
	"strings"
)

// Lines carrying any of these markers are contact or link lines, not names.
var nameMarkers = []string{"@", "email", "github", "linkedin", "phone", "+91", "contact", ".com"}

var (
	digitRe     = regexp.MustCompile(`\d`)
	nameWordRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z.\-']*$`)
	alphaLineRe = regexp.MustCompile(`^[A-Za-z .\-']+$`)
	alphaRunRe  = regexp.MustCompile(`[A-Za-z]+`)
)

// extractName looks for the candidate name in the first eight non-blank
// lines, walking a chain of progressively weaker strategies. The last resort
// returns the raw first line, so a non-empty resume always yields something;
// downstream consumers subtract name tokens from matched skills, which keeps
// an over-eager fallback harmless.
func extractName(text string) string {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return ""
	}

	top := lines
	if len(top) > 8 {
		top = top[:8]
	}

	candidates := make([]string, 0, len(top))
	for _, line := range top {
		if digitRe.MatchString(line) || hasNameMarker(line) {
			continue
		}
		candidates = append(candidates, line)
	}
	if len(candidates) == 0 {
		candidates = top
	}

	// 2-4 words that all look like name words.
	for _, line := range candidates {
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		ok := true
		for _, w := range words {
			if !nameWordRe.MatchString(w) {
				ok = false
				break
			}
		}
		if ok {
			return capitalizeWords(words)
		}
	}

	// Longest fully-alphabetic line with a plausible word count.
	var best string
	for _, line := range candidates {
		if !alphaLineRe.MatchString(line) {
			continue
		}
		n := len(strings.Fields(line))
		if n >= 1 && n <= 5 && len(line) > len(best) {
			best = line
		}
	}
	if best != "" {
		return capitalizeWords(strings.Fields(best))
	}

	// First two alphabetic runs of the very first line.
	if runs := alphaRunRe.FindAllString(lines[0], -1); len(runs) >= 2 {
		return capitalizeWords(runs[:2])
	}

	return lines[0]
}

func hasNameMarker(line string) bool {
	lowered := strings.ToLower(line)
	for _, marker := range nameMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

func capitalizeWords(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = capitalize(w)
	}
	return strings.Join(out, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
