package profile

import (
	"regexp"
	"strings"
)

var (
	urlRe      = regexp.MustCompile(`http\S+`)
	handleRe   = regexp.MustCompile(`@\S+`)
	hashtagRe  = regexp.MustCompile(`#\S+`)
	punctRe    = regexp.MustCompile("[!-/:-@\\[-`{-~]")
	nonASCIIRe = regexp.MustCompile(`[^\x00-\x7f]`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// CleanText strips URLs, handles, hashtags, punctuation and non-ASCII bytes
// and collapses whitespace. The result suits bag-of-words scoring and model
// prompts, not field extraction: emails and phone numbers do not survive it.
func CleanText(text string) string {
	text = urlRe.ReplaceAllString(text, " ")
	text = handleRe.ReplaceAllString(text, " ")
	text = hashtagRe.ReplaceAllString(text, " ")
	text = punctRe.ReplaceAllString(text, " ")
	text = nonASCIIRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// sectionText cuts the part of text between the first occurrence of any
// header and the nearest following stop header, capped at window bytes. The
// header search is case-insensitive. Returns "" when no header is present.
func sectionText(text string, headers, stops []string, window int) string {
	lowered := strings.ToLower(text)

	for _, header := range headers {
		idx := strings.Index(lowered, header)
		if idx < 0 {
			continue
		}
		start := idx + len(header)
		end := len(text)
		for _, stop := range stops {
			if i := strings.Index(lowered[start:], stop); i >= 0 && start+i < end {
				end = start + i
			}
		}
		if window > 0 && start+window < end {
			end = start + window
		}
		return strings.TrimSpace(text[start:end])
	}
	return ""
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
