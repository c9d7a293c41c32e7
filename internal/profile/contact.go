package profile

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

// A number next to an explicit label beats any free-standing pattern.
var phoneLabeledRe = regexp.MustCompile(`(?i)(?:phone|tel|mobile|contact)[:\s]*([+\d()\-\s.]{7,})`)

var phoneGenericRes = []*regexp.Regexp{
	// International with optional country code and separators.
	regexp.MustCompile(`\+?\d{1,3}[-\s.]?\(?\d{2,4}\)?[-\s.]?\d{3,4}[-\s.]?\d{3,4}`),
	// US style (415) 555-0100.
	regexp.MustCompile(`\(?\d{3}\)?[-\s.]?\d{3}[-\s.]?\d{4}`),
	// Bare 10-digit run.
	regexp.MustCompile(`\b\d{10}\b`),
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone returns the first plausible phone number, labeled occurrences
// first. A candidate counts as plausible when it carries 7 to 15 digits.
func extractPhone(text string) string {
	if m := phoneLabeledRe.FindStringSubmatch(text); m != nil {
		if candidate := strings.TrimSpace(m[1]); plausiblePhone(candidate) {
			return candidate
		}
	}
	for _, re := range phoneGenericRes {
		if candidate := strings.TrimSpace(re.FindString(text)); plausiblePhone(candidate) {
			return candidate
		}
	}
	return ""
}

func plausiblePhone(candidate string) bool {
	digits := 0
	for _, r := range candidate {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}
