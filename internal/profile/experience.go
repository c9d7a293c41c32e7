package profile

import (
	"regexp"
	"strings"
)

// Experience patterns in priority order. Month phrasings come before the
// matching year phrasings so "18 months of experience" is not read as years;
// the first pattern with a hit decides the result.
var experiencePatterns = []struct {
	re   *regexp.Regexp
	unit string
}{
	{regexp.MustCompile(`(\d+)\+?\s*(?:months?|mos?\.?)\s+(?:of\s+)?experience`), "months"},
	{regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?\.?)\s+(?:of\s+)?experience`), "years"},
	{regexp.MustCompile(`experience\s*(?:of|:)?\s*(\d+)\+?\s*(?:months?|mos?\.?)`), "months"},
	{regexp.MustCompile(`experience\s*(?:of|:)?\s*(\d+)\+?\s*(?:years?|yrs?\.?)`), "years"},
	{regexp.MustCompile(`(\d+)\+?\s*(?:months?|mos?\.?)\s+(?:of\s+)?(?:work|industry|professional)`), "months"},
	{regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?\.?)\s+(?:of\s+)?(?:work|industry|professional)`), "years"},
	{regexp.MustCompile(`(?:over|more than|nearly|around|about)\s+(\d+)\s*(?:months?|mos?\.?)`), "months"},
	{regexp.MustCompile(`(?:over|more than|nearly|around|about)\s+(\d+)\s*(?:years?|yrs?\.?)`), "years"},
}

// extractExperience scans for a stated amount of experience and returns it as
// "<N> months" or "<N> years", or NotSpecified when nothing matches.
func extractExperience(text string) string {
	lowered := strings.ToLower(text)
	for _, p := range experiencePatterns {
		if m := p.re.FindStringSubmatch(lowered); m != nil {
			return m[1] + " " + p.unit
		}
	}
	return NotSpecified
}
