package profile

import (
	"regexp"
	"strings"
)

var educationHeaders = []string{"educational qualification", "academic qualification", "education"}

var educationStops = []string{
	"work experience", "professional experience", "experience",
	"skills", "projects", "certifications", "achievements",
	"publications", "internships", "extracurricular",
}

// educationWindow caps the scanned section so a missing stop header does not
// pull the rest of the document in.
const educationWindow = 900

// degreeRules map lowercase degree spellings to their normalized labels.
// Spelled-out forms sit above their abbreviations so "bachelor of technology"
// is not first claimed by a shorter pattern.
var degreeRules = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`\bbachelor of technology\b`), "B.Tech"},
	{regexp.MustCompile(`\bb\.?\s*tech\b`), "B.Tech"},
	{regexp.MustCompile(`\bbachelor of engineering\b`), "B.E"},
	{regexp.MustCompile(`\bbachelor of computer applications\b`), "BCA"},
	{regexp.MustCompile(`\bb\.?\s*c\.?\s*a\b`), "BCA"},
	{regexp.MustCompile(`\bbachelor of business administration\b`), "BBA"},
	{regexp.MustCompile(`\bb\.?\s*b\.?\s*a\b`), "BBA"},
	{regexp.MustCompile(`\bbachelor of science\b`), "B.Sc"},
	{regexp.MustCompile(`\bb\.?\s*sc\b`), "B.Sc"},
	{regexp.MustCompile(`\bbachelor of commerce\b`), "B.Com"},
	{regexp.MustCompile(`\bb\.?\s*com\b`), "B.Com"},
	{regexp.MustCompile(`\bbachelor of arts\b`), "B.A"},
	{regexp.MustCompile(`\bmaster of technology\b`), "M.Tech"},
	{regexp.MustCompile(`\bm\.?\s*tech\b`), "M.Tech"},
	{regexp.MustCompile(`\bmaster of engineering\b`), "M.E"},
	{regexp.MustCompile(`\bmaster of computer applications\b`), "MCA"},
	{regexp.MustCompile(`\bm\.?\s*c\.?\s*a\b`), "MCA"},
	{regexp.MustCompile(`\bmaster of business administration\b`), "MBA"},
	{regexp.MustCompile(`\bm\.?\s*b\.?\s*a\b`), "MBA"},
	{regexp.MustCompile(`\bmaster of science\b`), "M.Sc"},
	{regexp.MustCompile(`\bm\.?\s*sc\b`), "M.Sc"},
	{regexp.MustCompile(`\bmaster of commerce\b`), "M.Com"},
	{regexp.MustCompile(`\bmaster of arts\b`), "M.A"},
	{regexp.MustCompile(`\bph\.?\s*d\b`), "Ph.D"},
	{regexp.MustCompile(`\bdoctor of philosophy\b`), "Ph.D"},
	{regexp.MustCompile(`\bpost[- ]?graduate diploma\b`), "PG Diploma"},
	{regexp.MustCompile(`\bpg diploma\b`), "PG Diploma"},
	{regexp.MustCompile(`\bdiploma\b`), "Diploma"},
	{regexp.MustCompile(`\bmbbs\b`), "MBBS"},
}

// degreeAnchorRe marks where a new qualification plausibly starts; splitting
// points additionally require a non-word character before the match.
var degreeAnchorRe = regexp.MustCompile(`(?i)bachelor|master|doctor|diploma|b\.|m\.|ph\.`)

// fieldRe captures a run of capitalized words after "in" or "of", allowing
// the connectors "and"/"of" inside the run.
var fieldRe = regexp.MustCompile(`\b(?:in|of)\s+([A-Z][A-Za-z&.\-/]*(?:\s+(?:and|of|[A-Z][A-Za-z&.\-/]*))*)`)

// invalidFieldWords rejects captures that are really part of the degree name
// ("Bachelor of Technology") rather than a study field.
var invalidFieldWords = map[string]bool{
	"technology": true, "engineering": true, "science": true, "arts": true,
	"commerce": true, "applications": true, "administration": true,
	"philosophy": true,
}

// fieldKeywords is the fallback for resumes that spell the field in lowercase
// or without an "in/of" phrase. First hit wins.
var fieldKeywords = []string{
	"Computer Science", "Information Technology", "Software Engineering",
	"Data Science", "Artificial Intelligence", "Machine Learning",
	"Electronics", "Electrical Engineering", "Mechanical Engineering",
	"Civil Engineering", "Chemical Engineering", "Biotechnology",
	"Mathematics", "Statistics", "Physics", "Chemistry", "Economics",
	"Business Administration", "Commerce", "Finance", "Accounting",
	"Marketing", "Management",
}

var institutionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:[A-Z][\w&.\-']*\s+){0,6}(?:University|College|Institute|School|Academy)\b(?:\s+of\s+[A-Z]\w*(?:\s+[A-Z]\w*)*)?`),
	regexp.MustCompile(`\b(?:IIT|NIT|IIIT|BITS)[\s-]+[A-Z][A-Za-z]+`),
}

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// extractEducation finds qualifications in the education section, or the
// whole text when no section header exists. Each chunk around a degree
// anchor yields at most one entry; duplicates by rendered form are dropped.
func extractEducation(text string) []EducationEntry {
	section := sectionText(text, educationHeaders, educationStops, educationWindow)
	if section == "" {
		section = text
	}

	var entries []EducationEntry
	seen := make(map[string]bool)

	for _, chunk := range splitDegreeChunks(section) {
		chunk = collapseWhitespace(chunk)
		if chunk == "" {
			continue
		}

		degree, degreeIdx := normalizeDegree(chunk)
		if degree == "" {
			continue
		}

		institution, instIdx := extractInstitution(chunk)
		if institution != "" && instIdx < degreeIdx {
			// A name before the degree usually belongs to the previous
			// qualification's trailing text.
			institution = ""
		}

		entry := EducationEntry{
			Degree:      degree,
			Field:       extractField(chunk),
			Institution: institution,
			Year:        yearRe.FindString(chunk),
		}

		key := strings.ToLower(entry.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, entry)
	}
	return entries
}

// splitDegreeChunks cuts the section before each degree anchor that is not
// preceded by a word character, so "B." inside "MBBS." does not split.
func splitDegreeChunks(section string) []string {
	locs := degreeAnchorRe.FindAllStringIndex(section, -1)

	var anchors []int
	for _, loc := range locs {
		if loc[0] > 0 && isWordByte(section[loc[0]-1]) {
			continue
		}
		anchors = append(anchors, loc[0])
	}
	if len(anchors) == 0 {
		return []string{section}
	}

	var chunks []string
	if anchors[0] > 0 {
		chunks = append(chunks, section[:anchors[0]])
	}
	for i, start := range anchors {
		end := len(section)
		if i+1 < len(anchors) {
			end = anchors[i+1]
		}
		chunks = append(chunks, section[start:end])
	}
	return chunks
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// normalizeDegree returns the label of the first matching degree rule and the
// byte offset of its match within chunk, or ("", -1).
func normalizeDegree(chunk string) (string, int) {
	lowered := strings.ToLower(chunk)
	for _, rule := range degreeRules {
		if loc := rule.re.FindStringIndex(lowered); loc != nil {
			return rule.label, loc[0]
		}
	}
	return "", -1
}

// extractField tries capitalized "in/of <Field>" phrases first, skipping
// captures that are degree-name words, then falls back to keyword search.
func extractField(chunk string) string {
	for _, m := range fieldRe.FindAllStringSubmatch(chunk, -1) {
		candidate := strings.TrimSpace(m[1])
		candidate = strings.TrimSuffix(candidate, " and")
		candidate = strings.TrimSuffix(candidate, " of")
		first := strings.ToLower(strings.Fields(candidate)[0])
		if invalidFieldWords[first] {
			continue
		}
		return candidate
	}

	lowered := strings.ToLower(chunk)
	for _, kw := range fieldKeywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return kw
		}
	}
	return ""
}

// extractInstitution returns the first institution-looking capitalized run
// and its byte offset, or ("", -1).
func extractInstitution(chunk string) (string, int) {
	for _, re := range institutionRes {
		if loc := re.FindStringIndex(chunk); loc != nil {
			name := strings.TrimSpace(chunk[loc[0]:loc[1]])
			return name, loc[0]
		}
	}
	return "", -1
}
