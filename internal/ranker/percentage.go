package ranker

import (
	"regexp"
	"sort"
	"strings"

	"github.com/resumatch/resumatch/internal/jobs"
)

// Weights of the percentage-match components.
const (
	weightTitle    = 0.30
	weightSkills   = 0.40
	weightCategory = 0.20
	weightLocation = 0.10
)

// PercentageMatcher is the alternate scoring strategy: a weighted blend of
// title similarity, skill density, category keywords in the title and
// location overlap, on a 0-100 scale. Its scores are not comparable with
// Ranker's cosine or count scores; pick one strategy per call site.
type PercentageMatcher struct {
	skills         []string
	skillPatterns  []*regexp.Regexp
	category       string
	categoryTokens []string
	location       string
}

func NewPercentageMatcher(skills []string, category, location string) *PercentageMatcher {
	lowered := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			lowered = append(lowered, s)
		}
	}

	category = strings.ToLower(strings.TrimSpace(category))

	return &PercentageMatcher{
		skills:         lowered,
		skillPatterns:  skillPatterns(lowered),
		category:       category,
		categoryTokens: strings.Fields(category),
		location:       strings.ToLower(strings.TrimSpace(location)),
	}
}

// Score rates one posting in [0,100].
func (m *PercentageMatcher) Score(p jobs.Posting) float64 {
	title := strings.ToLower(p.Title)
	description := strings.ToLower(p.Description)

	score := weightTitle*m.titleScore(title) +
		weightSkills*m.skillScore(title, description) +
		weightCategory*m.categoryScore(title) +
		weightLocation*m.locationScore(strings.ToLower(p.Location))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Rank scores all postings and returns at most topN, best first, ties in
// original order.
func (m *PercentageMatcher) Rank(postings []jobs.Posting, topN int) []MatchResult {
	results := make([]MatchResult, len(postings))
	for i, p := range postings {
		results[i] = MatchResult{Posting: p, Score: round4(m.Score(p))}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topN >= 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}

func (m *PercentageMatcher) titleScore(title string) float64 {
	if m.category == "" || title == "" {
		return 0
	}
	if strings.Contains(title, m.category) {
		return 100
	}
	return similarityRatio(m.category, title) * 100
}

func (m *PercentageMatcher) skillScore(title, description string) float64 {
	if len(m.skillPatterns) == 0 {
		return 0
	}
	haystack := description + " " + title
	matched := 0
	for _, p := range m.skillPatterns {
		if p.MatchString(haystack) {
			matched++
		}
	}
	return float64(matched) / float64(len(m.skillPatterns)) * 100
}

func (m *PercentageMatcher) categoryScore(title string) float64 {
	if len(m.categoryTokens) == 0 || title == "" {
		return 0
	}
	matched := 0
	for _, token := range m.categoryTokens {
		if strings.Contains(title, token) {
			matched++
		}
	}
	return float64(matched) / float64(len(m.categoryTokens)) * 100
}

func (m *PercentageMatcher) locationScore(location string) float64 {
	if m.location == "" || location == "" {
		return 0
	}
	if strings.Contains(location, m.location) || strings.Contains(m.location, location) {
		return 100
	}
	return 0
}

// similarityRatio is the Ratcliff/Obershelp measure: twice the number of
// matching characters over the total length, matches found by recursively
// taking the longest common substring.
func similarityRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingChars(a, b)) / float64(total)
}

func matchingChars(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestCommonSubstring returns the start offsets and length of the longest
// common substring, preferring the earliest occurrence on ties.
func longestCommonSubstring(a, b string) (int, int, int) {
	if a == "" || b == "" {
		return 0, 0, 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	bestA, bestB, bestSize := 0, 0, 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestSize {
					bestSize = curr[j]
					bestA = i - curr[j]
					bestB = j - curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return bestA, bestB, bestSize
}
