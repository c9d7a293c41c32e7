package ranker

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/cache"
	"github.com/resumatch/resumatch/internal/jobs"
)

// MatchResult pairs a posting with its relevance score. Scores from the
// TF-IDF and keyword modes are on different scales (cosine in [0,1] vs raw
// counts) and only order results within one call.
type MatchResult struct {
	Posting jobs.Posting `json:"posting"`
	Score   float64      `json:"match_score"`
}

// Ranker scores postings against a candidate. The zero value is usable;
// construct with New to attach a logger.
type Ranker struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Ranker {
	return &Ranker{logger: logger}
}

// Rank scores the postings and returns at most topN results, best first.
// Mode is chosen by the inputs: with resume text present scores are TF-IDF
// cosine similarities over [resume]+descriptions; otherwise each score is
// the count of candidate skills appearing as whole words in the
// description. Ties keep the original posting order.
//
// When store and key are both set the selected results are written through
// before returning; a failed write does not discard them.
func (r *Ranker) Rank(ctx context.Context, postings []jobs.Posting, skillSet []string, resumeText string, topN int, cacheKey string, store cache.Cache) ([]MatchResult, error) {
	results := make([]MatchResult, len(postings))

	if strings.TrimSpace(resumeText) != "" {
		descriptions := make([]string, len(postings))
		for i, p := range postings {
			descriptions[i] = p.Description
		}
		for i, score := range tfidfCosine(resumeText, descriptions) {
			results[i] = MatchResult{Posting: postings[i], Score: round4(score)}
		}
	} else {
		patterns := skillPatterns(skillSet)
		for i, p := range postings {
			results[i] = MatchResult{Posting: p, Score: float64(countSkills(patterns, p.Description))}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topN >= 0 && len(results) > topN {
		results = results[:topN]
	}

	if r.logger != nil {
		r.logger.Debug("ranked job postings",
			zap.Int("postings", len(postings)),
			zap.Int("returned", len(results)),
			zap.Bool("semantic", strings.TrimSpace(resumeText) != ""),
		)
	}

	if store != nil && cacheKey != "" {
		if err := store.Set(ctx, cacheKey, results); err != nil {
			return results, fmt.Errorf("caching ranked results: %w", err)
		}
	}
	return results, nil
}

func skillPatterns(skillSet []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(skillSet))
	for _, skill := range skillSet {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(skill)+`\b`))
	}
	return patterns
}

func countSkills(patterns []*regexp.Regexp, description string) int {
	lowered := strings.ToLower(description)
	count := 0
	for _, p := range patterns {
		if p.MatchString(lowered) {
			count++
		}
	}
	return count
}
