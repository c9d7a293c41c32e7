package ranker

import (
	"testing"

	"github.com/resumatch/resumatch/internal/jobs"
)

func TestPercentageMatcherScoreRange(t *testing.T) {
	m := NewPercentageMatcher([]string{"python", "django"}, "backend developer", "remote")

	p := jobs.Posting{
		Title:       "Backend Developer",
		Description: "We use Python and Django daily",
		Location:    "Remote, Worldwide",
	}

	score := m.Score(p)
	if score <= 0 || score > 100 {
		t.Fatalf("score out of range: %v", score)
	}
	// Title contains the category (30), both skills present (40), both
	// category tokens in title (20) and location overlaps (10).
	if score != 100 {
		t.Fatalf("got %v, want 100", score)
	}
}

func TestPercentageMatcherPartial(t *testing.T) {
	m := NewPercentageMatcher([]string{"python", "django", "redis", "kafka"}, "backend developer", "")

	p := jobs.Posting{
		Title:       "Platform Engineer",
		Description: "python and kafka pipelines",
	}

	score := m.Score(p)
	if score <= 0 || score >= 100 {
		t.Fatalf("expected a partial score, got %v", score)
	}
}

func TestPercentageMatcherRankOrder(t *testing.T) {
	m := NewPercentageMatcher([]string{"python"}, "backend developer", "")

	postings := []jobs.Posting{
		{Title: "Florist", Description: "flowers"},
		{Title: "Backend Developer", Description: "python services"},
	}

	results := m.Rank(postings, 10)
	if results[0].Posting.Title != "Backend Developer" {
		t.Fatalf("order wrong: %v", results)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := similarityRatio("abc", "abc"); got != 1 {
		t.Fatalf("identical strings: got %v", got)
	}
	if got := similarityRatio("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint strings: got %v", got)
	}
	// 2*M/T with M=3 ("abcd"/"bcde" share "bcd"), T=8.
	if got := similarityRatio("abcd", "bcde"); got != 0.75 {
		t.Fatalf("got %v, want 0.75", got)
	}
	if got := similarityRatio("", ""); got != 1 {
		t.Fatalf("empty strings: got %v", got)
	}
}
