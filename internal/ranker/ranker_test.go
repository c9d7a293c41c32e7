package ranker

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/cache"
	"github.com/resumatch/resumatch/internal/jobs"
)

var keywordJobs = []jobs.Posting{
	{Title: "Backend Dev", Description: "Python Django REST"},
	{Title: "Designer", Description: "Figma Sketch"},
}

func TestRankKeywordMode(t *testing.T) {
	r := New(zap.NewNop())

	results, err := r.Rank(context.Background(), keywordJobs, []string{"python", "django"}, "", 1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Posting.Title != "Backend Dev" {
		t.Fatalf("got %q", results[0].Posting.Title)
	}
	if results[0].Score != 2 {
		t.Fatalf("score: got %v, want 2", results[0].Score)
	}
}

func TestRankSemanticMode(t *testing.T) {
	r := New(zap.NewNop())
	postings := []jobs.Posting{
		{Title: "Backend", Description: "python django backend services"},
		{Title: "Design", Description: "graphic design figma"},
	}

	results, err := r.Rank(context.Background(), postings, nil, "python django backend", -1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Posting.Title != "Backend" {
		t.Fatalf("best match: got %q", results[0].Posting.Title)
	}
	if results[0].Score <= results[1].Score {
		t.Fatalf("scores not descending: %v", results)
	}
	if results[1].Score != 0 {
		t.Fatalf("disjoint vocabulary should score 0, got %v", results[1].Score)
	}
}

func TestRankIdenticalTextScoresOne(t *testing.T) {
	r := New(zap.NewNop())
	postings := []jobs.Posting{{Title: "Twin", Description: "python developer"}}

	results, err := r.Rank(context.Background(), postings, nil, "python developer", -1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Score != 1 {
		t.Fatalf("got %v, want 1", results[0].Score)
	}
}

func TestRankEmptyDescriptionsAllZero(t *testing.T) {
	r := New(zap.NewNop())
	postings := []jobs.Posting{{Title: "A"}, {Title: "B"}}

	results, err := r.Rank(context.Background(), postings, nil, "python developer", -1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, res := range results {
		if res.Score != 0 {
			t.Fatalf("got %v, want all zeros", results)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	r := New(zap.NewNop())
	postings := []jobs.Posting{
		{Title: "A", Description: "python flask api development"},
		{Title: "B", Description: "java spring microservices"},
		{Title: "C", Description: "python data pipelines"},
	}

	first, err := r.Rank(context.Background(), postings, nil, "python api data", -1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Rank(context.Background(), postings, nil, "python api data", -1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ranking not deterministic:\n%v\n%v", first, second)
	}
}

func TestRankStableOnTies(t *testing.T) {
	r := New(zap.NewNop())
	postings := []jobs.Posting{
		{Title: "First", Description: "go services"},
		{Title: "Second", Description: "go services"},
	}

	results, err := r.Rank(context.Background(), postings, []string{"go"}, "", -1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Posting.Title != "First" || results[1].Posting.Title != "Second" {
		t.Fatalf("tie order not preserved: %v", results)
	}
}

func TestRankWritesCache(t *testing.T) {
	r := New(zap.NewNop())
	store := cache.NewMemory(10, time.Minute)

	results, err := r.Rank(context.Background(), keywordJobs, []string{"python"}, "", 5, "user:42", store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var cached []MatchResult
	if err := store.Get(context.Background(), "user:42", &cached); err != nil {
		t.Fatalf("cache read: %v", err)
	}
	if !reflect.DeepEqual(results, cached) {
		t.Fatalf("cached results differ:\n%v\n%v", results, cached)
	}
}

func TestRankEmptyInputs(t *testing.T) {
	r := New(zap.NewNop())

	results, err := r.Rank(context.Background(), nil, []string{"python"}, "", 10, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %v, want empty", results)
	}

	results, err = r.Rank(context.Background(), keywordJobs, nil, "", 10, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, res := range results {
		if res.Score != 0 {
			t.Fatalf("empty skill set must zero-score, got %v", results)
		}
	}
}
