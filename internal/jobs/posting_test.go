package jobs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFileWrapped(t *testing.T) {
	path := writeFixture(t, `{"items":[{"title":"Backend Dev","company":"Acme","url":"https://a/1"}]}`)

	postings, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if postings.Len() != 1 {
		t.Fatalf("got %d postings", postings.Len())
	}
	if postings.Items[0].Title != "Backend Dev" {
		t.Fatalf("got %+v", postings.Items[0])
	}
}

func TestLoadFromFileBareArray(t *testing.T) {
	path := writeFixture(t, `[{"title":"Designer"},{"title":"Backend Dev"}]`)

	postings, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if postings.Len() != 2 {
		t.Fatalf("got %d postings", postings.Len())
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := writeFixture(t, `{"items": "nope"`)

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestFindByURL(t *testing.T) {
	postings := &Postings{Items: []Posting{
		{Title: "A", URL: "https://a/1"},
		{Title: "B", URL: "https://a/2"},
	}}

	if p := postings.FindByURL("https://a/2"); p == nil || p.Title != "B" {
		t.Fatalf("got %+v", p)
	}
	if p := postings.FindByURL("https://a/3"); p != nil {
		t.Fatalf("expected nil, got %+v", p)
	}
}

func TestReportByCompany(t *testing.T) {
	postings := &Postings{Items: []Posting{
		{Title: "Backend Dev", Company: "Acme", Portal: "linkedin"},
		{Title: "Frontend Dev", Company: "Acme", Portal: "linkedin"},
		{Title: "Designer", Company: "Globex"},
	}}

	report := postings.ReportByCompany()
	if len(report["Acme (linkedin)"]) != 2 {
		t.Fatalf("got %+v", report)
	}
	if len(report["Globex"]) != 1 {
		t.Fatalf("got %+v", report)
	}
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
