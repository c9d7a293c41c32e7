package jobs

import (
	"encoding/json"
	"fmt"
	"os"
)

// Posting is a single job posting supplied by an external collaborator
// (a scraper or a job-board API). It is immutable input to the matching
// pipeline; empty strings mean the source did not provide the field.
type Posting struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty"`
	Portal      string `json:"portal,omitempty"`
	Description string `json:"description,omitempty"`
}

// Postings is a list of postings with collection helpers.
type Postings struct {
	Items []Posting `json:"items"`
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) FindByURL(url string) *Posting {
	for i := range p.Items {
		if p.Items[i].URL == url {
			return &p.Items[i]
		}
	}
	return nil
}

// LoadFromFile reads postings from a JSON file. Both the wrapped
// {"items": [...]} form and a bare JSON array are accepted.
func LoadFromFile(path string) (*Postings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading postings file: %w", err)
	}

	var postings Postings
	if err := json.Unmarshal(data, &postings); err == nil && postings.Items != nil {
		return &postings, nil
	}

	var items []Posting
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding postings file %q: %w", path, err)
	}
	return &Postings{Items: items}, nil
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups brief posting summaries under a "Company (portal)" key.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Company
		if posting.Portal != "" {
			key = fmt.Sprintf("%s (%s)", posting.Company, posting.Portal)
		}
		report[key] = append(report[key], map[string]string{
			"title":    posting.Title,
			"url":      posting.URL,
			"location": posting.Location,
		})
	}
	return report
}
