package profile

import (
	"context"
	"strings"
)

// Classifier infers a job category from resume text and matched skills.
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, resumeText string, skills []string) (string, error)
}

// Categories lists every category the rule classifier can emit. Model-backed
// classifiers validate their answers against this list.
var Categories = []string{
	"ML Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Engineer",
	"Data Scientist",
	DefaultCategory,
}

// fullStackMarkers count toward the two-framework threshold by substring, so
// both "React" and "react native" qualify.
var fullStackMarkers = []string{"react", "vue", "angular", "node", "django", "flask", "spring"}

// RuleClassifier assigns a category from fixed skill-keyword groups. The
// groups are checked in a deliberate order: the first group with any hit
// wins, so a resume listing both React and Docker is a Frontend Developer,
// not a DevOps Engineer.
type RuleClassifier struct{}

func (RuleClassifier) Classify(_ context.Context, _ string, skillList []string) (string, error) {
	if len(skillList) == 0 {
		return DefaultCategory, nil
	}

	set := make(map[string]bool, len(skillList))
	for _, s := range skillList {
		set[strings.ToLower(s)] = true
	}
	hasAny := func(keywords ...string) bool {
		for _, kw := range keywords {
			if set[kw] {
				return true
			}
		}
		return false
	}

	switch {
	case hasAny("machine learning", "deep learning", "tensorflow", "pytorch", "nlp", "computer vision"):
		return "ML Engineer", nil
	case hasAny("react", "vue.js", "angular", "typescript", "frontend"):
		return "Frontend Developer", nil
	case hasAny("django", "flask", "fastapi", "spring", "node.js", "express.js", "laravel"):
		return "Backend Developer", nil
	case countMarked(set) >= 2:
		return "Full Stack Developer", nil
	case hasAny("docker", "kubernetes", "aws", "azure", "ci/cd", "terraform", "ansible"):
		return "DevOps Engineer", nil
	case hasAny("hadoop", "spark", "kafka", "sql", "etl", "data"):
		return "Data Engineer", nil
	case hasAny("machine learning", "pandas", "scikit-learn", "data science"):
		return "Data Scientist", nil
	default:
		return DefaultCategory, nil
	}
}

func countMarked(set map[string]bool) int {
	n := 0
	for skill := range set {
		for _, marker := range fullStackMarkers {
			if strings.Contains(skill, marker) {
				n++
				break
			}
		}
	}
	return n
}

// ValidCategory reports whether answer matches a known category,
// case-insensitively.
func ValidCategory(answer string) (string, bool) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(answer), c) {
			return c, true
		}
	}
	return "", false
}
