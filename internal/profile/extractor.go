package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/skills"
)

// minTextLength is the threshold below which extraction short-circuits to an
// all-default profile instead of running heuristics on garbage.
const minTextLength = 10

// Extractor turns raw resume text into a CandidateProfile. The zero value is
// not usable; construct with New.
type Extractor struct {
	kb         *skills.KnowledgeBase
	classifier Classifier
	logger     *zap.Logger
}

type Option func(*Extractor)

// WithClassifier replaces the default rule-based category classifier.
func WithClassifier(c Classifier) Option {
	return func(e *Extractor) {
		e.classifier = c
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

func New(kb *skills.KnowledgeBase, opts ...Option) *Extractor {
	e := &Extractor{
		kb:         kb,
		classifier: RuleClassifier{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails: a field whose heuristic finds nothing keeps its
// default and the rest of the profile is still produced. Input shorter than
// minTextLength yields an all-default profile flagged InsufficientText.
func (e *Extractor) Extract(ctx context.Context, text string) *Profile {
	p := &Profile{
		Experience: NotSpecified,
		Category:   DefaultCategory,
	}

	if len(strings.TrimSpace(text)) < minTextLength {
		e.logger.Debug("resume text too short, skipping field extraction",
			zap.Int("length", len(strings.TrimSpace(text))))
		p.InsufficientText = true
		return p
	}

	p.Name = extractName(text)
	p.Email = extractEmail(text)
	p.Phone = extractPhone(text)
	p.Skills = excludeNameTokens(e.kb.Match(text), p.Name)
	p.Education = extractEducation(text)
	p.Experience = extractExperience(text)
	p.Category = e.classify(ctx, text, p.Skills)

	e.logger.Debug("extracted candidate profile",
		zap.String("name", p.Name),
		zap.Int("skills", len(p.Skills)),
		zap.Int("education_entries", len(p.Education)),
		zap.String("category", p.Category),
	)
	return p
}

// classify asks the configured classifier and falls back to the rules on
// error, keeping category inference within the never-fails contract.
func (e *Extractor) classify(ctx context.Context, text string, skillList []string) string {
	category, err := e.classifier.Classify(ctx, text, skillList)
	if err != nil {
		e.logger.Warn("category classifier failed, falling back to rules", zap.Error(err))
		category, _ = RuleClassifier{}.Classify(ctx, text, skillList)
	}
	if category == "" {
		category = DefaultCategory
	}
	return category
}

// excludeNameTokens drops matched skills that collide with the candidate's
// name, which the aggressive name fallback would otherwise pollute.
func excludeNameTokens(found []string, name string) []string {
	if name == "" || len(found) == 0 {
		return found
	}
	tokens := strings.Fields(strings.ToLower(name))

	kept := make([]string, 0, len(found))
	for _, skill := range found {
		lowered := strings.ToLower(skill)
		collision := false
		for _, token := range tokens {
			if strings.Contains(lowered, token) {
				collision = true
				break
			}
		}
		if !collision {
			kept = append(kept, skill)
		}
	}
	return kept
}
