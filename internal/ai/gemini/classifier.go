package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/logger"
	"github.com/resumatch/resumatch/internal/profile"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200

	// maxResumeRunes bounds the prompt so an unusually long resume does not
	// blow up request size.
	maxResumeRunes = 6000
)

// Classifier infers a job category with a Gemini model. It satisfies
// profile.Classifier; callers are expected to fall back to the rule-based
// classifier when it errors.
type Classifier struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewClassifier(generator contentGenerator, log *zap.Logger, maxLogLength int) *Classifier {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Classifier{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (c *Classifier) Classify(ctx context.Context, resumeText string, skills []string) (string, error) {
	cleaned := truncateRunes(profile.CleanText(resumeText), maxResumeRunes)
	prompt := buildPrompt(cleaned, skills)

	c.logger.Debug("gemini classify request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.logger.Debug("gemini classify response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, c.maxLogLen)),
	)

	answer := sanitizeAnswer(raw)
	category, ok := profile.ValidCategory(answer)
	if !ok {
		return "", fmt.Errorf("gemini returned unknown category %q", answer)
	}
	return category, nil
}

func buildPrompt(resumeText string, skills []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Categories:\n{{CATEGORIES}}\n\nSkills: {{SKILLS}}\n\nResume:\n{{RESUME_TEXT}}\n\nCategory:"
	}

	skillList := "none detected"
	if len(skills) > 0 {
		skillList = strings.Join(skills, ", ")
	}

	prompt := strings.ReplaceAll(template, "{{CATEGORIES}}", "- "+strings.Join(profile.Categories, "\n- "))
	prompt = strings.ReplaceAll(prompt, "{{SKILLS}}", skillList)
	prompt = strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
	return prompt
}

// sanitizeAnswer reduces a model response to the bare category name: code
// fences and quotes stripped, first non-empty line only.
func sanitizeAnswer(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```text")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
	}
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "`\"'.")
		if line != "" {
			return line
		}
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
