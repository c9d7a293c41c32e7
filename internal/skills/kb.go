package skills

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// Mode selects the knowledge base shape and with it the matching strategy.
type Mode string

const (
	// ModeAlias matches canonical skills through per-skill alias lists with
	// word-boundary regexes.
	ModeAlias Mode = "alias"
	// ModeFlat matches tokens and 2-4 word n-grams against a flat set of
	// lowercase skill strings.
	ModeFlat Mode = "flat"
)

// ErrUnavailable signals that the skill data source is missing, unreadable or
// yields no skills. Callers must not fall back to an empty knowledge base
// silently: every later skill match would come back empty with no indication
// of why.
var ErrUnavailable = errors.New("skill knowledge base unavailable")

type aliasPattern struct {
	canonical string
	patterns  []*regexp.Regexp
}

// KnowledgeBase holds the skill vocabulary in one of two shapes. It is
// immutable after construction and safe for concurrent use; all regexes are
// compiled once here, never per call.
type KnowledgeBase struct {
	mode    Mode
	aliases []aliasPattern
	flat    map[string]struct{}
}

// NewAliasTable builds an alias-mode knowledge base from a canonical-name to
// alias-list mapping. Aliases are matched case-insensitively with word
// boundaries; canonical names are reported in sorted order for determinism.
func NewAliasTable(table map[string][]string) *KnowledgeBase {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	kb := &KnowledgeBase{mode: ModeAlias}
	for _, name := range names {
		ap := aliasPattern{canonical: name}
		for _, alias := range table[name] {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				continue
			}
			ap.patterns = append(ap.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(alias)+`\b`))
		}
		if len(ap.patterns) > 0 {
			kb.aliases = append(kb.aliases, ap)
		}
	}
	return kb
}

// NewFlatSet builds a flat-mode knowledge base from a list of skill strings.
// Entries are lowercased and deduplicated.
func NewFlatSet(entries []string) *KnowledgeBase {
	flat := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		flat[entry] = struct{}{}
	}
	return &KnowledgeBase{mode: ModeFlat, flat: flat}
}

func (kb *KnowledgeBase) Mode() Mode {
	return kb.mode
}

func (kb *KnowledgeBase) Empty() bool {
	return len(kb.aliases) == 0 && len(kb.flat) == 0
}

func (kb *KnowledgeBase) Size() int {
	if kb.mode == ModeAlias {
		return len(kb.aliases)
	}
	return len(kb.flat)
}

// Match returns the skills found in text, deduplicated and sorted. Alias mode
// reports canonical names; flat mode reports the matched lowercase entries.
func (kb *KnowledgeBase) Match(text string) []string {
	switch kb.mode {
	case ModeAlias:
		return kb.matchAliases(text)
	case ModeFlat:
		return kb.matchFlat(text)
	default:
		return nil
	}
}

func (kb *KnowledgeBase) matchAliases(text string) []string {
	lowered := strings.ToLower(text)

	var found []string
	for _, ap := range kb.aliases {
		for _, pattern := range ap.patterns {
			if pattern.MatchString(lowered) {
				found = append(found, ap.canonical)
				break
			}
		}
	}
	return found
}

func (kb *KnowledgeBase) matchFlat(text string) []string {
	tokens := Tokenize(text)

	seen := make(map[string]struct{})
	for _, candidate := range candidates(tokens) {
		if _, ok := kb.flat[candidate]; ok {
			seen[candidate] = struct{}{}
		}
	}

	found := make([]string, 0, len(seen))
	for skill := range seen {
		found = append(found, skill)
	}
	sort.Strings(found)
	return found
}

// candidates returns every single token plus every contiguous 2-4 token
// sequence joined by single spaces.
func candidates(tokens []string) []string {
	out := make([]string, 0, len(tokens)*4)
	out = append(out, tokens...)
	for n := 2; n <= 4; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
