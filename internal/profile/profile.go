package profile

import "strings"

const (
	// NotSpecified is the experience placeholder when no pattern matches.
	NotSpecified = "Not specified"
	// DefaultCategory is the role category used when no rule group matches.
	DefaultCategory = "Software Developer"
)

// Profile is the structured result of resume extraction. String fields hold
// "" when the corresponding heuristic found nothing; extraction itself never
// fails, it only degrades field by field.
type Profile struct {
	Name       string           `json:"name,omitempty"`
	Email      string           `json:"email,omitempty"`
	Phone      string           `json:"phone,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	Education  []EducationEntry `json:"education,omitempty"`
	Experience string           `json:"experience"`
	Category   string           `json:"category"`

	// InsufficientText marks a profile produced from input too short to run
	// the field heuristics on. All other fields carry their defaults.
	InsufficientText bool `json:"insufficient_text,omitempty"`
}

// EducationEntry is one detected qualification. Only Degree is guaranteed.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// String renders the entry as "<degree> in <field> | <institution> (<year>)"
// with each trailing component omitted when absent. Entries are deduplicated
// by the case-insensitive form of this string.
func (e EducationEntry) String() string {
	var b strings.Builder
	b.WriteString(e.Degree)
	if e.Field != "" {
		b.WriteString(" in ")
		b.WriteString(e.Field)
	}
	if e.Institution != "" {
		b.WriteString(" | ")
		b.WriteString(e.Institution)
	}
	if e.Year != "" {
		b.WriteString(" (")
		b.WriteString(e.Year)
		b.WriteString(")")
	}
	return b.String()
}
