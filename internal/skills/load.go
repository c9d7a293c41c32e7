package skills

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadFlatCSV reads a flat-set knowledge base from a CSV file. Every non-empty
// cell becomes an entry, so one skill per line and comma-separated synonym
// rows both work. A missing, unreadable or empty file is reported as
// ErrUnavailable.
func LoadFlatCSV(path string) (*KnowledgeBase, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, row := range rows {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				entries = append(entries, cell)
			}
		}
	}

	kb := NewFlatSet(entries)
	if kb.Empty() {
		return nil, fmt.Errorf("%w: %q contains no skills", ErrUnavailable, path)
	}
	return kb, nil
}

// LoadAliasCSV reads an alias-table knowledge base from a CSV file where the
// first cell of each row is the canonical skill name and the remaining cells
// are its aliases. The canonical name always matches itself.
func LoadAliasCSV(path string) (*KnowledgeBase, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	table := make(map[string][]string)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		canonical := strings.TrimSpace(row[0])
		if canonical == "" {
			continue
		}
		aliases := []string{strings.ToLower(canonical)}
		for _, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				aliases = append(aliases, cell)
			}
		}
		table[canonical] = append(table[canonical], aliases...)
	}

	kb := NewAliasTable(table)
	if kb.Empty() {
		return nil, fmt.Errorf("%w: %q contains no skills", ErrUnavailable, path)
	}
	return kb, nil
}

func readRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrUnavailable, path, err)
	}
	return rows, nil
}
