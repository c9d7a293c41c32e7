package textextract

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/lukasjarosch/go-docx"
)

// Format identifies the source document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "text"
)

// Document is the text pulled out of an uploaded resume file.
type Document struct {
	Text   string
	Format Format
}

// FromFile extracts plain text from a PDF, DOCX or plain-text resume,
// dispatching on the file extension.
func FromFile(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDOCX(path)
	case ".txt", ".text", ".md":
		return fromText(path)
	default:
		return nil, fmt.Errorf("unsupported resume format %q", filepath.Ext(path))
	}
}

func fromPDF(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %q: %w", path, err)
	}
	defer doc.Close()

	var pages []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("reading pdf page %d of %q: %w", i+1, path, err)
		}
		pages = append(pages, text)
	}

	return &Document{
		Text:   FixBrokenLines(strings.Join(pages, "\n")),
		Format: FormatPDF,
	}, nil
}

func fromDOCX(path string) (*Document, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx %q: %w", path, err)
	}

	text, err := documentXMLText(doc.GetFile("word/document.xml"))
	if err != nil {
		return nil, fmt.Errorf("reading docx %q: %w", path, err)
	}

	return &Document{Text: text, Format: FormatDOCX}, nil
}

func fromText(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume %q: %w", path, err)
	}
	return &Document{Text: string(data), Format: FormatText}, nil
}

// documentXMLText walks the WordprocessingML body and collects the character
// data of w:t runs, one output line per w:p paragraph.
func documentXMLText(raw []byte) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(raw)))

	var (
		b      strings.Builder
		inText bool
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("document contains no text")
	}
	return text, nil
}

// FixBrokenLines rejoins word fragments that PDF extraction splits across
// lines: consecutive one-or-two-word lines are merged into a single line.
// Headings, contact lines and anything with digits stay on their own line so
// the line-oriented field heuristics still see them separately.
func FixBrokenLines(text string) string {
	lines := strings.Split(text, "\n")

	var (
		out    []string
		buffer string
	)
	flush := func() {
		if buffer != "" {
			out = append(out, buffer)
			buffer = ""
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if len(strings.Fields(line)) <= 2 && isMergeable(line) {
			if buffer != "" {
				buffer += " "
			}
			buffer += line
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n")
}

func isMergeable(line string) bool {
	if strings.HasSuffix(line, ":") || strings.ContainsAny(line, "@0123456789") {
		return false
	}
	// Short all-caps lines are section headings.
	upper := strings.ToUpper(line)
	if line == upper && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return false
	}
	return true
}
