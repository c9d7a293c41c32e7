package textextract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "John Smith\njohn.smith@email.com"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Format != FormatText {
		t.Fatalf("format: got %q", doc.Format)
	}
	if doc.Text != content {
		t.Fatalf("text: got %q", doc.Text)
	}
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	if _, err := FromFile("resume.odt"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFixBrokenLines(t *testing.T) {
	in := "Machine\nLearning\nEngineer with five years of model work\n" +
		"SKILLS\nPython\nReact"
	want := "Machine Learning\nEngineer with five years of model work\n" +
		"SKILLS\nPython React"

	if got := FixBrokenLines(in); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFixBrokenLinesKeepsContactLines(t *testing.T) {
	in := "John Smith\njohn.smith@email.com\n+1 415 555 0100"
	if got := FixBrokenLines(in); got != in {
		t.Fatalf("contact lines must stay separate, got:\n%q", got)
	}
}

func TestDocumentXMLText(t *testing.T) {
	raw := []byte(`<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>John Smith</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Python, </w:t></w:r><w:r><w:t>React</w:t></w:r></w:p>` +
		`</w:body>` +
		`</w:document>`)

	got, err := documentXMLText(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "John Smith\nPython, React"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDocumentXMLTextEmpty(t *testing.T) {
	if _, err := documentXMLText([]byte("<w:document></w:document>")); err == nil {
		t.Fatal("expected error for empty document")
	}
}
