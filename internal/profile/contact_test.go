package profile

import "testing"

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"reach me at dev.lead+jobs@example.co.uk anytime", "dev.lead+jobs@example.co.uk"},
		{"first a@b.io then c@d.io", "a@b.io"},
		{"no address here", ""},
	}
	for _, tt := range tests {
		if got := extractEmail(tt.text); got != tt.want {
			t.Fatalf("extractEmail(%q): got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractPhoneLabeled(t *testing.T) {
	got := extractPhone("Phone: +91 98765-43210\nEmail: x@y.com")
	if digitsOf(got) != "919876543210" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractPhoneGeneric(t *testing.T) {
	tests := []struct {
		text       string
		wantDigits string
	}{
		{"+1 415 555 0100", "14155550100"},
		{"(415) 555-0100", "4155550100"},
		{"call 9876543210 today", "9876543210"},
	}
	for _, tt := range tests {
		got := extractPhone(tt.text)
		if digitsOf(got) != tt.wantDigits {
			t.Fatalf("extractPhone(%q): got %q, want digits %q", tt.text, got, tt.wantDigits)
		}
	}
}

func TestExtractPhoneRejectsImplausible(t *testing.T) {
	// Too few digits for a phone number even next to a label.
	if got := extractPhone("Contact: 12345"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestCleanText(t *testing.T) {
	in := "Check https://example.com/cv and ping @me #hiring — résumé!!"
	got := CleanText(in)
	want := "Check and ping r sum"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
