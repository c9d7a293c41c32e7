package profile

import "testing"

func TestExtractEducationRendering(t *testing.T) {
	text := "Bachelor of Technology in Computer Science from XYZ Institute of Technology, 2020"

	entries := extractEducation(text)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %v", len(entries), entries)
	}

	want := "B.Tech in Computer Science | XYZ Institute of Technology (2020)"
	if got := entries[0].String(); got != want {
		t.Fatalf("rendered entry:\n got %q\nwant %q", got, want)
	}
}

func TestExtractEducationSection(t *testing.T) {
	text := "Asha Verma\n" +
		"EDUCATION\n" +
		"Master of Science in Statistics, Delhi University, 2018\n" +
		"Bachelor of Science in Mathematics, Delhi University, 2016\n" +
		"SKILLS\n" +
		"Python, R, SQL"

	entries := extractEducation(text)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	if entries[0].Degree != "M.Sc" || entries[0].Year != "2018" {
		t.Fatalf("first entry: %+v", entries[0])
	}
	if entries[1].Degree != "B.Sc" || entries[1].Year != "2016" {
		t.Fatalf("second entry: %+v", entries[1])
	}
}

func TestExtractEducationDeduplicates(t *testing.T) {
	text := "B.Tech in Computer Science, 2019\nb.tech in computer science, 2019"

	entries := extractEducation(text)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %v", len(entries), entries)
	}
}

func TestExtractEducationIgnoresPreDegreeInstitution(t *testing.T) {
	// The school name precedes the degree keyword, so it belongs to a prior
	// qualification and must not be attached to the MBBS entry.
	text := "Little Flower School Secondary, MBBS 2019"

	entries := extractEducation(text)
	if len(entries) == 0 {
		t.Fatal("expected at least one entry")
	}
	if entries[0].Institution != "" {
		t.Fatalf("institution should be dropped, got %q", entries[0].Institution)
	}
}

func TestEducationEntryStringOmitsMissingParts(t *testing.T) {
	tests := []struct {
		entry EducationEntry
		want  string
	}{
		{EducationEntry{Degree: "MBA"}, "MBA"},
		{EducationEntry{Degree: "B.Sc", Field: "Physics"}, "B.Sc in Physics"},
		{EducationEntry{Degree: "Ph.D", Year: "2015"}, "Ph.D (2015)"},
		{EducationEntry{Degree: "MCA", Institution: "Pune University"}, "MCA | Pune University"},
	}
	for _, tt := range tests {
		if got := tt.entry.String(); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}
