package render

import (
	"strings"
	"testing"

	"resumate-backend/internal/resumes"
)

func sampleResume() resumes.Resume {
	return resumes.Resume{
		ID:         "resume-1",
		OwnerID:    "user-1",
		Title:      "My Resume",
		FullName:   "Jane Doe",
		Profession: "Software Engineer",
		Email:      "jane@example.com",
		Summary:    "Builds reliable backends.",
		Experience: []resumes.Experience{
			{Role: "Engineer", Company: "Acme", Start: "2020", End: "2022", Description: "Shipped things."},
		},
		Education: []resumes.Education{
			{Degree: "BSc", Institute: "State University", Branch: "CS", GPA: "3.8", End: "2019"},
		},
		Skills:         []string{"Go", "SQL"},
		LayoutID:       resumes.LayoutClassic,
		SecondaryColor: "purple-500",
	}
}

func TestClassicRendersRoleBeforeCompany(t *testing.T) {
	html, err := HTML(sampleResume(), LayoutClassic, DefaultBoard())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(html)

	role := strings.Index(page, "Engineer")
	company := strings.Index(page, "Acme")
	if role == -1 || company == -1 {
		t.Fatalf("expected role and company in output")
	}
	if role > company {
		t.Fatalf("expected role before company (role at %d, company at %d)", role, company)
	}
	if !strings.Contains(page, "2020 – 2022") {
		t.Fatalf("expected date range, got page without it")
	}
}

func TestClassicSectionOrderIsFixed(t *testing.T) {
	html, err := HTML(sampleResume(), LayoutClassic, DefaultBoard())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(html)

	order := []string{"Summary", "Experience", "Education", "Skills"}
	last := -1
	for _, heading := range order {
		at := strings.Index(page, "<h2>"+heading+"</h2>")
		if at == -1 {
			t.Fatalf("missing heading %q", heading)
		}
		if at < last {
			t.Fatalf("heading %q out of order", heading)
		}
		last = at
	}
}

func TestTwoColumnFollowsBoard(t *testing.T) {
	board := DefaultBoard()
	board, err := board.Move(ListRight, 0, ListLeft, 0)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}

	html, err := HTML(sampleResume(), LayoutTwoColumn, board)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(html)

	skills := strings.Index(page, "<h2>Skills</h2>")
	summary := strings.Index(page, "<h2>Summary</h2>")
	if skills == -1 || summary == -1 {
		t.Fatalf("expected both headings in output")
	}
	if skills > summary {
		t.Fatalf("expected skills before summary after the move")
	}
}

func TestEmptyResumeRendersWithoutError(t *testing.T) {
	empty := resumes.Resume{ID: "resume-1", OwnerID: "user-1", Title: "Untitled"}

	for _, layout := range []Layout{LayoutClassic, LayoutTwoColumn, LayoutSidebar} {
		html, err := HTML(empty, layout, DefaultBoard())
		if err != nil {
			t.Fatalf("HTML(%s): %v", layout, err)
		}
		if !strings.Contains(string(html), "<html") {
			t.Fatalf("HTML(%s): expected a document", layout)
		}
		// Empty sections are skipped entirely, not rendered as bare headings.
		if strings.Contains(string(html), "<h2>Experience</h2>") {
			t.Fatalf("HTML(%s): empty experience section should be skipped", layout)
		}
	}
}

func TestSidebarCarriesSkills(t *testing.T) {
	html, err := HTML(sampleResume(), LayoutSidebar, DefaultBoard())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "sidebar") || !strings.Contains(page, "<li>Go</li>") {
		t.Fatalf("expected skills in sidebar")
	}
}

func TestAccentFallback(t *testing.T) {
	if accentFor("not-a-color") != defaultAccent {
		t.Fatalf("expected fallback accent")
	}
	if accentFor("blue-500") == defaultAccent {
		t.Fatalf("expected named accent to resolve")
	}
}

func TestParseLayout(t *testing.T) {
	if _, err := ParseLayout("three-column"); err == nil {
		t.Fatal("expected error for unknown layout")
	}
	layout, err := ParseLayout("")
	if err != nil || layout != LayoutClassic {
		t.Fatalf("expected classic for empty id, got %v %v", layout, err)
	}
}
