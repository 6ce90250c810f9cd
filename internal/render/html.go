package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resumate-backend/internal/resumes"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("resume").Funcs(template.FuncMap{
	"dateRange": dateRange,
}).ParseFS(templateFS, "templates/*.tmpl"))

// sectionView pairs a section id with the resume so templates can dispatch
// on the section kind.
type sectionView struct {
	Kind   string
	Resume resumes.Resume
}

type pageData struct {
	Resume resumes.Resume
	Accent string
	Left   []sectionView
	Right  []sectionView
	Main   []sectionView
}

// HTML renders the resume with the given layout and board into a full HTML
// document. Blank fields render as blanks; a resume with no content still
// produces a valid page.
func HTML(r resumes.Resume, layout Layout, board Board) ([]byte, error) {
	board = board.Normalize()
	data := pageData{
		Resume: r,
		Accent: accentFor(r.SecondaryColor),
	}

	var name string
	switch layout {
	case LayoutTwoColumn:
		name = "twocolumn.tmpl"
		data.Left = views(r, board.Left)
		data.Right = views(r, board.Right)
	case LayoutSidebar:
		name = "sidebar.tmpl"
		data.Main = views(r, []Section{SectionSummary, SectionExperience, SectionEducation})
	default:
		name = "classic.tmpl"
		data.Main = views(r, []Section{SectionSummary, SectionExperience, SectionEducation, SectionSkills})
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// views drops sections with nothing to show. Empty sections keep their board
// slot but are skipped when rendering.
func views(r resumes.Resume, sections []Section) []sectionView {
	out := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		if HasContent(r, s) {
			out = append(out, sectionView{Kind: string(s), Resume: r})
		}
	}
	return out
}

// dateRange joins the non-empty ends of a period with an en dash.
func dateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	default:
		return end
	}
}
