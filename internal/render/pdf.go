package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"resumate-backend/internal/resumes"
	"resumate-backend/internal/shared/util"
)

// PDF renders the resume into an A4 document. The board's section order is
// flattened into a single column, left list first, so the export follows the
// arrangement the user built. Blank fields are skipped without error.
func PDF(r resumes.Resume, layout Layout, board Board) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 16, 18)
	doc.SetAutoPageBreak(true, 18)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	accent := accentRGB(r.SecondaryColor)
	w := pdfWriter{doc: doc, tr: tr, accent: accent}

	w.identity(r)
	for _, section := range sectionOrder(layout, board) {
		if !HasContent(r, section) {
			continue
		}
		w.section(r, section)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFileName builds the download name from the resume's owner name,
// falling back to the title.
func ExportFileName(r resumes.Resume) string {
	base := strings.TrimSpace(r.FullName)
	if base == "" {
		base = strings.TrimSpace(r.Title)
	}
	clean, err := util.SanitizeFileName(base)
	if err != nil {
		clean = "Resume"
	}
	return clean + " Resume.pdf"
}

// sectionOrder flattens the layout into the order sections print in.
func sectionOrder(layout Layout, board Board) []Section {
	switch layout {
	case LayoutTwoColumn:
		return board.Normalize().Sections()
	case LayoutSidebar:
		return []Section{SectionSkills, SectionSummary, SectionExperience, SectionEducation}
	default:
		return []Section{SectionSummary, SectionExperience, SectionEducation, SectionSkills}
	}
}

type pdfWriter struct {
	doc    *fpdf.Fpdf
	tr     func(string) string
	accent [3]int
}

func (w *pdfWriter) identity(r resumes.Resume) {
	doc := w.doc
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(31, 41, 55)
	doc.CellFormat(0, 10, w.tr(r.FullName), "", 1, "L", false, 0, "")

	if r.Profession != "" {
		doc.SetFont("Helvetica", "", 13)
		doc.SetTextColor(w.accent[0], w.accent[1], w.accent[2])
		doc.CellFormat(0, 7, w.tr(r.Profession), "", 1, "L", false, 0, "")
	}

	contact := joinNonEmpty(" • ", r.Email, r.Phone, r.City, r.LinkedIn, r.Website)
	if contact != "" {
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(75, 85, 99)
		doc.MultiCell(0, 5, w.tr(contact), "", "L", false)
	}
	doc.Ln(2)
}

func (w *pdfWriter) section(r resumes.Resume, s Section) {
	switch s {
	case SectionSummary:
		w.heading("Summary")
		w.body(r.Summary)
	case SectionExperience:
		w.heading("Experience")
		for _, e := range r.Experience {
			w.entryTitle(e.Role)
			w.entrySub(e.Company)
			w.entryDates(dateRange(e.Start, e.End))
			w.body(e.Description)
			w.doc.Ln(1)
		}
	case SectionEducation:
		w.heading("Education")
		for _, e := range r.Education {
			w.entryTitle(joinNonEmpty(" – ", e.Degree, e.Institute))
			w.entrySub(joinNonEmpty(" | ", e.Branch, gpaLine(e.GPA)))
			w.entryDates(e.End)
			w.doc.Ln(1)
		}
	case SectionSkills:
		w.heading("Skills")
		w.body(strings.Join(r.Skills, ", "))
	}
}

func (w *pdfWriter) heading(title string) {
	doc := w.doc
	doc.Ln(3)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(w.accent[0], w.accent[1], w.accent[2])
	doc.CellFormat(0, 6, w.tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")
	doc.SetDrawColor(w.accent[0], w.accent[1], w.accent[2])
	x, y := doc.GetX(), doc.GetY()
	doc.Line(x, y, 210-18, y)
	doc.Ln(2)
}

func (w *pdfWriter) entryTitle(text string) {
	if text == "" {
		return
	}
	w.doc.SetFont("Helvetica", "B", 10.5)
	w.doc.SetTextColor(31, 41, 55)
	w.doc.CellFormat(0, 5.5, w.tr(text), "", 1, "L", false, 0, "")
}

func (w *pdfWriter) entrySub(text string) {
	if text == "" {
		return
	}
	w.doc.SetFont("Helvetica", "I", 10)
	w.doc.SetTextColor(75, 85, 99)
	w.doc.CellFormat(0, 5, w.tr(text), "", 1, "L", false, 0, "")
}

func (w *pdfWriter) entryDates(text string) {
	if text == "" {
		return
	}
	w.doc.SetFont("Helvetica", "", 9)
	w.doc.SetTextColor(107, 114, 128)
	w.doc.CellFormat(0, 4.5, w.tr(text), "", 1, "L", false, 0, "")
}

func (w *pdfWriter) body(text string) {
	if text == "" {
		return
	}
	w.doc.SetFont("Helvetica", "", 10)
	w.doc.SetTextColor(31, 41, 55)
	w.doc.MultiCell(0, 5, w.tr(text), "", "L", false)
}

func gpaLine(gpa string) string {
	if strings.TrimSpace(gpa) == "" {
		return ""
	}
	return "GPA: " + gpa
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// accentRGB converts the accent hex to RGB for fpdf.
func accentRGB(name string) [3]int {
	hex := accentFor(name)
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return [3]int{168, 85, 247}
	}
	return [3]int{r, g, b}
}
