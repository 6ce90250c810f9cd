package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"resumate-backend/internal/resumes"
)

func pdfText(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open pdf: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("extract pdf text: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("read pdf text: %v", err)
	}
	return buf.String()
}

func TestPDFContainsResumeContent(t *testing.T) {
	data, err := PDF(sampleResume(), LayoutClassic, DefaultBoard())
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}

	text := pdfText(t, data)
	for _, want := range []string{"Jane Doe", "Engineer", "Acme", "Go"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in pdf text, got: %s", want, text)
		}
	}
}

func TestPDFEmptyResume(t *testing.T) {
	empty := resumes.Resume{ID: "resume-1", OwnerID: "user-1", Title: "Untitled"}

	data, err := PDF(empty, LayoutClassic, DefaultBoard())
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}
}

func TestExportFileName(t *testing.T) {
	r := sampleResume()
	if got := ExportFileName(r); got != "Jane Doe Resume.pdf" {
		t.Fatalf("got %q", got)
	}

	r.FullName = ""
	if got := ExportFileName(r); got != "My Resume Resume.pdf" {
		t.Fatalf("got %q", got)
	}

	r.Title = "../../etc/passwd"
	if got := ExportFileName(r); got != "Resume Resume.pdf" {
		t.Fatalf("got %q", got)
	}
}
