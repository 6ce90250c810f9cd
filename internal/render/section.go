package render

import "resumate-backend/internal/resumes"

// Section identifies one movable block of a rendered resume.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// KnownSection reports whether s names a renderable section.
func KnownSection(s Section) bool {
	switch s {
	case SectionSummary, SectionExperience, SectionEducation, SectionSkills:
		return true
	}
	return false
}

// HasContent reports whether the resume has anything to show for the section.
// Empty sections are rendered as headings with no body, never as errors.
func HasContent(r resumes.Resume, s Section) bool {
	switch s {
	case SectionSummary:
		return r.Summary != ""
	case SectionExperience:
		return len(r.Experience) > 0
	case SectionEducation:
		return len(r.Education) > 0
	case SectionSkills:
		return len(r.Skills) > 0
	}
	return false
}
