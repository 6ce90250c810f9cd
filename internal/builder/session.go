package builder

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"resumate-backend/internal/render"
	"resumate-backend/internal/resumes"
)

// PersonalInfo is the first form page.
type PersonalInfo struct {
	FullName   string `json:"fullName"`
	Profession string `json:"profession"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	LinkedIn   string `json:"linkedin"`
	Website    string `json:"website"`
}

// Session is one user's in-progress edit of a resume. All fields are plain
// data so the session serializes to JSON for the store; mutation goes
// through the service, which serializes access per session.
type Session struct {
	ResumeID  string         `json:"resumeId"`
	OwnerID   string         `json:"ownerId"`
	Step      Step           `json:"step"`
	Draft     resumes.Resume `json:"draft"`
	Board     render.Board   `json:"board"`
	Completed bool           `json:"completed"`
	UpdatedAt time.Time      `json:"updatedAt"`

	// Per-entry keys let clients keep form rows apart across edits. They are
	// session-local and never written to the resume record.
	ExperienceKeys []string `json:"experienceKeys"`
	EducationKeys  []string `json:"educationKeys"`
}

// NewSession seeds a session from the stored record.
func NewSession(record resumes.Resume) *Session {
	s := &Session{
		ResumeID:  record.ID,
		OwnerID:   record.OwnerID,
		Step:      FirstStep,
		Draft:     record.Clone(),
		Board:     render.DefaultBoard(),
		UpdatedAt: time.Now().UTC(),
	}
	s.ExperienceKeys = freshKeys(len(record.Experience))
	s.EducationKeys = freshKeys(len(record.Education))
	return s
}

// SetPersonal overwrites the personal page fields on the draft.
func (s *Session) SetPersonal(p PersonalInfo) {
	s.Draft.FullName = p.FullName
	s.Draft.Profession = p.Profession
	s.Draft.Email = p.Email
	s.Draft.Phone = p.Phone
	s.Draft.City = p.City
	s.Draft.LinkedIn = p.LinkedIn
	s.Draft.Website = p.Website
	s.touch()
}

// SetSummary overwrites the summary text.
func (s *Session) SetSummary(text string) {
	s.Draft.Summary = text
	s.touch()
}

// SetLayout switches the presentation template. Returns false for unknown
// layout ids.
func (s *Session) SetLayout(layoutID, secondaryColor string) bool {
	if _, err := render.ParseLayout(layoutID); err != nil {
		return false
	}
	if layoutID != "" {
		s.Draft.LayoutID = layoutID
	}
	if secondaryColor != "" {
		s.Draft.SecondaryColor = secondaryColor
	}
	s.touch()
	return true
}

// AddExperience appends an entry and returns its session key.
func (s *Session) AddExperience(e resumes.Experience) string {
	key := uuid.NewString()
	s.Draft.Experience = append(s.Draft.Experience, e)
	s.ExperienceKeys = append(s.ExperienceKeys, key)
	s.touch()
	return key
}

// UpdateExperience replaces the entry at index. Out-of-range is a no-op
// returning false.
func (s *Session) UpdateExperience(index int, e resumes.Experience) bool {
	if index < 0 || index >= len(s.Draft.Experience) {
		return false
	}
	s.Draft.Experience[index] = e
	s.touch()
	return true
}

// RemoveExperience splices out the entry at index. Out-of-range is a no-op.
func (s *Session) RemoveExperience(index int) {
	if index < 0 || index >= len(s.Draft.Experience) {
		return
	}
	s.Draft.Experience = append(s.Draft.Experience[:index], s.Draft.Experience[index+1:]...)
	s.ExperienceKeys = append(s.ExperienceKeys[:index], s.ExperienceKeys[index+1:]...)
	s.touch()
}

// AddEducation appends an entry and returns its session key.
func (s *Session) AddEducation(e resumes.Education) string {
	key := uuid.NewString()
	s.Draft.Education = append(s.Draft.Education, e)
	s.EducationKeys = append(s.EducationKeys, key)
	s.touch()
	return key
}

// UpdateEducation replaces the entry at index. Out-of-range is a no-op
// returning false.
func (s *Session) UpdateEducation(index int, e resumes.Education) bool {
	if index < 0 || index >= len(s.Draft.Education) {
		return false
	}
	s.Draft.Education[index] = e
	s.touch()
	return true
}

// RemoveEducation splices out the entry at index. Out-of-range is a no-op.
func (s *Session) RemoveEducation(index int) {
	if index < 0 || index >= len(s.Draft.Education) {
		return
	}
	s.Draft.Education = append(s.Draft.Education[:index], s.Draft.Education[index+1:]...)
	s.EducationKeys = append(s.EducationKeys[:index], s.EducationKeys[index+1:]...)
	s.touch()
}

// AddSkill appends a skill. Blank values and exact duplicates are no-ops,
// so repeated submits of the same chip leave one entry.
func (s *Session) AddSkill(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	for _, existing := range s.Draft.Skills {
		if existing == value {
			return
		}
	}
	s.Draft.Skills = append(s.Draft.Skills, value)
	s.touch()
}

// RemoveSkill drops the first exact match. Unknown values are a no-op.
func (s *Session) RemoveSkill(value string) {
	for i, existing := range s.Draft.Skills {
		if existing == value {
			s.Draft.Skills = append(s.Draft.Skills[:i], s.Draft.Skills[i+1:]...)
			s.touch()
			return
		}
	}
}

// MoveSection relocates a board section. Same-slot moves are a no-op.
func (s *Session) MoveSection(srcList string, srcIndex int, dstList string, dstIndex int) error {
	next, err := s.Board.Move(srcList, srcIndex, dstList, dstIndex)
	if err != nil {
		return err
	}
	s.Board = next
	s.touch()
	return nil
}

// Advance moves to the next step after a successful save.
func (s *Session) Advance() {
	s.Step = s.Step.Next()
	s.touch()
}

// Retreat moves to the previous step. Purely local; never touches the store.
func (s *Session) Retreat() {
	s.Step = s.Step.Prev()
	s.touch()
}

// BuildPatch projects the full draft into a store patch. Arrays are sent
// whole so the stored record always matches the draft after a save.
func (s *Session) BuildPatch() resumes.Patch {
	d := s.Draft
	experience := append([]resumes.Experience(nil), d.Experience...)
	education := append([]resumes.Education(nil), d.Education...)
	skills := append([]string(nil), d.Skills...)
	if experience == nil {
		experience = []resumes.Experience{}
	}
	if education == nil {
		education = []resumes.Education{}
	}
	if skills == nil {
		skills = []string{}
	}
	return resumes.Patch{
		Title:          &d.Title,
		FullName:       &d.FullName,
		Profession:     &d.Profession,
		Email:          &d.Email,
		Phone:          &d.Phone,
		City:           &d.City,
		LinkedIn:       &d.LinkedIn,
		Website:        &d.Website,
		Summary:        &d.Summary,
		Experience:     &experience,
		Education:      &education,
		Skills:         &skills,
		LayoutID:       &d.LayoutID,
		SecondaryColor: &d.SecondaryColor,
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

func freshKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}
	return keys
}
