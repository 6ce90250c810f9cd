package resumes

import "time"

// Experience is one work history entry. Entries are ordered and addressed
// by position within the resume; there is no stable per-entry identity.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// Education is one education entry. The trailing date is always `end`.
type Education struct {
	Degree    string `json:"degree"`
	Institute string `json:"institute"`
	Branch    string `json:"branch,omitempty"`
	GPA       string `json:"gpa,omitempty"`
	End       string `json:"end,omitempty"`
}

// Resume is the canonical stored record. ID and OwnerID are immutable
// after creation.
type Resume struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"ownerId"`
	Title          string       `json:"title"`
	FullName       string       `json:"fullName"`
	Profession     string       `json:"profession"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	City           string       `json:"city"`
	LinkedIn       string       `json:"linkedin"`
	Website        string       `json:"website"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Skills         []string     `json:"skills"`
	LayoutID       string       `json:"layoutId"`
	SecondaryColor string       `json:"secondaryColor"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Summary is the listing projection used by the dashboard.
type Summary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FullName   string    `json:"fullName"`
	Profession string    `json:"profession"`
	LayoutID   string    `json:"layoutId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Patch is a partial update. Nil fields are left untouched; array fields
// replace the stored arrays wholly when present.
type Patch struct {
	Title          *string       `json:"title"`
	FullName       *string       `json:"fullName"`
	Profession     *string       `json:"profession"`
	Email          *string       `json:"email"`
	Phone          *string       `json:"phone"`
	City           *string       `json:"city"`
	LinkedIn       *string       `json:"linkedin"`
	Website        *string       `json:"website"`
	Summary        *string       `json:"summary"`
	Experience     *[]Experience `json:"experience"`
	Education      *[]Education  `json:"education"`
	Skills         *[]string     `json:"skills"`
	LayoutID       *string       `json:"layoutId"`
	SecondaryColor *string       `json:"secondaryColor"`
}

func (r Resume) summary() Summary {
	return Summary{
		ID:         r.ID,
		Title:      r.Title,
		FullName:   r.FullName,
		Profession: r.Profession,
		LayoutID:   r.LayoutID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Clone returns a deep copy so callers can mutate freely.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]string(nil), r.Skills...)
	return out
}
