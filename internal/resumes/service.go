package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Known layout identifiers. The render package owns their meaning; the
// store only validates membership.
const (
	LayoutClassic   = "classic"
	LayoutTwoColumn = "two-column-reorderable"
	LayoutSidebar   = "sidebar"
)

const defaultSecondaryColor = "purple-500"

// Service enforces ownership and patch semantics over a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create allocates a new empty resume for the owner. Title is required.
func (s *Service) Create(ctx context.Context, ownerID, title string) (Resume, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Resume{}, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Resume{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	res := Resume{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Title:          title,
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []string{},
		LayoutID:       LayoutClassic,
		SecondaryColor: defaultSecondaryColor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Get returns the resume if it exists and belongs to the owner.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Resume, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if res.OwnerID != ownerID {
		return Resume{}, ErrForbidden
	}
	return res, nil
}

// List returns summaries of the owner's resumes in creation order.
func (s *Service) List(ctx context.Context, ownerID string) ([]Summary, error) {
	records, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(records))
	for _, res := range records {
		out = append(out, res.summary())
	}
	return out, nil
}

// Patch merges the given fields into the stored record. Scalar fields are
// overwritten when present; array fields are replaced wholly. ID, owner
// and creation time are never touched.
func (s *Service) Patch(ctx context.Context, ownerID, id string, patch Patch) (Resume, error) {
	res, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Resume{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Resume{}, fmt.Errorf("%w: title cannot be blank", ErrInvalidInput)
		}
		res.Title = title
	}
	applyString(&res.FullName, patch.FullName)
	applyString(&res.Profession, patch.Profession)
	applyString(&res.Email, patch.Email)
	applyString(&res.Phone, patch.Phone)
	applyString(&res.City, patch.City)
	applyString(&res.LinkedIn, patch.LinkedIn)
	applyString(&res.Website, patch.Website)
	applyString(&res.Summary, patch.Summary)
	applyString(&res.SecondaryColor, patch.SecondaryColor)

	if patch.LayoutID != nil {
		layout := strings.TrimSpace(*patch.LayoutID)
		if !validLayout(layout) {
			return Resume{}, fmt.Errorf("%w: unknown layout %q", ErrInvalidInput, layout)
		}
		res.LayoutID = layout
	}
	if patch.Experience != nil {
		res.Experience = append([]Experience{}, (*patch.Experience)...)
	}
	if patch.Education != nil {
		res.Education = append([]Education{}, (*patch.Education)...)
	}
	if patch.Skills != nil {
		res.Skills = DedupeSkills(*patch.Skills)
	}

	res.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Delete removes the owner's resume. Deleting an absent id returns
// ErrNotFound so repeated deletes stay harmless for callers.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.OwnerID != ownerID {
		return ErrForbidden
	}
	err = s.Repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		// Lost a race with another delete of the same record.
		return nil
	}
	return err
}

// DedupeSkills drops duplicate entries (case-sensitive exact match) while
// preserving first-occurrence order. Blank entries are dropped.
func DedupeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, skill := range in {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

func validLayout(layout string) bool {
	switch layout {
	case LayoutClassic, LayoutTwoColumn, LayoutSidebar:
		return true
	default:
		return false
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
