package resumes

import (
	"context"
	"errors"
	"testing"
)

func TestCreateGetRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "My Resume")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id to be assigned")
	}

	got, err := svc.Get(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "My Resume" {
		t.Fatalf("expected title preserved, got %q", got.Title)
	}
	if got.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", got.OwnerID)
	}
	if got.LayoutID != LayoutClassic {
		t.Fatalf("expected default layout, got %q", got.LayoutID)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Create(context.Background(), "user-1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetForeignResumeForbidden(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "Mine")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, "user-2", created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPatchMergesScalarsAndReplacesArrays(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "Draft")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	fullName := "Jane Doe"
	experience := []Experience{
		{Role: "Engineer", Company: "Acme", Start: "2020", End: "2022"},
	}
	updated, err := svc.Patch(ctx, "user-1", created.ID, Patch{
		FullName:   &fullName,
		Experience: &experience,
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if updated.FullName != "Jane Doe" {
		t.Fatalf("expected full name merged, got %q", updated.FullName)
	}
	if updated.Title != "Draft" {
		t.Fatalf("expected untouched title preserved, got %q", updated.Title)
	}
	if len(updated.Experience) != 1 || updated.Experience[0].Company != "Acme" {
		t.Fatalf("expected experience replaced, got %+v", updated.Experience)
	}

	// A later patch with a shorter array replaces wholly, never appends.
	empty := []Experience{}
	updated, err = svc.Patch(ctx, "user-1", created.ID, Patch{Experience: &empty})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if len(updated.Experience) != 0 {
		t.Fatalf("expected experience emptied, got %+v", updated.Experience)
	}
}

func TestPatchRejectsBlankTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "Draft")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	blank := "  "
	if _, err := svc.Patch(ctx, "user-1", created.ID, Patch{Title: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPatchRejectsUnknownLayout(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "Draft")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	layout := "three-column"
	if _, err := svc.Patch(ctx, "user-1", created.ID, Patch{LayoutID: &layout}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPatchDedupesSkills(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "Draft")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	skills := []string{"Go", "SQL", "Go", "go", ""}
	updated, err := svc.Patch(ctx, "user-1", created.ID, Patch{Skills: &skills})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	want := []string{"Go", "SQL", "go"}
	if len(updated.Skills) != len(want) {
		t.Fatalf("expected %v, got %v", want, updated.Skills)
	}
	for i, skill := range want {
		if updated.Skills[i] != skill {
			t.Fatalf("expected %v, got %v", want, updated.Skills)
		}
	}
}

func TestDeleteUnknownLeavesListUnchanged(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", "Keep me"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "user-1", "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Keep me" {
		t.Fatalf("expected list unchanged, got %+v", list)
	}
}

func TestDeleteForeignResumeForbidden(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "Mine")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "user-2", created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListReturnsCreationOrder(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(ctx, "user-1", title); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 resumes, got %d", len(list))
	}
	for i, want := range []string{"first", "second", "third"} {
		if list[i].Title != want {
			t.Fatalf("expected %q at position %d, got %q", want, i, list[i].Title)
		}
	}
}
