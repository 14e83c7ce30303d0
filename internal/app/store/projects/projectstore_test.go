package projectstore_test

import (
	"context"
	"testing"

	counterstore "github.com/brightforge/studiohub/internal/app/store/counters"
	projectstore "github.com/brightforge/studiohub/internal/app/store/projects"
	"github.com/brightforge/studiohub/internal/domain/models"
	"github.com/brightforge/studiohub/internal/testutil"
)

func newStore(t *testing.T) (*projectstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return projectstore.New(db, counterstore.New(db)), testutil.NewFixtures(t, db)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestInsert_AllocatesSequentialIDs(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	first, err := store.Insert(ctx, models.Project{Title: "Alpha"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	second, err := store.Insert(ctx, models.Project{Title: "Beta"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids: got %d, %d, want 1, 2", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on insert")
	}
}

func TestInsert_ContinuesAfterExistingIDs(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)

	// Data imported with gaps: ids {1, 3, 7}.
	fx.CreateProject(ctx, 1, "One", 0)
	fx.CreateProject(ctx, 3, "Three", 1)
	fx.CreateProject(ctx, 7, "Seven", 2)

	p, err := store.Insert(ctx, models.Project{Title: "Eight"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if p.ID != 8 {
		t.Errorf("id after {1,3,7}: got %d, want 8", p.ID)
	}
}

func TestList_HonorsCanceledContext(t *testing.T) {
	store, _ := newStore(t)

	// Store methods add their own deadline; a caller's cancellation must
	// still win.
	ctx, cancel := context.WithCancel(testutil.TestContext(t))
	cancel()

	if _, err := store.List(ctx); err == nil {
		t.Error("List with a canceled context should fail")
	}
}

func TestList_SortsByOrderThenID(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)

	fx.CreateProject(ctx, 1, "C", 2)
	fx.CreateProject(ctx, 2, "A", 0)
	fx.CreateProject(ctx, 3, "B", 0)

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("got %d projects, want 3", len(projects))
	}
	// order 0 first (ties on id), then order 2.
	if projects[0].ID != 2 || projects[1].ID != 3 || projects[2].ID != 1 {
		t.Errorf("sort order: got ids %d, %d, %d, want 2, 3, 1",
			projects[0].ID, projects[1].ID, projects[2].ID)
	}
}

func TestList_EmptyCollection(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if projects == nil {
		t.Error("List should return an empty slice, not nil")
	}
	if len(projects) != 0 {
		t.Errorf("got %d projects, want 0", len(projects))
	}
}

func TestUpdate_MergesPatch(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)
	fx.CreateProject(ctx, 1, "Original", 0)

	updated, err := store.Update(ctx, 1, models.ProjectPatch{
		Title: strPtr("Renamed"),
		Year:  intPtr(2025),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("Title: got %q, want %q", updated.Title, "Renamed")
	}
	if updated.Year != 2025 {
		t.Errorf("Year: got %d, want 2025", updated.Year)
	}
	if updated.Category != "Web" {
		t.Errorf("Category should be untouched: got %q", updated.Category)
	}
	if updated.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after update")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	_, err := store.Update(ctx, 42, models.ProjectPatch{Title: strPtr("X")})
	if err != projectstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)
	fx.CreateProject(ctx, 1, "Doomed", 0)

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, 1); err != projectstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, 1); err != projectstore.ErrNotFound {
		t.Errorf("second delete should report ErrNotFound, got %v", err)
	}
}

func TestReorder(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)

	fx.CreateProject(ctx, 1, "A", 0)
	fx.CreateProject(ctx, 2, "B", 1)
	fx.CreateProject(ctx, 3, "C", 2)

	applied, err := store.Reorder(ctx, []models.ProjectOrder{
		{ID: 1, Order: 2},
		{ID: 3, Order: 0},
		{ID: 99, Order: 5}, // unknown id, skipped
	})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied: got %d, want 2", applied)
	}

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if projects[0].ID != 3 || projects[2].ID != 1 {
		t.Errorf("reorder not applied: got ids %d, %d, %d",
			projects[0].ID, projects[1].ID, projects[2].ID)
	}
}

func TestReorder_Empty(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	applied, err := store.Reorder(ctx, nil)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("applied: got %d, want 0", applied)
	}
}
