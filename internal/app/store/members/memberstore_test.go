package memberstore_test

import (
	"testing"

	counterstore "github.com/brightforge/studiohub/internal/app/store/counters"
	memberstore "github.com/brightforge/studiohub/internal/app/store/members"
	"github.com/brightforge/studiohub/internal/domain/models"
	"github.com/brightforge/studiohub/internal/testutil"
)

func newStore(t *testing.T) (*memberstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return memberstore.New(db, counterstore.New(db)), testutil.NewFixtures(t, db)
}

func strPtr(s string) *string { return &s }

func TestInsert_AllocatesSequentialIDs(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	first, err := store.Insert(ctx, models.Member{Name: "Ada"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	second, err := store.Insert(ctx, models.Member{Name: "Grace"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids: got %d, %d, want 1, 2", first.ID, second.ID)
	}
}

func TestInsert_ContinuesAfterExistingIDs(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)

	fx.CreateMember(ctx, 4, "Imported")

	m, err := store.Insert(ctx, models.Member{Name: "New"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if m.ID != 5 {
		t.Errorf("id after existing {4}: got %d, want 5", m.ID)
	}
}

func TestList_SortedByID(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)

	fx.CreateMember(ctx, 3, "Third")
	fx.CreateMember(ctx, 1, "First")

	members, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	if members[0].ID != 1 || members[1].ID != 3 {
		t.Errorf("sort order: got ids %d, %d, want 1, 3", members[0].ID, members[1].ID)
	}
}

func TestUpdate_RenameKeepsIdentity(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)
	fx.CreateMember(ctx, 1, "Old Name")

	// Renaming changes only the display attribute; id 1 still addresses
	// the same member.
	updated, err := store.Update(ctx, 1, models.MemberPatch{Name: strPtr("New Name")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ID != 1 {
		t.Errorf("ID: got %d, want 1", updated.ID)
	}
	if updated.Name != "New Name" {
		t.Errorf("Name: got %q, want %q", updated.Name, "New Name")
	}
	if updated.Role != "Engineer" {
		t.Errorf("Role should be untouched: got %q", updated.Role)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	_, err := store.Update(ctx, 9, models.MemberPatch{Name: strPtr("X")})
	if err != memberstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store, fx := newStore(t)
	ctx := testutil.TestContext(t)
	fx.CreateMember(ctx, 1, "Doomed")

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, 1); err != memberstore.ErrNotFound {
		t.Errorf("second delete should report ErrNotFound, got %v", err)
	}
}
