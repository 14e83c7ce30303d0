package navbarstore_test

import (
	"testing"

	navbarstore "github.com/brightforge/studiohub/internal/app/store/navbar"
	"github.com/brightforge/studiohub/internal/domain/models"
	"github.com/brightforge/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGet_ReturnsDefaultsWhenEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := navbarstore.New(db)
	ctx := testutil.TestContext(t)

	navbar, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := models.DefaultNavbar()
	if navbar.Logo.Text != want.Logo.Text {
		t.Errorf("Logo.Text: got %q, want default %q", navbar.Logo.Text, want.Logo.Text)
	}
	if len(navbar.Links) != len(want.Links) {
		t.Errorf("Links: got %d entries, want %d", len(navbar.Links), len(want.Links))
	}
}

func TestUpsert_CreatesThenReplaces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := navbarstore.New(db)
	ctx := testutil.TestContext(t)

	first := models.NavbarContent{
		Logo:  models.NavbarLogo{Text: "Studio"},
		Links: []models.NavLink{{Name: "Work", Href: "#work"}},
		CTA:   models.CTA{Text: "Hire us", Href: "#contact"},
	}
	saved, err := store.Upsert(ctx, first)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if saved.Logo.Text != "Studio" {
		t.Errorf("Logo.Text: got %q, want %q", saved.Logo.Text, "Studio")
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after upsert")
	}

	// A second upsert replaces wholesale: the old link list is gone.
	second := first
	second.Links = []models.NavLink{
		{Name: "About", Href: "#about"},
		{Name: "Team", Href: "#team"},
	}
	saved, err = store.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if len(saved.Links) != 2 {
		t.Fatalf("Links: got %d entries, want 2", len(saved.Links))
	}
	if saved.Links[0].Name != "About" {
		t.Errorf("Links[0].Name: got %q, want %q", saved.Links[0].Name, "About")
	}

	// Only one document may ever exist.
	count, err := db.Collection("navbar_content").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("document count: got %d, want 1", count)
	}
}
