package contactinfostore_test

import (
	"testing"

	contactinfostore "github.com/brightforge/studiohub/internal/app/store/contactinfo"
	"github.com/brightforge/studiohub/internal/domain/models"
	"github.com/brightforge/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGet_ReturnsDefaultsWhenEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactinfostore.New(db)
	ctx := testutil.TestContext(t)

	info, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := models.DefaultContactInfo()
	if info.Email != want.Email {
		t.Errorf("Email: got %q, want default %q", info.Email, want.Email)
	}
	if info.Heading != want.Heading {
		t.Errorf("Heading: got %q, want default %q", info.Heading, want.Heading)
	}
}

func TestUpsert_CreatesThenReplaces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactinfostore.New(db)
	ctx := testutil.TestContext(t)

	info := models.ContactInfo{
		Heading:    "Say hello",
		Subheading: "We reply within a day.",
		Email:      "team@example.com",
		Socials:    models.Socials{Twitter: "https://twitter.com/example"},
	}
	saved, err := store.Upsert(ctx, info)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if saved.Email != "team@example.com" {
		t.Errorf("Email: got %q, want %q", saved.Email, "team@example.com")
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after upsert")
	}

	// Wholesale replacement: socials omitted on the second write are cleared.
	info.Socials = models.Socials{}
	info.Email = "hello@example.com"
	saved, err = store.Upsert(ctx, info)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if saved.Email != "hello@example.com" {
		t.Errorf("Email: got %q, want %q", saved.Email, "hello@example.com")
	}
	if saved.Socials.Twitter != "" {
		t.Errorf("Socials.Twitter should be cleared, got %q", saved.Socials.Twitter)
	}

	count, err := db.Collection("contact_info").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("document count: got %d, want 1", count)
	}
}
