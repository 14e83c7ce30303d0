// internal/app/store/about/aboutstore.go
package aboutstore

import (
	"context"
	"errors"
	"time"

	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no about document has been seeded yet.
var ErrNotFound = errors.New("about content not found")

// Store provides access to the about_content singleton.
type Store struct {
	c *mongo.Collection
}

// New creates an about store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about_content")}
}

// Get returns the about document.
func (s *Store) Get(ctx context.Context) (models.AboutContent, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var about models.AboutContent
	err := s.c.FindOne(ctx, bson.M{}).Decode(&about)
	if err == mongo.ErrNoDocuments {
		return models.AboutContent{}, ErrNotFound
	}
	if err != nil {
		return models.AboutContent{}, err
	}
	return about, nil
}

// Patch merges the provided fields into the existing document. Slice fields
// replace wholesale when present; an explicit empty slice clears the field.
func (s *Store) Patch(ctx context.Context, patch models.AboutPatch) (models.AboutContent, error) {
	set := bson.M{}
	if patch.Label != nil {
		set["label"] = *patch.Label
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.TitleHighlight != nil {
		set["title_highlight"] = *patch.TitleHighlight
	}
	if patch.GraphicText != nil {
		set["graphic_text"] = *patch.GraphicText
	}
	if patch.GraphicSubtext != nil {
		set["graphic_subtext"] = *patch.GraphicSubtext
	}
	if patch.Paragraphs != nil {
		set["paragraphs"] = *patch.Paragraphs
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}
	if patch.PartnerLogos != nil {
		set["partner_logos"] = *patch.PartnerLogos
	}

	if len(set) == 0 {
		return s.Get(ctx)
	}
	set["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	res, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{"$set": set})
	if err != nil {
		return models.AboutContent{}, err
	}
	if res.MatchedCount == 0 {
		return models.AboutContent{}, ErrNotFound
	}
	return s.Get(ctx)
}

// Seed inserts the about document if none exists.
func (s *Store) Seed(ctx context.Context, about models.AboutContent) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.c.InsertOne(ctx, about)
	return err
}
