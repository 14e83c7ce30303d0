// internal/app/store/hero/herostore.go
package herostore

import (
	"context"
	"errors"
	"time"

	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no hero document has been seeded yet.
var ErrNotFound = errors.New("hero content not found")

// Store provides access to the hero_content singleton.
type Store struct {
	c *mongo.Collection
}

// New creates a hero store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("hero_content")}
}

// Get returns the hero document, located by empty filter since only one
// document of this kind exists.
func (s *Store) Get(ctx context.Context) (models.HeroContent, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var hero models.HeroContent
	err := s.c.FindOne(ctx, bson.M{}).Decode(&hero)
	if err == mongo.ErrNoDocuments {
		return models.HeroContent{}, ErrNotFound
	}
	if err != nil {
		return models.HeroContent{}, err
	}
	return hero, nil
}

// Patch merges the provided fields into the existing document. Only non-nil
// patch fields are written; nested CTA sub-fields merge independently. The
// hero is never created here — seeding happens out of band.
func (s *Store) Patch(ctx context.Context, patch models.HeroPatch) (models.HeroContent, error) {
	set := bson.M{}
	if patch.Headline1 != nil {
		set["headline1"] = *patch.Headline1
	}
	if patch.Headline2 != nil {
		set["headline2"] = *patch.Headline2
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	applyCTA(set, "primary_cta", patch.PrimaryCTA)
	applyCTA(set, "secondary_cta", patch.SecondaryCTA)

	if len(set) == 0 {
		return s.Get(ctx)
	}
	now := time.Now().UTC()
	set["updated_at"] = now

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	res, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{"$set": set})
	if err != nil {
		return models.HeroContent{}, err
	}
	if res.MatchedCount == 0 {
		return models.HeroContent{}, ErrNotFound
	}
	return s.Get(ctx)
}

func applyCTA(set bson.M, prefix string, cta *models.CTAPatch) {
	if cta == nil {
		return
	}
	if cta.Text != nil {
		set[prefix+".text"] = *cta.Text
	}
	if cta.Href != nil {
		set[prefix+".href"] = *cta.Href
	}
}

// Seed inserts the hero document if none exists. Used by fixtures and the
// one-time seed step.
func (s *Store) Seed(ctx context.Context, hero models.HeroContent) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.c.InsertOne(ctx, hero)
	return err
}
