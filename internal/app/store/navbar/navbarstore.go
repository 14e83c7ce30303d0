// internal/app/store/navbar/navbarstore.go
package navbarstore

import (
	"context"
	"time"

	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the navbar_content singleton.
type Store struct {
	c *mongo.Collection
}

// New creates a navbar store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("navbar_content")}
}

// Get returns the navbar document, falling back to built-in defaults when
// nothing has been stored yet. Public reads never 404 on navigation.
func (s *Store) Get(ctx context.Context) (models.NavbarContent, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var navbar models.NavbarContent
	err := s.c.FindOne(ctx, bson.M{}).Decode(&navbar)
	if err == mongo.ErrNoDocuments {
		return models.DefaultNavbar(), nil
	}
	if err != nil {
		return models.NavbarContent{}, err
	}
	return navbar, nil
}

// Upsert replaces the navbar document wholesale, creating it on first write.
func (s *Store) Upsert(ctx context.Context, navbar models.NavbarContent) (models.NavbarContent, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	now := time.Now().UTC()
	navbar.UpdatedAt = &now

	update := bson.M{"$set": bson.M{
		"logo":       navbar.Logo,
		"links":      navbar.Links,
		"cta":        navbar.CTA,
		"updated_at": navbar.UpdatedAt,
	}}
	_, err := s.c.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.NavbarContent{}, err
	}
	return s.Get(ctx)
}
