// internal/app/store/contactinfo/contactinfostore.go
package contactinfostore

import (
	"context"
	"time"

	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the contact_info singleton.
type Store struct {
	c *mongo.Collection
}

// New creates a contact info store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_info")}
}

// Get returns the contact info document, falling back to defaults when
// nothing has been stored. The contact page always has something to render.
func (s *Store) Get(ctx context.Context) (models.ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var info models.ContactInfo
	err := s.c.FindOne(ctx, bson.M{}).Decode(&info)
	if err == mongo.ErrNoDocuments {
		return models.DefaultContactInfo(), nil
	}
	if err != nil {
		return models.ContactInfo{}, err
	}
	return info, nil
}

// Upsert replaces the contact info document wholesale, creating it on first
// write. POST and PUT share this path.
func (s *Store) Upsert(ctx context.Context, info models.ContactInfo) (models.ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	now := time.Now().UTC()
	info.UpdatedAt = &now

	update := bson.M{"$set": bson.M{
		"heading":    info.Heading,
		"subheading": info.Subheading,
		"email":      info.Email,
		"socials":    info.Socials,
		"updated_at": info.UpdatedAt,
	}}
	_, err := s.c.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.ContactInfo{}, err
	}
	return s.Get(ctx)
}
