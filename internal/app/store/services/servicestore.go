// internal/app/store/services/servicestore.go
package servicestore

import (
	"context"
	"errors"
	"time"

	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when the services document or one of its nested
// categories/services is missing.
var ErrNotFound = errors.New("services content not found")

// ErrConflict is returned when the version-guarded write loses every retry.
var ErrConflict = errors.New("services document modified concurrently")

// maxRetries bounds the optimistic-concurrency loop. Each attempt re-reads
// the document, so losing this many races in a row on a low-traffic admin
// API means something is wrong.
const maxRetries = 3

// Store provides access to the single services aggregate. All mutations run
// read-modify-write guarded by the document version.
type Store struct {
	c *mongo.Collection
}

// New creates a services store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// Get returns the services document.
func (s *Store) Get(ctx context.Context) (models.ServicesDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var doc models.ServicesDocument
	err := s.c.FindOne(ctx, bson.M{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.ServicesDocument{}, ErrNotFound
	}
	if err != nil {
		return models.ServicesDocument{}, err
	}
	return doc, nil
}

// AddService appends a service to the named category. The new service id is
// the document-wide max plus one; icon validation happens at the handler.
func (s *Store) AddService(ctx context.Context, categoryID string, svc models.Service) (models.Service, error) {
	var added models.Service
	err := s.mutate(ctx, func(doc *models.ServicesDocument) error {
		cat := findCategory(doc, categoryID)
		if cat == nil {
			return ErrNotFound
		}
		svc.ID = doc.MaxServiceID() + 1
		cat.Services = append(cat.Services, svc)
		added = svc
		return nil
	})
	if err != nil {
		return models.Service{}, err
	}
	return added, nil
}

// UpdateCategory merges non-nil patch fields into the named category.
func (s *Store) UpdateCategory(ctx context.Context, categoryID string, patch models.CategoryPatch) (models.ServicesDocument, error) {
	err := s.mutate(ctx, func(doc *models.ServicesDocument) error {
		cat := findCategory(doc, categoryID)
		if cat == nil {
			return ErrNotFound
		}
		if patch.Title != nil {
			cat.Title = *patch.Title
		}
		if patch.Description != nil {
			cat.Description = *patch.Description
		}
		return nil
	})
	if err != nil {
		return models.ServicesDocument{}, err
	}
	return s.Get(ctx)
}

// UpdateService merges non-nil patch fields into the service with the given
// id, wherever it lives. Service ids are unique across categories.
func (s *Store) UpdateService(ctx context.Context, serviceID int, patch models.ServicePatch) (models.Service, error) {
	var updated models.Service
	err := s.mutate(ctx, func(doc *models.ServicesDocument) error {
		svc := findService(doc, serviceID)
		if svc == nil {
			return ErrNotFound
		}
		if patch.Title != nil {
			svc.Title = *patch.Title
		}
		if patch.Description != nil {
			svc.Description = *patch.Description
		}
		if patch.Icon != nil {
			svc.Icon = *patch.Icon
		}
		if patch.Featured != nil {
			svc.Featured = *patch.Featured
		}
		updated = *svc
		return nil
	})
	if err != nil {
		return models.Service{}, err
	}
	return updated, nil
}

// DeleteService removes the service with the given id from its category.
// Categories stay even when emptied.
func (s *Store) DeleteService(ctx context.Context, serviceID int) error {
	return s.mutate(ctx, func(doc *models.ServicesDocument) error {
		for ci := range doc.Categories {
			cat := &doc.Categories[ci]
			for si, svc := range cat.Services {
				if svc.ID == serviceID {
					cat.Services = append(cat.Services[:si], cat.Services[si+1:]...)
					return nil
				}
			}
		}
		return ErrNotFound
	})
}

// Seed inserts the services document if none exists.
func (s *Store) Seed(ctx context.Context, doc models.ServicesDocument) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if doc.Version == 0 {
		doc.Version = 1
	}
	_, err = s.c.InsertOne(ctx, doc)
	return err
}

// mutate runs fn against a fresh copy of the document and writes it back
// guarded by the version read. On a version mismatch it re-reads and retries.
func (s *Store) mutate(ctx context.Context, fn func(*models.ServicesDocument) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long)
	defer cancel()

	for attempt := 0; attempt < maxRetries; attempt++ {
		doc, err := s.Get(ctx)
		if err != nil {
			return err
		}

		readVersion := doc.Version
		if err := fn(&doc); err != nil {
			return err
		}

		now := time.Now().UTC()
		doc.Version = readVersion + 1
		doc.UpdatedAt = &now

		res, err := s.c.UpdateOne(ctx,
			bson.M{"_id": doc.ID, "version": readVersion},
			bson.M{"$set": bson.M{
				"version":    doc.Version,
				"categories": doc.Categories,
				"updated_at": doc.UpdatedAt,
			}})
		if err != nil {
			return err
		}
		if res.MatchedCount == 1 {
			return nil
		}
		// Lost the race; loop re-reads and reapplies.
	}
	return ErrConflict
}

func findCategory(doc *models.ServicesDocument, id string) *models.ServiceCategory {
	for i := range doc.Categories {
		if doc.Categories[i].ID == id {
			return &doc.Categories[i]
		}
	}
	return nil
}

func findService(doc *models.ServicesDocument, id int) *models.Service {
	for ci := range doc.Categories {
		for si := range doc.Categories[ci].Services {
			if doc.Categories[ci].Services[si].ID == id {
				return &doc.Categories[ci].Services[si]
			}
		}
	}
	return nil
}

// EnsureDefault seeds an empty versioned document so admin writes have a
// target on a fresh database. Used at startup.
func (s *Store) EnsureDefault(ctx context.Context) error {
	return s.Seed(ctx, models.ServicesDocument{
		Version:    1,
		Categories: []models.ServiceCategory{},
	})
}
