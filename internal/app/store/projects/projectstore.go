// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"errors"
	"time"

	counterstore "github.com/brightforge/studiohub/internal/app/store/counters"
	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no project matches the given id.
var ErrNotFound = errors.New("project not found")

// Store provides access to the projects collection. Integer ids come from
// the shared counter store so concurrent creates cannot collide.
type Store struct {
	c        *mongo.Collection
	counters *counterstore.Store
}

// New creates a project store.
func New(db *mongo.Database, counters *counterstore.Store) *Store {
	return &Store{c: db.Collection("projects"), counters: counters}
}

// List returns all projects sorted by display order, ties broken by id.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	cursor, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Get returns one project by id.
func (s *Store) Get(ctx context.Context, id int) (models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var project models.Project
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Insert allocates the next id and stores the project. The caller fills
// content fields; id and created_at are set here.
func (s *Store) Insert(ctx context.Context, project models.Project) (models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long)
	defer cancel()

	id, err := s.counters.Next(ctx, "projects", s.maxID)
	if err != nil {
		return models.Project{}, err
	}
	project.ID = id
	project.CreatedAt = time.Now().UTC()
	project.UpdatedAt = nil

	if _, err := s.c.InsertOne(ctx, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Update merges non-nil patch fields into the project with the given id.
func (s *Store) Update(ctx context.Context, id int, patch models.ProjectPatch) (models.Project, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Link != nil {
		set["link"] = *patch.Link
	}
	if patch.Tech != nil {
		set["tech"] = *patch.Tech
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}

	if len(set) == 0 {
		return s.Get(ctx, id)
	}
	set["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	res, err := s.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return models.Project{}, err
	}
	if res.MatchedCount == 0 {
		return models.Project{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the project with the given id.
func (s *Store) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder applies the given order values in one bulk write. Entries whose id
// matches no project are skipped; the applied count is returned so the
// handler can report partial application.
func (s *Store) Reorder(ctx context.Context, orders []models.ProjectOrder) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long)
	defer cancel()

	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(orders))
	for _, o := range orders {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": o.ID}).
			SetUpdate(bson.M{"$set": bson.M{"order": o.Order, "updated_at": now}}))
	}

	res, err := s.c.BulkWrite(ctx, writes)
	if err != nil {
		return 0, err
	}
	return int(res.MatchedCount), nil
}

// maxID seeds the counter from data that predates counter allocation.
func (s *Store) maxID(ctx context.Context) (int, error) {
	var top models.Project
	err := s.c.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})).Decode(&top)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return top.ID, nil
}
