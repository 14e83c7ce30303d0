// internal/app/store/members/memberstore.go
package memberstore

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

// ErrNotFound is returned when no member matches the given id.
var ErrNotFound = errors.New("member not found")

// Store provides access to the members collection.
type Store struct {
	c        *mongo.Collection
	counters *counterstore.Store
}

// New creates a member store.
func New(db *mongo.Database, counters *counterstore.Store) *Store {
	return &Store{c: db.Collection("members"), counters: counters}
}

// List returns all members sorted by id, oldest first.
func (s *Store) List(ctx context.Context) ([]models.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	cursor, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	members := []models.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Get returns one member by id.
func (s *Store) Get(ctx context.Context, id int) (models.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var member models.Member
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&member)
	if err == mongo.ErrNoDocuments {
		return models.Member{}, ErrNotFound
	}
	if err != nil {
		return models.Member{}, err
	}
	return member, nil
}

// Insert allocates the next id and stores the member.
func (s *Store) Insert(ctx context.Context, member models.Member) (models.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long)
	defer cancel()

	id, err := s.counters.Next(ctx, "members", s.maxID)
	if err != nil {
		return models.Member{}, err
	}
	member.ID = id
	member.CreatedAt = time.Now().UTC()
	member.UpdatedAt = nil

	if _, err := s.c.InsertOne(ctx, member); err != nil {
		return models.Member{}, err
	}
	return member, nil
}

// Update merges non-nil patch fields into the member with the given id.
func (s *Store) Update(ctx context.Context, id int, patch models.MemberPatch) (models.Member, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	if len(set) == 0 {
		return s.Get(ctx, id)
	}
	set["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	res, err := s.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return models.Member{}, err
	}
	if res.MatchedCount == 0 {
		return models.Member{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the member with the given id.
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

func (s *Store) maxID(ctx context.Context) (int, error) {
	var top models.Member
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
