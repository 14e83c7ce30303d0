// internal/app/store/counters/counterstore.go
package counterstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store allocates monotonically increasing integer ids from the counters
// collection. Allocation is a single atomic $inc, so concurrent creates can
// never receive the same id — unlike a read-max-then-insert scheme.
type Store struct {
	c *mongo.Collection
}

// New creates a counter store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("counters")}
}

type counterDoc struct {
	ID    string `bson:"_id"`
	Value int    `bson:"value"`
}

// Next returns the next id for the named sequence. When the sequence does
// not exist yet it is seeded from seedMax (the highest id already present in
// the target collection), so pre-existing data like ids {1,3,7} continues at
// 8 rather than restarting at 1.
func (s *Store) Next(ctx context.Context, name string, seedMax func(context.Context) (int, error)) (int, error) {
	for {
		var doc counterDoc
		err := s.c.FindOneAndUpdate(ctx,
			bson.M{"_id": name},
			bson.M{"$inc": bson.M{"value": 1}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err == nil {
			return doc.Value, nil
		}
		if err != mongo.ErrNoDocuments {
			return 0, err
		}

		// Sequence missing: seed it from the collection's current max id.
		// $setOnInsert keeps a concurrent seeder from overwriting; on a
		// duplicate-key race we just loop back to the $inc path.
		max, err := seedMax(ctx)
		if err != nil {
			return 0, err
		}
		res, err := s.c.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"value": max + 1}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return 0, err
		}
		if res.UpsertedCount == 1 {
			return max + 1, nil
		}
		// Another writer seeded first; take the $inc path.
	}
}
