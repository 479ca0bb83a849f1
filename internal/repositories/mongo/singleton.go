package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarathmw/portfolio-api/internal/utils"
)

// singletonFilter pins every upsert to the same document. Together with the
// unique index on the singleton field (config.EnsureMongoIndexes) it
// guarantees at most one document survives concurrent first upserts.
var singletonFilter = bson.M{"singleton": true}

type SingletonCollection[T any] struct {
	col *mongo.Collection
}

func NewSingleton[T any](db *mongo.Database, name string) *SingletonCollection[T] {
	return &SingletonCollection[T]{col: db.Collection(name)}
}

func (r *SingletonCollection[T]) Get(ctx context.Context) (T, error) {
	var out T
	err := r.col.FindOne(ctx, bson.M{}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, utils.ErrNotFound
	}
	return out, err
}

// Upsert is a single atomic UpdateOne: the candidate's id and created_at
// only apply via $setOnInsert, so an existing document keeps its identity
// while its schema fields are overwritten.
func (r *SingletonCollection[T]) Upsert(ctx context.Context, candidate T) (T, error) {
	var zero T

	raw, err := bson.Marshal(candidate)
	if err != nil {
		return zero, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return zero, err
	}

	onInsert := bson.M{}
	for _, f := range []string{"id", "created_at"} {
		if v, ok := fields[f]; ok {
			onInsert[f] = v
			delete(fields, f)
		}
	}

	update := bson.M{"$set": fields, "$setOnInsert": onInsert}
	opts := options.Update().SetUpsert(true)

	if _, err := r.col.UpdateOne(ctx, singletonFilter, update, opts); err != nil {
		// A concurrent first upsert can win the unique singleton index;
		// the retry then matches the winner's document and updates it.
		if !mongo.IsDuplicateKeyError(err) {
			return zero, err
		}
		if _, err := r.col.UpdateOne(ctx, singletonFilter, update, opts); err != nil {
			return zero, err
		}
	}

	return r.Get(ctx)
}
