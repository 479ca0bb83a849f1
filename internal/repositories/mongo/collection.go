package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

// Sort orders for the portfolio collections. Content listings follow the
// caller-supplied display order with creation time as the explicit
// tie-break; the contact inbox reads newest first.
var (
	SortByDisplayOrder = bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}
	SortNewestFirst    = bson.D{{Key: "created_at", Value: -1}}
)

type Collection[T repositories.Document] struct {
	col  *mongo.Collection
	sort bson.D
}

func NewCollection[T repositories.Document](db *mongo.Database, name string, sort bson.D) *Collection[T] {
	return &Collection[T]{col: db.Collection(name), sort: sort}
}

func (r *Collection[T]) Insert(ctx context.Context, doc T) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	var out T
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, utils.ErrNotFound
	}
	return out, err
}

func (r *Collection[T]) List(ctx context.Context, limit int64) ([]T, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(r.sort).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Replace keys success on MatchedCount, not ModifiedCount: rewriting a
// document with values identical to the stored ones is still a successful
// update, not a missing id.
func (r *Collection[T]) Replace(ctx context.Context, id string, doc T) error {
	fields, err := repositories.SetFields(doc)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *Collection[T]) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
