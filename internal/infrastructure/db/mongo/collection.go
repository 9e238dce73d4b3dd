package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kitchenops/timerkit/internal/core/domain"
)

// collection wraps a MongoDB collection whose documents decode into T and are
// keyed by a string _id.
type collection[T any] struct {
	col    *mongo.Collection
	entity string
}

func newCollection[T any](db *mongo.Database, name, entity string) collection[T] {
	return collection[T]{col: db.Collection(name), entity: entity}
}

func (c collection[T]) insert(ctx context.Context, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert %s: %w", c.entity, domain.ErrUniqueness)
		}
		return fmt.Errorf("insert %s: %w", c.entity, err)
	}
	return nil
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v T
	if err := c.col.FindOne(ctx, filter).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return v, fmt.Errorf("%s: %w", c.entity, domain.ErrNotFound)
		}
		return v, fmt.Errorf("find %s: %w", c.entity, err)
	}
	return v, nil
}

func (c collection[T]) findByID(ctx context.Context, id string) (T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

// findMany returns every match. The result is never nil.
func (c collection[T]) findMany(ctx context.Context, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.entity, err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.entity, err)
	}
	return out, nil
}

// replace overwrites the stored document; concurrent writers are last-writer-wins.
func (c collection[T]) replace(ctx context.Context, id string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("replace %s: %w", c.entity, domain.ErrUniqueness)
		}
		return fmt.Errorf("replace %s: %w", c.entity, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", c.entity, id, domain.ErrNotFound)
	}
	return nil
}

func (c collection[T]) remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.entity, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", c.entity, id, domain.ErrNotFound)
	}
	return nil
}

func (c collection[T]) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := c.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", c.entity, err)
	}
	return n > 0, nil
}
