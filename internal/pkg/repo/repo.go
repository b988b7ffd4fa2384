// Package repo is the one generic CRUD accessor all record collections go
// through: each entity supplies only its collection name and sort key.
package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("record not found")

// DBProvider yields the lazily connected database handle. It is called per
// operation so the first request after a cold start pays the dial.
type DBProvider func(ctx context.Context) (*mongo.Database, error)

// Collection provides typed CRUD over one Mongo collection.
type Collection[T any] struct {
	db   DBProvider
	name string
	sort bson.D
}

// New builds a Collection. sort is the type-specific list order, e.g.
// bson.D{{Key: "createdAt", Value: -1}}.
func New[T any](db DBProvider, name string, sort bson.D) *Collection[T] {
	return &Collection[T]{db: db, name: name, sort: sort}
}

func (c *Collection[T]) coll(ctx context.Context) (*mongo.Collection, error) {
	db, err := c.db(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(c.name), nil
}

// List returns every record in the collection's sort order. No pagination;
// the data set is a single operator's portfolio.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	coll, err := c.coll(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(c.sort))
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one record by id.
func (c *Collection[T]) Get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	coll, err := c.coll(ctx)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindOne fetches the first record matching filter, in no particular order.
func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	coll, err := c.coll(ctx)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Insert stores a new record and returns its server-assigned id.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	coll, err := c.coll(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies a $set patch and returns the updated record. Fields absent
// from set stay untouched; list fields in set replace the stored list
// wholesale.
func (c *Collection[T]) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	if len(set) == 0 {
		// Mongo rejects an empty $set; an empty patch is a read.
		return c.Get(ctx, id)
	}
	coll, err := c.coll(ctx)
	if err != nil {
		return nil, err
	}
	var doc T
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Delete permanently removes a record. The associated remote media object is
// deliberately left in place (accepted orphan, see the delete handlers).
func (c *Collection[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := c.coll(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
