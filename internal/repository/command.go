package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("document not found")

// All returns every document matching filter. It never returns a nil slice.
func All[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func FindOneBy[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func FindByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*T, error) {
	return FindOneBy[T](ctx, coll, bson.M{"_id": id})
}

func InsertOne[T any](ctx context.Context, coll *mongo.Collection, document T) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, document)
}

func UpdateByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func UpdateMany(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return coll.UpdateMany(ctx, filter, update)
}

func DeleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteManyByIDs deletes every document whose id appears in hexIDs. Entries
// that are not valid object ids are skipped rather than failing the batch.
func DeleteManyByIDs(ctx context.Context, coll *mongo.Collection, hexIDs []string) (*mongo.DeleteResult, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			ids = append(ids, id)
		}
	}
	return coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// IncByID applies $inc to a single numeric field. There is no floor: a
// decremented counter can go negative.
func IncByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, field string, delta int) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
}
