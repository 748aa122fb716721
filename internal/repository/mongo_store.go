package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDocumentStore implements DocumentStore on a MongoDB database.
type MongoDocumentStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDocumentStore wires a store over an already connected client.
func NewMongoDocumentStore(client *mongo.Client, db *mongo.Database) *MongoDocumentStore {
	return &MongoDocumentStore{client: client, db: db}
}

var _ DocumentStore = (*MongoDocumentStore)(nil)

// EnsureIndexes creates a unique index on "id" and an index on "created_at"
// for each collection.
func (s *MongoDocumentStore) EnsureIndexes(ctx context.Context, collections ...string) error {
	for _, name := range collections {
		_, err := s.db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		})
		if err != nil {
			return unavailable("create indexes", name, err)
		}
	}
	return nil
}

// Insert adds doc to the collection. The storage key is the hex ObjectID
// generated by the driver.
func (s *MongoDocumentStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", unavailable("insert", collection, err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

// FindSorted returns documents ordered by sort, ties broken by _id.
func (s *MongoDocumentStore) FindSorted(ctx context.Context, collection string, sort Sort, limit int64, out any) error {
	return s.find(ctx, collection, bson.M{}, findOptions(sort, limit, nil), out)
}

// FindProjected returns the requested fields of matching documents.
func (s *MongoDocumentStore) FindProjected(ctx context.Context, collection string, filter Filter, fields []string, sort Sort, limit int64, out any) error {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	return s.find(ctx, collection, query, findOptions(sort, limit, fields), out)
}

func (s *MongoDocumentStore) find(ctx context.Context, collection string, query bson.M, opts *options.FindOptions, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return unavailable("find", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return unavailable("decode", collection, err)
	}
	return nil
}

// DeleteByKey removes the first document whose key equals value.
func (s *MongoDocumentStore) DeleteByKey(ctx context.Context, collection, key string, value any) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{key: value})
	if err != nil {
		return 0, unavailable("delete", collection, err)
	}
	return res.DeletedCount, nil
}

// Ping checks connectivity with the primary.
func (s *MongoDocumentStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return unavailable("ping", s.db.Name(), err)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoDocumentStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func findOptions(sort Sort, limit int64, fields []string) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{
		{Key: sort.Field, Value: int(sort.Direction)},
		{Key: "_id", Value: 1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if len(fields) > 0 {
		projection := bson.D{{Key: "_id", Value: 1}}
		for _, f := range fields {
			if f == "_id" {
				continue
			}
			projection = append(projection, bson.E{Key: f, Value: 1})
		}
		opts.SetProjection(projection)
	}
	return opts
}
