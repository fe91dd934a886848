package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDatabase adapts a *mongo.Database to the Database contract.
type MongoDatabase struct {
	db *mongo.Database
}

func NewMongoDatabase(db *mongo.Database) *MongoDatabase {
	return &MongoDatabase{db: db}
}

func (d *MongoDatabase) Collection(name string) Collection {
	return &mongoCollection{col: d.db.Collection(name)}
}

type mongoCollection struct {
	col *mongo.Collection
}

// toDocument flattens a model struct into a bson map so the store can
// stamp _id and timestamps before persisting.
func toDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// timestamp returns the current time at bson datetime precision.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (c *mongoCollection) InsertOne(ctx context.Context, v any) (primitive.ObjectID, error) {
	doc, err := toDocument(v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	ts := timestamp()
	doc["_id"] = id
	doc["createdAt"] = ts
	doc["updatedAt"] = ts

	if _, err := c.col.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (c *mongoCollection) FindByID(ctx context.Context, id primitive.ObjectID, out any) error {
	return c.FindOne(ctx, Filter{"_id": id}, out)
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Filter, out any) error {
	err := c.col.FindOne(ctx, bson.M(filter)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocuments
	}
	return err
}

func (c *mongoCollection) Find(ctx context.Context, filter Filter, opts FindOptions, out any) (int64, error) {
	opts = opts.Clamp()

	total, err := c.col.CountDocuments(ctx, bson.M(filter))
	if err != nil {
		return 0, err
	}

	findOpts := options.Find().
		SetSkip((opts.Page - 1) * opts.Limit).
		SetLimit(opts.Limit)
	if opts.SortBy != "" {
		field, desc := ParseSort(opts.SortBy)
		dir := 1
		if desc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: field, Value: dir}})
	}

	cur, err := c.col.Find(ctx, bson.M(filter), findOpts)
	if err != nil {
		return 0, err
	}
	if err := cur.All(ctx, out); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *mongoCollection) FindAll(ctx context.Context, filter Filter, out any) error {
	cur, err := c.col.Find(ctx, bson.M(filter))
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c *mongoCollection) UpdateByID(ctx context.Context, id primitive.ObjectID, set map[string]any) error {
	update := bson.M{}
	for k, v := range set {
		update[k] = v
	}
	update["updatedAt"] = timestamp()

	res, err := c.col.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocuments
	}
	return nil
}

func (c *mongoCollection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocuments
	}
	return nil
}
