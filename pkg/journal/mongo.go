package journal

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/observability"
)

// mongoCollection holds one document per day, _id = date key.
const mongoCollection = "entries"

// MongoStore keeps entries in a mongo collection. The _id uniqueness
// constraint is the compare-and-set: inserting an existing day fails with a
// duplicate key error.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI      string
	Database string
}

// NewMongoStore connects to mongo and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongo at %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongo at %s", cfg.URI)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(mongoCollection),
	}, nil
}

// entryDoc is the stored shape of one day.
type entryDoc struct {
	ID   string `bson:"_id"`
	Text string `bson:"text"`
}

// Load reads all day documents. Documents whose text field is missing or
// not a string are dropped, matching the fail-soft load contract.
func (s *MongoStore) Load(ctx context.Context) (Entries, error) {
	start := time.Now()

	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "load entries")
		observability.Store().OnLoad(ctx, s.Backend(), 0, time.Since(start), werr)
		return nil, werr
	}
	defer cur.Close(ctx)

	entries := Entries{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			continue
		}
		id, okID := raw["_id"].(string)
		text, okText := raw["text"].(string)
		if okID && okText {
			entries[DateKey(id)] = text
		}
	}
	if err := cur.Err(); err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "iterate entries")
		observability.Store().OnLoad(ctx, s.Backend(), 0, time.Since(start), werr)
		return nil, werr
	}

	observability.Store().OnLoad(ctx, s.Backend(), len(entries), time.Since(start), nil)
	return entries, nil
}

// Save replaces the collection contents in full.
func (s *MongoStore) Save(ctx context.Context, entries Entries) error {
	start := time.Now()

	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "clear entries")
		observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), werr)
		return werr
	}
	if len(entries) > 0 {
		docs := make([]any, 0, len(entries))
		for k, v := range entries {
			docs = append(docs, entryDoc{ID: string(k), Text: v})
		}
		if _, err := s.coll.InsertMany(ctx, docs); err != nil {
			werr := errors.Wrap(errors.ErrCodeStore, err, "save entries")
			observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), werr)
			return werr
		}
	}

	observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), nil)
	return nil
}

// Submit inserts the day document; a duplicate key error means another
// client already submitted the day.
func (s *MongoStore) Submit(ctx context.Context, key DateKey, text string) error {
	_, err := s.coll.InsertOne(ctx, entryDoc{ID: string(key), Text: text})
	if mongo.IsDuplicateKeyError(err) {
		lerr := errors.New(errors.ErrCodeDayLocked, "day %s already has an entry", key)
		observability.Store().OnSubmit(ctx, s.Backend(), string(key), lerr)
		return lerr
	}
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "submit %s", key)
		observability.Store().OnSubmit(ctx, s.Backend(), string(key), werr)
		return werr
	}
	observability.Store().OnSubmit(ctx, s.Backend(), string(key), nil)
	return nil
}

// Backend returns "mongo".
func (s *MongoStore) Backend() string { return "mongo" }

// Close disconnects the mongo client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
