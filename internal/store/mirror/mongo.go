package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Mongo mirrors the document tree into a MongoDB collection keyed by
// collection name, with change streams backing the subscription.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *slog.Logger
	cancel context.CancelFunc
}

type mongoDocument struct {
	Name      string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongo(ctx context.Context, uri, database string, logger *slog.Logger) (*Mongo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mirror: %w", err)
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mirror: %w", err)
	}

	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection("collections"),
		logger: logger,
	}, nil
}

func (m *Mongo) Pull(ctx context.Context) (map[string][]byte, error) {
	cursor, err := m.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("pull collections: %w", err)
	}
	var docs []mongoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode collections: %w", err)
	}

	result := make(map[string][]byte, len(docs))
	for _, doc := range docs {
		result[doc.Name] = doc.Payload
	}
	return result, nil
}

func (m *Mongo) Push(ctx context.Context, name string, payload []byte) error {
	if payload == nil {
		if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
			return fmt.Errorf("delete %s: %w", name, err)
		}
		return nil
	}

	doc := mongoDocument{Name: name, Payload: payload, UpdatedAt: time.Now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("push %s: %w", name, err)
	}
	return nil
}

// Subscribe watches the mirror collection's change stream. The callback runs
// on the watcher goroutine.
func (m *Mongo) Subscribe(ctx context.Context, fn func(name string, payload []byte)) error {
	watchCtx, cancel := context.WithCancel(ctx)

	stream, err := m.coll.Watch(watchCtx, mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		cancel()
		return fmt.Errorf("watch mirror: %w", err)
	}
	m.cancel = cancel

	go func() {
		defer stream.Close(context.Background())
		for stream.Next(watchCtx) {
			var event struct {
				OperationType string         `bson:"operationType"`
				FullDocument  *mongoDocument `bson:"fullDocument"`
				DocumentKey   struct {
					ID string `bson:"_id"`
				} `bson:"documentKey"`
			}
			if err := stream.Decode(&event); err != nil {
				m.logger.Warn("mirror change decode failed", "error", err)
				continue
			}
			switch {
			case event.OperationType == "delete":
				fn(event.DocumentKey.ID, nil)
			case event.FullDocument != nil:
				fn(event.FullDocument.Name, event.FullDocument.Payload)
			}
		}
		if err := stream.Err(); err != nil && watchCtx.Err() == nil {
			m.logger.Warn("mirror watcher stopped", "error", err)
		}
	}()

	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return m.client.Disconnect(ctx)
}
