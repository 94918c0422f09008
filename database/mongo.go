package database

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-reservas/model"
)

const mongoDocumentId = "reservas"

type mongoDocument struct {
	Id           string              `bson:"_id"`
	Reservations []model.Reservation `bson:"reservas"`
}

// MongoBackend keeps the document in a single Mongo record that is replaced
// on every write, so a save stays atomic.
type MongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func DialMongo(connString, database, collection string) (*MongoBackend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connString))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return &MongoBackend{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (m *MongoBackend) Read(ctx context.Context) ([]byte, error) {
	var record mongoDocument
	err := m.collection.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: mongoDocumentId}}).Decode(&record)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return EncodeReservations(record.Reservations)
}

// Write stores the reservations as bson sub-documents of a single record.
func (m *MongoBackend) Write(ctx context.Context, document []byte) error {
	reservations, err := DecodeReservations(document)
	if err != nil {
		return err
	}
	_, err = m.collection.ReplaceOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: mongoDocumentId}},
		mongoDocument{Id: mongoDocumentId, Reservations: reservations},
		options.Replace().SetUpsert(true))
	return err
}

func (m *MongoBackend) Close() error {
	return m.client.Disconnect(context.Background())
}

func (m *MongoBackend) String() string {
	return "mongo collection " + m.collection.Name()
}
