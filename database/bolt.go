package database

import (
	"context"
	"time"

	bolt "github.com/boltdb/bolt"
)

const boltBucket = "reservas"

var boltKey = []byte("reservas")

// BoltBackend keeps the document as a single value in a BoltDB file.
type BoltBackend struct {
	db   *bolt.DB
	path string
}

// NewBoltBackend opens (or creates) the database file and its bucket.
func NewBoltBackend(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltBackend{db: db, path: path}, nil
}

func (b *BoltBackend) Read(_ context.Context) ([]byte, error) {
	var document []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get(boltKey)
		if v == nil {
			return ErrNotExist
		}
		// v is only valid inside the transaction
		document = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (b *BoltBackend) Write(_ context.Context, document []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put(boltKey, document)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}

func (b *BoltBackend) String() string {
	return "bolt " + b.path
}
