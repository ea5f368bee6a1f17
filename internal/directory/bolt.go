package directory

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/lfmachado/blocksim/internal/storage"
)

var locatorBucket = []byte("locators")

// Bolt persists locators in a bbolt B+tree file, so a simulation's
// output stays addressable after the process exits.
type Bolt struct {
	db *bbolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o644, bbolt.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open locator directory: %w", err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(locatorBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create locator bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Put(id uint32, loc storage.Locator) error {
	var buf [storage.LocatorSize]byte
	loc.Marshal(buf[:])
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(locatorBucket).Put(key(id), buf[:])
	})
}

func (b *Bolt) Get(id uint32) (storage.Locator, error) {
	var loc storage.Locator
	err := b.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(locatorBucket).Get(key(id))
		if len(value) != storage.LocatorSize {
			return ErrNotFound
		}
		loc.Unmarshal(value)
		return nil
	})
	return loc, err
}

func (b *Bolt) Len() int {
	var n int
	_ = b.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(locatorBucket).Stats().KeyN
		return nil
	})
	return n
}

func (b *Bolt) Close() error { return b.db.Close() }
