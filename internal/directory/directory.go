// Package directory maps record IDs to their storage locators so a
// record written in one process can be retrieved in another. Three
// interchangeable backends exist: an in-memory B-tree, an in-memory
// adaptive radix tree, and a bbolt file that survives restarts.
package directory

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/lfmachado/blocksim/internal/storage"
)

var (
	ErrNotFound    = errors.New("directory: record id not found")
	ErrUnknownKind = errors.New("directory: unknown backend kind")
)

// Kind selects the backend implementation.
type Kind int8

const (
	// BTreeKind keeps locators in an in-memory B-tree.
	BTreeKind Kind = iota + 1

	// ARTKind keeps locators in an in-memory adaptive radix tree.
	ARTKind

	// BoltKind persists locators to a bbolt B+tree file.
	BoltKind
)

// Directory is the locator map shared by all backends.
type Directory interface {
	Put(id uint32, loc storage.Locator) error
	Get(id uint32) (storage.Locator, error)
	Len() int
	Close() error
}

// Open constructs the backend named by kind. Only BoltKind touches
// path; the in-memory backends ignore it.
func Open(kind Kind, path string) (Directory, error) {
	switch kind {
	case BTreeKind:
		return NewBTree(), nil
	case ARTKind:
		return NewART(), nil
	case BoltKind:
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// key renders a record ID as a big-endian byte key so byte-ordered
// backends iterate in ID order.
func key(id uint32) []byte {
	var k [4]byte
	binary.BigEndian.PutUint32(k[:], id)
	return k[:]
}
