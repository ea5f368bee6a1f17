package directory

import (
	"bytes"

	"github.com/google/btree"

	"github.com/lfmachado/blocksim/internal/storage"
)

// BTree is the in-memory default backend.
type BTree struct {
	tree *btree.BTree
}

type item struct {
	key []byte
	loc storage.Locator
}

func (a *item) Less(b btree.Item) bool {
	return bytes.Compare(a.key, b.(*item).key) < 0
}

func NewBTree() *BTree {
	return &BTree{tree: btree.New(32)}
}

func (bt *BTree) Put(id uint32, loc storage.Locator) error {
	bt.tree.ReplaceOrInsert(&item{key: key(id), loc: loc})
	return nil
}

func (bt *BTree) Get(id uint32) (storage.Locator, error) {
	found := bt.tree.Get(&item{key: key(id)})
	if found == nil {
		return storage.Locator{}, ErrNotFound
	}
	return found.(*item).loc, nil
}

func (bt *BTree) Len() int { return bt.tree.Len() }

func (bt *BTree) Close() error { return nil }
