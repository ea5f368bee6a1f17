package directory

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/lfmachado/blocksim/internal/storage"
)

// ART is an in-memory backend over an adaptive radix tree. Locator
// lookups by dense integer IDs share long key prefixes, which is the
// access pattern radix trees compress well.
type ART struct {
	tree art.Tree
}

func NewART() *ART {
	return &ART{tree: art.New()}
}

func (a *ART) Put(id uint32, loc storage.Locator) error {
	a.tree.Insert(art.Key(key(id)), loc)
	return nil
}

func (a *ART) Get(id uint32) (storage.Locator, error) {
	value, found := a.tree.Search(art.Key(key(id)))
	if !found {
		return storage.Locator{}, ErrNotFound
	}
	return value.(storage.Locator), nil
}

func (a *ART) Len() int { return a.tree.Size() }

func (a *ART) Close() error { return nil }
