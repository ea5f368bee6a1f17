package storage

// PrefixSize is the width of the big-endian length prefix the variable
// strategies store in front of each record payload.
const PrefixSize = 2

// maxPrefixable is the largest payload a 2-byte prefix can describe.
const maxPrefixable = 1<<16 - 1

// Strategy decides where each new record's bytes land and how a stored
// record is located and reassembled. Writes go to the strategy's own
// BlockFile; reads go through any BlockReader over the same block
// sequence, which is how records are retrieved from a flushed file.
type Strategy interface {
	Name() string
	// WriteRecord places an encoded record and returns its locator.
	WriteRecord(payload []byte) (Locator, error)
	// ReadRecord reassembles the exact payload WriteRecord stored.
	ReadRecord(r BlockReader, loc Locator) ([]byte, error)
}
