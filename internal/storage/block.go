// Package storage implements the block-packing engine: fixed-capacity
// blocks, the block file they live in, and the three allocation
// strategies that decide how encoded records map onto block byte ranges.
package storage

import "fmt"

// Block is a fixed-capacity byte buffer with a write cursor. Bytes past
// the cursor are undefined until written, and become zero filler when
// the owning BlockFile flushes.
type Block struct {
	buf    []byte
	used   int
	sealed bool
}

func NewBlock(capacity int) *Block {
	return &Block{buf: make([]byte, capacity)}
}

func (b *Block) Capacity() int { return len(b.buf) }
func (b *Block) Used() int     { return b.used }

// Remaining returns how many bytes can still be appended. A sealed
// block accepts nothing even if bytes are physically left.
func (b *Block) Remaining() int {
	if b.sealed {
		return 0
	}
	return len(b.buf) - b.used
}

// IsFull reports whether the block can take no more data, either
// because the cursor reached capacity or because it was sealed early.
func (b *Block) IsFull() bool { return b.sealed || b.used == len(b.buf) }

// Seal closes the block early. The unwritten tail becomes filler.
func (b *Block) Seal() { b.sealed = true }

// Append writes min(len(p), Remaining()) bytes at the cursor and
// returns how many were written. A partial write tells a spanning
// caller to continue in the next block.
func (b *Block) Append(p []byte) int {
	if b.sealed {
		return 0
	}
	n := copy(b.buf[b.used:], p)
	b.used += n
	return n
}

// ReadRange returns the bytes at [offset, offset+length). Reads are
// bounded by the written region.
func (b *Block) ReadRange(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > b.used {
		return nil, fmt.Errorf("%w: [%d,%d) with %d bytes used", ErrRange, offset, offset+length, b.used)
	}
	return b.buf[offset : offset+length], nil
}
