package storage

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// BlockReader is the read side of a block sequence. Both the in-memory
// BlockFile and the mmap view of a flushed file implement it, so the
// strategies' readback path works against either.
type BlockReader interface {
	BlockSize() int
	BlockCount() int
	// ReadRange returns length bytes at offset inside block index.
	ReadRange(index uint32, offset, length int) ([]byte, error)
}

// BlockStat is the per-block tally the simulator aggregates.
type BlockStat struct {
	Used    int // bytes written before padding
	Records int // records that start in this block
}

// BlockFile is an ordered, in-memory sequence of blocks. Blocks are
// allocated lazily with monotonically increasing indices; indices are
// never reused or compacted. Flushing pads every block to exactly the
// block size, so on-disk size is always BlockCount*BlockSize.
type BlockFile struct {
	blockSize int
	blocks    []*Block
	records   []int
}

func NewBlockFile(blockSize int) (*BlockFile, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrConfig, blockSize)
	}
	return &BlockFile{blockSize: blockSize}, nil
}

func (bf *BlockFile) BlockSize() int  { return bf.blockSize }
func (bf *BlockFile) BlockCount() int { return len(bf.blocks) }

// Current returns the block being filled and its index, allocating a
// fresh block when the file is empty or the last block is full.
func (bf *BlockFile) Current() (*Block, uint32) {
	if len(bf.blocks) == 0 || bf.blocks[len(bf.blocks)-1].IsFull() {
		bf.blocks = append(bf.blocks, NewBlock(bf.blockSize))
		bf.records = append(bf.records, 0)
	}
	return bf.blocks[len(bf.blocks)-1], uint32(len(bf.blocks) - 1)
}

// SealCurrent force-closes the block being filled; its remaining bytes
// become filler and the next Current call allocates a new block. Sealing
// an empty file or an already-full block is a no-op.
func (bf *BlockFile) SealCurrent() {
	if len(bf.blocks) == 0 {
		return
	}
	bf.blocks[len(bf.blocks)-1].Seal()
}

// BlockAt returns an existing block for reads.
func (bf *BlockFile) BlockAt(index uint32) (*Block, error) {
	if int(index) >= len(bf.blocks) {
		return nil, fmt.Errorf("%w: block %d of %d", ErrBlockOutOfRange, index, len(bf.blocks))
	}
	return bf.blocks[index], nil
}

// ReadRange implements BlockReader against the in-memory blocks.
func (bf *BlockFile) ReadRange(index uint32, offset, length int) ([]byte, error) {
	blk, err := bf.BlockAt(index)
	if err != nil {
		return nil, err
	}
	return blk.ReadRange(offset, length)
}

// NoteRecord counts a record as starting in the given block.
func (bf *BlockFile) NoteRecord(index uint32) {
	bf.records[index]++
}

// Stats returns the per-block tallies.
func (bf *BlockFile) Stats() []BlockStat {
	stats := make([]BlockStat, len(bf.blocks))
	for i, blk := range bf.blocks {
		stats[i] = BlockStat{Used: blk.Used(), Records: bf.records[i]}
	}
	return stats
}

// WriteTo persists every block to w, zero-padding each unwritten tail,
// so the stream is exactly BlockCount*BlockSize bytes.
func (bf *BlockFile) WriteTo(w io.Writer) (int64, error) {
	var written int64
	pad := make([]byte, bf.blockSize)
	for i, blk := range bf.blocks {
		n, err := w.Write(blk.buf[:blk.used])
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("writing block %d: %w", i, err)
		}
		if tail := bf.blockSize - blk.used; tail > 0 {
			n, err := w.Write(pad[:tail])
			written += int64(n)
			if err != nil {
				return written, fmt.Errorf("padding block %d: %w", i, err)
			}
		}
	}
	return written, nil
}

// Checksum digests the flushed byte stream. Two runs over the same
// record sequence must produce the same digest.
func (bf *BlockFile) Checksum() uint64 {
	h := xxhash.New()
	_, _ = bf.WriteTo(h)
	return h.Sum64()
}
