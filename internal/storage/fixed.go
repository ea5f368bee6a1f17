package storage

import "fmt"

// FixedSize packs constant-width slots. Every record occupies exactly
// slotSize bytes and no record is ever split: when the current block's
// remaining space is smaller than a slot, the block is sealed and the
// slot starts at offset 0 of the next one. Retrieval is O(1) from the
// record's sequence number alone.
type FixedSize struct {
	bf            *BlockFile
	slotSize      int
	slotsPerBlock int
	count         uint32
}

func NewFixedSize(bf *BlockFile, slotSize int) (*FixedSize, error) {
	if slotSize <= 0 {
		return nil, fmt.Errorf("%w: slot size %d", ErrConfig, slotSize)
	}
	if slotSize > bf.BlockSize() {
		return nil, fmt.Errorf("%w: slot size %d exceeds block size %d", ErrConfig, slotSize, bf.BlockSize())
	}
	return &FixedSize{
		bf:       bf,
		slotSize: slotSize,
		// Floor division: a fractional trailing slot per block is
		// permanently wasted filler.
		slotsPerBlock: bf.BlockSize() / slotSize,
	}, nil
}

func (s *FixedSize) Name() string { return "fixed" }

// SlotsPerBlock returns how many whole slots fit one block.
func (s *FixedSize) SlotsPerBlock() int { return s.slotsPerBlock }

func (s *FixedSize) WriteRecord(payload []byte) (Locator, error) {
	if len(payload) != s.slotSize {
		return Locator{}, fmt.Errorf("%w: got %d bytes, slot is %d", ErrPayloadSize, len(payload), s.slotSize)
	}

	blk, idx := s.bf.Current()
	if blk.Remaining() < s.slotSize {
		s.bf.SealCurrent()
		blk, idx = s.bf.Current()
	}
	offset := blk.Used()
	if n := blk.Append(payload); n != s.slotSize {
		return Locator{}, fmt.Errorf("%w: wrote %d of %d slot bytes", ErrPayloadSize, n, s.slotSize)
	}
	s.bf.NoteRecord(idx)

	loc := Locator{
		Block:  idx,
		Offset: uint32(offset),
		Length: uint32(s.slotSize),
		Seq:    s.count,
	}
	s.count++
	return loc, nil
}

func (s *FixedSize) ReadRecord(r BlockReader, loc Locator) ([]byte, error) {
	block := loc.Seq / uint32(s.slotsPerBlock)
	offset := int(loc.Seq%uint32(s.slotsPerBlock)) * s.slotSize
	if int(block) >= r.BlockCount() {
		return nil, fmt.Errorf("%w: record %d maps to block %d of %d", ErrBlockOutOfRange, loc.Seq, block, r.BlockCount())
	}
	return r.ReadRange(block, offset, s.slotSize)
}
