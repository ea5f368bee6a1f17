package storage

import (
	"encoding/binary"
	"fmt"
)

// VariableContiguous packs length-prefixed variable records
// back-to-back, never splitting one across a block boundary. A record
// that does not fit the current block's remainder seals the block (the
// remainder becomes internal fragmentation, which is the behaviour this
// strategy exists to measure) and starts at offset 0 of the next one.
type VariableContiguous struct {
	bf    *BlockFile
	count uint32
}

// NewVariableContiguous fails when a maximal record plus its prefix
// could never fit one block; such records are a configuration error
// here, not a reason to span.
func NewVariableContiguous(bf *BlockFile, maxRecordSize int) (*VariableContiguous, error) {
	if maxRecordSize <= 0 || maxRecordSize > maxPrefixable {
		return nil, fmt.Errorf("%w: max record size %d", ErrConfig, maxRecordSize)
	}
	if PrefixSize+maxRecordSize > bf.BlockSize() {
		return nil, fmt.Errorf("%w: record of %d bytes cannot fit block size %d",
			ErrConfig, PrefixSize+maxRecordSize, bf.BlockSize())
	}
	return &VariableContiguous{bf: bf}, nil
}

func (s *VariableContiguous) Name() string { return "contiguous" }

func (s *VariableContiguous) WriteRecord(payload []byte) (Locator, error) {
	need := PrefixSize + len(payload)
	if len(payload) == 0 || need > s.bf.BlockSize() {
		return Locator{}, fmt.Errorf("%w: %d bytes cannot fit block size %d", ErrConfig, need, s.bf.BlockSize())
	}

	blk, idx := s.bf.Current()
	if blk.Remaining() < need {
		s.bf.SealCurrent()
		blk, idx = s.bf.Current()
	}
	offset := blk.Used()

	var prefix [PrefixSize]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(len(payload)))
	if n := blk.Append(prefix[:]); n != PrefixSize {
		return Locator{}, fmt.Errorf("%w: wrote %d of %d prefix bytes", ErrPayloadSize, n, PrefixSize)
	}
	if n := blk.Append(payload); n != len(payload) {
		return Locator{}, fmt.Errorf("%w: wrote %d of %d payload bytes", ErrPayloadSize, n, len(payload))
	}
	s.bf.NoteRecord(idx)

	loc := Locator{
		Block:  idx,
		Offset: uint32(offset),
		Length: uint32(need),
		Seq:    s.count,
	}
	s.count++
	return loc, nil
}

// ReadRecord reads the prefix, then the payload, both guaranteed by the
// write path to lie inside a single block.
func (s *VariableContiguous) ReadRecord(r BlockReader, loc Locator) ([]byte, error) {
	prefix, err := r.ReadRange(loc.Block, int(loc.Offset), PrefixSize)
	if err != nil {
		return nil, err
	}
	length := int(binary.BigEndian.Uint16(prefix))
	if PrefixSize+length != int(loc.Length) {
		return nil, fmt.Errorf("%w: stored prefix says %d bytes, locator says %d",
			ErrPayloadSize, PrefixSize+length, loc.Length)
	}
	return r.ReadRange(loc.Block, int(loc.Offset)+PrefixSize, length)
}
