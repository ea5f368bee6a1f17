package storage

import (
	"encoding/binary"
	"fmt"
)

// VariableSpanned packs length-prefixed variable records as one
// continuous byte stream with block boundaries inserted transparently
// every BlockSize bytes. A record that does not fit the current block's
// remainder continues at offset 0 of the next block, so every block a
// write crosses is filled to 100% except possibly the last block of the
// file.
type VariableSpanned struct {
	bf    *BlockFile
	count uint32
}

func NewVariableSpanned(bf *BlockFile, maxRecordSize int) (*VariableSpanned, error) {
	if maxRecordSize <= 0 || maxRecordSize > maxPrefixable {
		return nil, fmt.Errorf("%w: max record size %d", ErrConfig, maxRecordSize)
	}
	return &VariableSpanned{bf: bf}, nil
}

func (s *VariableSpanned) Name() string { return "spanned" }

func (s *VariableSpanned) WriteRecord(payload []byte) (Locator, error) {
	if len(payload) == 0 || len(payload) > maxPrefixable {
		return Locator{}, fmt.Errorf("%w: payload of %d bytes", ErrPayloadSize, len(payload))
	}

	buf := make([]byte, PrefixSize+len(payload))
	binary.BigEndian.PutUint16(buf[:PrefixSize], uint16(len(payload)))
	copy(buf[PrefixSize:], payload)

	blk, idx := s.bf.Current()
	startBlock, startOffset := idx, blk.Used()

	rest := buf
	for len(rest) > 0 {
		n := blk.Append(rest)
		rest = rest[n:]
		if len(rest) > 0 {
			// Block filled mid-record; continue in a fresh one.
			blk, _ = s.bf.Current()
		}
	}
	s.bf.NoteRecord(startBlock)

	loc := Locator{
		Block:  startBlock,
		Offset: uint32(startOffset),
		Length: uint32(len(buf)),
		Seq:    s.count,
	}
	s.count++
	return loc, nil
}

// ReadRecord concatenates, in block order, the ranges each touched
// block contributes: the tail of the start block, whole middle blocks,
// and the head of the last block, until Length bytes are collected.
func (s *VariableSpanned) ReadRecord(r BlockReader, loc Locator) ([]byte, error) {
	if loc.Length < PrefixSize {
		return nil, fmt.Errorf("%w: locator length %d is below prefix size", ErrPayloadSize, loc.Length)
	}
	buf := make([]byte, 0, loc.Length)
	block, offset := loc.Block, int(loc.Offset)
	for remaining := int(loc.Length); remaining > 0; {
		chunk := min(remaining, r.BlockSize()-offset)
		part, err := r.ReadRange(block, offset, chunk)
		if err != nil {
			return nil, err
		}
		buf = append(buf, part...)
		remaining -= chunk
		block, offset = block+1, 0
	}

	length := int(binary.BigEndian.Uint16(buf[:PrefixSize]))
	if PrefixSize+length != int(loc.Length) {
		return nil, fmt.Errorf("%w: stored prefix says %d bytes, locator says %d",
			ErrPayloadSize, PrefixSize+length, loc.Length)
	}
	return buf[PrefixSize:], nil
}
