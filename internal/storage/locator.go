package storage

import "encoding/binary"

// LocatorSize is the fixed wire width of a marshalled Locator.
const LocatorSize = 16

// Locator is the addressing information needed to retrieve a stored
// record. One flat shape serves all three strategies; each strategy
// interprets the fields it needs:
//
//	FixedSize:          Seq (block and offset derive from it)
//	VariableContiguous: Block, Offset, Length
//	VariableSpanned:    Block, Offset, Length (Length spans blocks)
//
// Length counts stored bytes including the length prefix where one
// exists. Seq is the zero-based write sequence number in every case.
type Locator struct {
	Block  uint32
	Offset uint32
	Length uint32
	Seq    uint32
}

// Marshal writes the locator into dst, which must hold LocatorSize
// bytes. The writer and reader agree on the layout by construction.
func (l Locator) Marshal(dst []byte) {
	binary.BigEndian.PutUint32(dst[0:4], l.Block)
	binary.BigEndian.PutUint32(dst[4:8], l.Offset)
	binary.BigEndian.PutUint32(dst[8:12], l.Length)
	binary.BigEndian.PutUint32(dst[12:16], l.Seq)
}

// Unmarshal reads a locator back from src. The caller bounds-checks.
func (l *Locator) Unmarshal(src []byte) {
	l.Block = binary.BigEndian.Uint32(src[0:4])
	l.Offset = binary.BigEndian.Uint32(src[4:8])
	l.Length = binary.BigEndian.Uint32(src[8:12])
	l.Seq = binary.BigEndian.Uint32(src[12:16])
}
