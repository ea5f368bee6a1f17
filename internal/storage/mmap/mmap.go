// Package mmap provides a read-only memory-mapped view of a flushed
// block file.
package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MappedFile maps a flushed block file and serves block-relative range
// reads over it. The file must be an exact multiple of the block size,
// which Flush guarantees for every file this engine writes.
type MappedFile struct {
	file      *os.File
	data      []byte
	blockSize int
}

func Open(path string, blockSize int) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open block file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat block file: %w", err)
	}
	size := fi.Size()
	if size%int64(blockSize) != 0 {
		f.Close()
		return nil, fmt.Errorf("file size %d is not a multiple of block size %d", size, blockSize)
	}

	// An empty file is valid: zero blocks, nothing mapped.
	if size == 0 {
		return &MappedFile{file: f, blockSize: blockSize}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap: %w", err)
	}
	return &MappedFile{file: f, data: data, blockSize: blockSize}, nil
}

func (m *MappedFile) BlockSize() int  { return m.blockSize }
func (m *MappedFile) BlockCount() int { return len(m.data) / m.blockSize }

// ReadRange returns length bytes at offset inside the given block. The
// returned slice aliases the mapping; callers must not retain it past
// Close.
func (m *MappedFile) ReadRange(index uint32, offset, length int) ([]byte, error) {
	if int(index) >= m.BlockCount() {
		return nil, fmt.Errorf("block index %d out of range (%d blocks)", index, m.BlockCount())
	}
	if offset < 0 || length < 0 || offset+length > m.blockSize {
		return nil, fmt.Errorf("range [%d,%d) outside block of %d bytes", offset, offset+length, m.blockSize)
	}
	base := int(index) * m.blockSize
	return m.data[base+offset : base+offset+length], nil
}

func (m *MappedFile) Close() error {
	if len(m.data) > 0 {
		if err := unix.Munmap(m.data); err != nil {
			m.file.Close()
			return fmt.Errorf("munmap failed: %w", err)
		}
		m.data = nil
	}
	return m.file.Close()
}
