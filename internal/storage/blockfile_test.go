package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockFile_Allocation(t *testing.T) {
	t.Run("rejects non-positive block size", func(t *testing.T) {
		_, err := NewBlockFile(0)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("lazy monotonic allocation", func(t *testing.T) {
		bf, err := NewBlockFile(8)
		require.NoError(t, err)
		require.Equal(t, 0, bf.BlockCount())

		blk, idx := bf.Current()
		require.EqualValues(t, 0, idx)
		require.Equal(t, 1, bf.BlockCount())

		blk.Append(bytes.Repeat([]byte{1}, 8))
		_, idx = bf.Current()
		require.EqualValues(t, 1, idx)
		require.Equal(t, 2, bf.BlockCount())
	})

	t.Run("seal forces a new block", func(t *testing.T) {
		bf, err := NewBlockFile(8)
		require.NoError(t, err)
		blk, _ := bf.Current()
		blk.Append([]byte("ab"))
		bf.SealCurrent()

		next, idx := bf.Current()
		require.EqualValues(t, 1, idx)
		require.Equal(t, 0, next.Used())
	})

	t.Run("block at out of range", func(t *testing.T) {
		bf, err := NewBlockFile(8)
		require.NoError(t, err)
		_, err = bf.BlockAt(0)
		require.ErrorIs(t, err, ErrBlockOutOfRange)
	})
}

func TestBlockFile_WriteTo(t *testing.T) {
	t.Run("pads every block to block size", func(t *testing.T) {
		bf, err := NewBlockFile(8)
		require.NoError(t, err)

		blk, _ := bf.Current()
		blk.Append(bytes.Repeat([]byte{0xFF}, 8))
		blk, _ = bf.Current()
		blk.Append([]byte{0xEE, 0xEE})

		var out bytes.Buffer
		n, err := bf.WriteTo(&out)
		require.NoError(t, err)
		require.EqualValues(t, 16, n)

		want := append(bytes.Repeat([]byte{0xFF}, 8), 0xEE, 0xEE, 0, 0, 0, 0, 0, 0)
		require.Equal(t, want, out.Bytes())
	})

	t.Run("checksum is deterministic", func(t *testing.T) {
		build := func() *BlockFile {
			bf, err := NewBlockFile(16)
			require.NoError(t, err)
			blk, _ := bf.Current()
			blk.Append([]byte("same content"))
			return bf
		}
		require.Equal(t, build().Checksum(), build().Checksum())
	})
}

func TestBlockFile_Stats(t *testing.T) {
	bf, err := NewBlockFile(8)
	require.NoError(t, err)

	blk, idx := bf.Current()
	blk.Append(bytes.Repeat([]byte{1}, 8))
	bf.NoteRecord(idx)
	bf.NoteRecord(idx)

	blk, idx = bf.Current()
	blk.Append([]byte{2})
	bf.NoteRecord(idx)

	stats := bf.Stats()
	require.Len(t, stats, 2)
	require.Equal(t, BlockStat{Used: 8, Records: 2}, stats[0])
	require.Equal(t, BlockStat{Used: 1, Records: 1}, stats[1])
}
