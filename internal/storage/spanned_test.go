package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariableSpanned_WriteRead(t *testing.T) {
	newStrat := func(t *testing.T, blockSize int) (*VariableSpanned, *BlockFile) {
		bf, err := NewBlockFile(blockSize)
		require.NoError(t, err)
		s, err := NewVariableSpanned(bf, 1000)
		require.NoError(t, err)
		return s, bf
	}

	t.Run("second record spans into next block", func(t *testing.T) {
		s, bf := newStrat(t, 64)
		first := bytes.Repeat([]byte{'a'}, 20)
		second := bytes.Repeat([]byte{'b'}, 50)

		// Record 1 occupies bytes [0,22) of block 0.
		loc1, err := s.WriteRecord(first)
		require.NoError(t, err)
		require.Equal(t, Locator{Block: 0, Offset: 0, Length: 22, Seq: 0}, loc1)

		// Record 2 (52 bytes with prefix) starts at offset 22, fills
		// the remaining 42 bytes of block 0 and continues with 10 more
		// bytes in block 1.
		loc2, err := s.WriteRecord(second)
		require.NoError(t, err)
		require.Equal(t, Locator{Block: 0, Offset: 22, Length: 52, Seq: 1}, loc2)

		stats := bf.Stats()
		require.Equal(t, 64, stats[0].Used)
		require.Equal(t, 10, stats[1].Used)

		got, err := s.ReadRecord(bf, loc1)
		require.NoError(t, err)
		require.Equal(t, first, got)
		got, err = s.ReadRecord(bf, loc2)
		require.NoError(t, err)
		require.Equal(t, second, got)
	})

	t.Run("record larger than a block spans many", func(t *testing.T) {
		s, bf := newStrat(t, 16)
		payload := bytes.Repeat([]byte{0xCD}, 100)

		loc, err := s.WriteRecord(payload)
		require.NoError(t, err)
		require.Equal(t, Locator{Block: 0, Offset: 0, Length: 102, Seq: 0}, loc)
		require.Equal(t, 7, bf.BlockCount())

		// Every block a spanning write crosses is 100% utilized except
		// the last one.
		stats := bf.Stats()
		for i := 0; i < 6; i++ {
			require.Equal(t, 16, stats[i].Used)
		}
		require.Equal(t, 102-6*16, stats[6].Used)

		got, err := s.ReadRecord(bf, loc)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	})

	t.Run("stream stays continuous across records", func(t *testing.T) {
		s, bf := newStrat(t, 32)
		var locs []Locator
		var payloads [][]byte
		for i := 0; i < 25; i++ {
			p := bytes.Repeat([]byte{byte(i + 1)}, 5+i*3%40)
			loc, err := s.WriteRecord(p)
			require.NoError(t, err)
			locs = append(locs, loc)
			payloads = append(payloads, p)
		}

		// Only the very last block may be partial.
		stats := bf.Stats()
		for i := 0; i < len(stats)-1; i++ {
			require.Equal(t, 32, stats[i].Used)
		}

		for i, loc := range locs {
			got, err := s.ReadRecord(bf, loc)
			require.NoError(t, err)
			require.Equal(t, payloads[i], got)
		}
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		s, _ := newStrat(t, 16)
		_, err := s.WriteRecord(nil)
		require.ErrorIs(t, err, ErrPayloadSize)
	})
}
