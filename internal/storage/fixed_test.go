package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedSize_Config(t *testing.T) {
	bf, err := NewBlockFile(64)
	require.NoError(t, err)

	t.Run("slot exceeds block size", func(t *testing.T) {
		_, err := NewFixedSize(bf, 65)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("non-positive slot", func(t *testing.T) {
		_, err := NewFixedSize(bf, 0)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("floor slots per block", func(t *testing.T) {
		s, err := NewFixedSize(bf, 30)
		require.NoError(t, err)
		require.Equal(t, 2, s.SlotsPerBlock())
	})
}

func TestFixedSize_WriteRead(t *testing.T) {
	// slotSize=30, B=64: two slots per block, 4 trailing bytes of every
	// block are permanent filler.
	newStrat := func(t *testing.T) (*FixedSize, *BlockFile) {
		bf, err := NewBlockFile(64)
		require.NoError(t, err)
		s, err := NewFixedSize(bf, 30)
		require.NoError(t, err)
		return s, bf
	}
	slot := func(fill byte) []byte { return bytes.Repeat([]byte{fill}, 30) }

	t.Run("rejects wrong payload length", func(t *testing.T) {
		s, _ := newStrat(t)
		_, err := s.WriteRecord(make([]byte, 29))
		require.ErrorIs(t, err, ErrPayloadSize)
	})

	t.Run("record index 3 maps to block 1 offset 30", func(t *testing.T) {
		s, bf := newStrat(t)
		var locs []Locator
		for i := byte(0); i < 4; i++ {
			loc, err := s.WriteRecord(slot('a' + i))
			require.NoError(t, err)
			require.EqualValues(t, 30, loc.Length)
			locs = append(locs, loc)
		}

		require.EqualValues(t, 3, locs[3].Seq)
		require.EqualValues(t, 1, locs[3].Block)
		require.EqualValues(t, 30, locs[3].Offset)

		// 4 bytes wasted per closed block.
		stats := bf.Stats()
		require.Equal(t, 60, stats[0].Used)
		require.Equal(t, 2, stats[0].Records)

		for i, loc := range locs {
			got, err := s.ReadRecord(bf, loc)
			require.NoError(t, err)
			require.Equal(t, slot('a'+byte(i)), got)
		}
	})

	t.Run("read past written blocks", func(t *testing.T) {
		s, bf := newStrat(t)
		_, err := s.WriteRecord(slot('x'))
		require.NoError(t, err)
		_, err = s.ReadRecord(bf, Locator{Seq: 9})
		require.ErrorIs(t, err, ErrBlockOutOfRange)
	})
}
