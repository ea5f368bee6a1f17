package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlock_Append(t *testing.T) {
	t.Run("fits entirely", func(t *testing.T) {
		b := NewBlock(16)
		n := b.Append([]byte("hello"))
		require.Equal(t, 5, n)
		require.Equal(t, 5, b.Used())
		require.Equal(t, 11, b.Remaining())
		require.False(t, b.IsFull())
	})

	t.Run("partial write at capacity", func(t *testing.T) {
		b := NewBlock(8)
		n := b.Append(bytes.Repeat([]byte{0xAB}, 12))
		require.Equal(t, 8, n)
		require.True(t, b.IsFull())

		// A full block accepts nothing more.
		require.Equal(t, 0, b.Append([]byte{1}))
	})

	t.Run("exact fit", func(t *testing.T) {
		b := NewBlock(8)
		n := b.Append(bytes.Repeat([]byte{1}, 8))
		require.Equal(t, 8, n)
		require.True(t, b.IsFull())
		require.Equal(t, 0, b.Remaining())
	})

	t.Run("sealed block refuses writes", func(t *testing.T) {
		b := NewBlock(16)
		b.Append([]byte("abc"))
		b.Seal()
		require.True(t, b.IsFull())
		require.Equal(t, 0, b.Remaining())
		require.Equal(t, 0, b.Append([]byte("more")))
		require.Equal(t, 3, b.Used())
	})
}

func TestBlock_ReadRange(t *testing.T) {
	b := NewBlock(16)
	b.Append([]byte("hello world"))

	t.Run("within written region", func(t *testing.T) {
		got, err := b.ReadRange(6, 5)
		require.NoError(t, err)
		require.Equal(t, []byte("world"), got)
	})

	t.Run("beyond written region", func(t *testing.T) {
		_, err := b.ReadRange(8, 8)
		require.ErrorIs(t, err, ErrRange)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, err := b.ReadRange(-1, 2)
		require.ErrorIs(t, err, ErrRange)
	})
}
