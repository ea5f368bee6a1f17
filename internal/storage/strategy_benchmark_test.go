package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func benchmarkWrites(b *testing.B, build func(bf *BlockFile) (Strategy, error), payload []byte) {
	bf, err := NewBlockFile(4096)
	require.NoError(b, err)
	strat, err := build(bf)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := strat.WriteRecord(payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFixedSize_WriteRecord(b *testing.B) {
	benchmarkWrites(b, func(bf *BlockFile) (Strategy, error) {
		return NewFixedSize(bf, 163)
	}, bytes.Repeat([]byte{'x'}, 163))
}

func BenchmarkVariableContiguous_WriteRecord(b *testing.B) {
	benchmarkWrites(b, func(bf *BlockFile) (Strategy, error) {
		return NewVariableContiguous(bf, 512)
	}, bytes.Repeat([]byte{'x'}, 87))
}

func BenchmarkVariableSpanned_WriteRecord(b *testing.B) {
	benchmarkWrites(b, func(bf *BlockFile) (Strategy, error) {
		return NewVariableSpanned(bf, 512)
	}, bytes.Repeat([]byte{'x'}, 87))
}
