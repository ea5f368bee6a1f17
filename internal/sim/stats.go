package sim

import "github.com/lfmachado/blocksim/internal/storage"

// Stats are the tallies for one strategy's finished file.
//
// PayloadBytes counts everything the strategy wrote into blocks,
// including length prefixes and slot padding. FillerBytes is the block
// tail space left unwritten, so PayloadBytes+FillerBytes always equals
// CapacityBytes. UsefulBytes is the variable-size measure of the same
// records; the gap between payload and useful is slot padding under the
// fixed strategy and length-prefix overhead under the variable ones.
type Stats struct {
	Strategy string
	Records  int

	Blocks        int
	CapacityBytes int
	PayloadBytes  int
	FillerBytes   int

	UsefulBytes   int
	OverheadBytes int

	PartialBlocks int
	AvgOccupancy  float64 // percent, mean over blocks
	Efficiency    float64 // percent, useful bytes over capacity

	Checksum uint64
	PerBlock []storage.BlockStat
}

func computeStats(kind StrategyKind, records int, bf *storage.BlockFile, usefulBytes int) Stats {
	perBlock := bf.Stats()
	st := Stats{
		Strategy:      kind.String(),
		Records:       records,
		Blocks:        len(perBlock),
		CapacityBytes: len(perBlock) * bf.BlockSize(),
		UsefulBytes:   usefulBytes,
		Checksum:      bf.Checksum(),
		PerBlock:      perBlock,
	}
	for _, b := range perBlock {
		st.PayloadBytes += b.Used
		if b.Used > 0 && b.Used < bf.BlockSize() {
			st.PartialBlocks++
		}
		st.AvgOccupancy += float64(b.Used) / float64(bf.BlockSize()) * 100
	}
	st.FillerBytes = st.CapacityBytes - st.PayloadBytes
	st.OverheadBytes = st.PayloadBytes - st.UsefulBytes
	if st.Blocks > 0 {
		st.AvgOccupancy /= float64(st.Blocks)
		st.Efficiency = float64(st.UsefulBytes) / float64(st.CapacityBytes) * 100
	}
	return st
}
