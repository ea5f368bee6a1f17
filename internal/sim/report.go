package sim

import (
	"fmt"
	"io"
)

// maxMapRows caps the per-block occupancy map so large runs stay
// readable.
const maxMapRows = 10

// WriteReport renders one strategy's tallies in the shape of the
// classic storage report: totals, average occupancy, partial blocks,
// efficiency, then a capped per-block occupancy map.
func WriteReport(w io.Writer, st Stats) error {
	_, err := fmt.Fprintf(w, "=== %s ===\n", st.Strategy)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "1. Total blocks used:        %d\n", st.Blocks)
	fmt.Fprintf(w, "2. Average block occupancy:  %.2f%%\n", st.AvgOccupancy)
	fmt.Fprintf(w, "3. Partially used blocks:    %d\n", st.PartialBlocks)
	fmt.Fprintf(w, "4. Storage efficiency:       %.2f%%\n", st.Efficiency)
	fmt.Fprintf(w, "   records=%d payload=%dB filler=%dB overhead=%dB checksum=%016x\n",
		st.Records, st.PayloadBytes, st.FillerBytes, st.OverheadBytes, st.Checksum)

	fmt.Fprintln(w, "-- block occupancy map --")
	rows := min(len(st.PerBlock), maxMapRows)
	blockSize := 0
	if st.Blocks > 0 {
		blockSize = st.CapacityBytes / st.Blocks
	}
	for i := 0; i < rows; i++ {
		b := st.PerBlock[i]
		pct := float64(b.Used) / float64(blockSize) * 100
		fmt.Fprintf(w, "block %d: %d/%d bytes (%.2f%% full, %d records)\n",
			i, b.Used, blockSize, pct, b.Records)
	}
	if st.Blocks > rows {
		_, err = fmt.Fprintf(w, "(... and %d more blocks)\n", st.Blocks-rows)
	}
	return err
}

// WriteComparison renders the three strategies side by side.
func WriteComparison(w io.Writer, results []Result) error {
	_, err := fmt.Fprintf(w, "%-12s %8s %8s %10s %10s %10s %8s\n",
		"strategy", "records", "blocks", "payload", "filler", "overhead", "eff%")
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%-12s failed: %v\n", r.Strategy, r.Err)
			continue
		}
		st := r.Stats
		fmt.Fprintf(w, "%-12s %8d %8d %10d %10d %10d %8.2f\n",
			st.Strategy, st.Records, st.Blocks, st.PayloadBytes, st.FillerBytes,
			st.OverheadBytes, st.Efficiency)
	}
	return nil
}
