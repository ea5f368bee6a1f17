// Command blocksim generates a batch of fake student records, stores
// them under all three block-packing strategies, and prints the
// space/fragmentation comparison.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lfmachado/blocksim/internal/directory"
	"github.com/lfmachado/blocksim/internal/record"
	"github.com/lfmachado/blocksim/internal/sim"
)

func main() {
	var (
		records   = flag.Int("records", 1000, "number of records to generate")
		blockSize = flag.Int("block-size", 512, "block size B in bytes")
		outDir    = flag.String("dir", "blocksim-out", "output directory for .dat files")
		seed      = flag.Uint64("seed", 1, "record generator seed")
		index     = flag.String("index", "btree", "locator directory backend: btree, art or bolt")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*records, *blockSize, *outDir, *seed, *index, logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(records, blockSize int, outDir string, seed uint64, index string, logger *slog.Logger) error {
	var kind directory.Kind
	switch index {
	case "btree":
		kind = directory.BTreeKind
	case "art":
		kind = directory.ARTKind
	case "bolt":
		kind = directory.BoltKind
	default:
		return fmt.Errorf("unknown index backend %q", index)
	}

	cfg := sim.Config{
		BlockSize:     blockSize,
		OutputDir:     outDir,
		DirectoryKind: kind,
	}
	comparator, err := sim.NewComparator(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("generating records", "count", records, "seed", seed)
	students := record.NewGenerator(seed).Generate(records)

	// A failing strategy does not stop the others; report what
	// succeeded and surface the failure afterwards.
	results, runErr := comparator.Run(students)

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := sim.WriteReport(os.Stdout, r.Stats); err != nil {
			return err
		}
		fmt.Println()
	}
	if err := sim.WriteComparison(os.Stdout, results); err != nil {
		return err
	}
	return runErr
}
