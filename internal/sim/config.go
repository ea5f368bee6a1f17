// Package sim drives the three packing strategies over one record
// sequence and aggregates the space/fragmentation tallies that make
// them comparable.
package sim

import (
	"errors"
	"fmt"

	"github.com/lfmachado/blocksim/internal/directory"
	"github.com/lfmachado/blocksim/internal/record"
	"github.com/lfmachado/blocksim/internal/storage"
)

var ErrInvalidConfig = errors.New("sim: invalid configuration")

// StrategyKind names one of the three packing strategies.
type StrategyKind int8

const (
	Fixed StrategyKind = iota + 1
	Contiguous
	Spanned
)

func (k StrategyKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Contiguous:
		return "contiguous"
	case Spanned:
		return "spanned"
	default:
		return fmt.Sprintf("strategy(%d)", k)
	}
}

// AllStrategies lists the kinds the comparator runs, in run order.
var AllStrategies = []StrategyKind{Fixed, Contiguous, Spanned}

// Config holds one simulation run's parameters. The block size is
// shared by all three strategies; the comparison is only fair when the
// three files use the same B.
type Config struct {
	// BlockSize is the fixed block capacity B in bytes.
	BlockSize int

	// OutputDir receives one .dat file (and, with the bolt backend,
	// one .idx file) per strategy.
	OutputDir string

	// DirectoryKind selects the locator directory backend.
	DirectoryKind directory.Kind
}

func DefaultConfig(outputDir string) Config {
	return Config{
		BlockSize:     512,
		OutputDir:     outputDir,
		DirectoryKind: directory.BTreeKind,
	}
}

// Validate rejects layouts that can never work. The per-strategy
// constructors re-check their own constraints; this catches them before
// any file is created.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory not specified", ErrInvalidConfig)
	}
	if record.FixedSize > c.BlockSize {
		return fmt.Errorf("%w: fixed record of %d bytes cannot fit block size %d",
			ErrInvalidConfig, record.FixedSize, c.BlockSize)
	}
	maxVar := record.VariableCodec{}.MaxEncodedLength() + storage.PrefixSize
	if maxVar > c.BlockSize {
		return fmt.Errorf("%w: maximal variable record of %d bytes cannot fit block size %d without spanning",
			ErrInvalidConfig, maxVar, c.BlockSize)
	}
	return nil
}
