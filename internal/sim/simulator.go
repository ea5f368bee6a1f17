package sim

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lfmachado/blocksim/internal/directory"
	"github.com/lfmachado/blocksim/internal/record"
	"github.com/lfmachado/blocksim/internal/storage"
	"github.com/lfmachado/blocksim/internal/storage/mmap"
)

// Simulator runs a single strategy over a record sequence: encode each
// record, pack it through the strategy into an in-memory block file,
// flush the blocks to disk, then verify every record is retrievable
// from the flushed file through its directory locator.
type Simulator struct {
	cfg Config
	log *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{cfg: cfg, log: logger}, nil
}

// encoder is the slice of the codec contract the simulator needs.
type encoder interface {
	Encode(*record.Student) ([]byte, error)
	Decode([]byte) (*record.Student, error)
	MaxEncodedLength() int
}

func (s *Simulator) build(kind StrategyKind, bf *storage.BlockFile) (storage.Strategy, encoder, error) {
	switch kind {
	case Fixed:
		codec := record.FixedCodec{}
		strat, err := storage.NewFixedSize(bf, codec.MaxEncodedLength())
		return strat, codec, err
	case Contiguous:
		codec := record.VariableCodec{}
		strat, err := storage.NewVariableContiguous(bf, codec.MaxEncodedLength())
		return strat, codec, err
	case Spanned:
		codec := record.VariableCodec{}
		strat, err := storage.NewVariableSpanned(bf, codec.MaxEncodedLength())
		return strat, codec, err
	default:
		return nil, nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, kind)
	}
}

// Run writes all students through one strategy and returns the tallies.
// An error aborts this strategy's run only; the other strategies write
// independent files and are unaffected.
func (s *Simulator) Run(kind StrategyKind, students []*record.Student) (Stats, error) {
	bf, err := storage.NewBlockFile(s.cfg.BlockSize)
	if err != nil {
		return Stats{}, err
	}
	strat, codec, err := s.build(kind, bf)
	if err != nil {
		return Stats{}, err
	}

	dir, err := directory.Open(s.cfg.DirectoryKind, filepath.Join(s.cfg.OutputDir, kind.String()+".idx"))
	if err != nil {
		return Stats{}, err
	}
	defer dir.Close()

	useful := 0
	for _, st := range students {
		payload, err := codec.Encode(st)
		if err != nil {
			return Stats{}, fmt.Errorf("encoding record %d: %w", st.Matricula, err)
		}
		loc, err := strat.WriteRecord(payload)
		if err != nil {
			return Stats{}, fmt.Errorf("packing record %d: %w", st.Matricula, err)
		}
		if err := dir.Put(st.Matricula, loc); err != nil {
			return Stats{}, fmt.Errorf("indexing record %d: %w", st.Matricula, err)
		}
		useful += st.VariableSize()
	}

	path := filepath.Join(s.cfg.OutputDir, kind.String()+".dat")
	if err := flush(path, bf); err != nil {
		return Stats{}, err
	}
	if err := s.verify(path, strat, dir, students, codec); err != nil {
		return Stats{}, err
	}

	stats := computeStats(kind, len(students), bf, useful)
	s.log.Info("strategy run complete",
		"strategy", kind.String(),
		"records", stats.Records,
		"blocks", stats.Blocks,
		"filler_bytes", stats.FillerBytes,
		"efficiency_pct", fmt.Sprintf("%.2f", stats.Efficiency))
	return stats, nil
}

// flush persists the block file. The handle follows the scoped
// open-write-sync-close discipline; the close error surfaces when
// nothing failed earlier.
func flush(path string, bf *storage.BlockFile) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create block file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := bf.WriteTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush block file: %w", err)
	}
	return f.Sync()
}

// verify reads every record back from the flushed file through its
// locator and checks the decoded identity against the source.
func (s *Simulator) verify(path string, strat storage.Strategy, dir directory.Directory, students []*record.Student, codec encoder) error {
	m, err := mmap.Open(path, s.cfg.BlockSize)
	if err != nil {
		return err
	}
	defer m.Close()

	for _, st := range students {
		loc, err := dir.Get(st.Matricula)
		if err != nil {
			return fmt.Errorf("record %d: %w", st.Matricula, err)
		}
		payload, err := strat.ReadRecord(m, loc)
		if err != nil {
			return fmt.Errorf("reading record %d back: %w", st.Matricula, err)
		}
		got, err := codec.Decode(payload)
		if err != nil {
			return fmt.Errorf("decoding record %d: %w", st.Matricula, err)
		}
		if *got != *st {
			return fmt.Errorf("%w: record %d did not survive the round trip", record.ErrDecode, st.Matricula)
		}
	}
	return nil
}
