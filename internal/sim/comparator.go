package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/lfmachado/blocksim/internal/record"
)

const lockFileName = "LOCK"

// ErrDirInUse means another comparator run holds the output directory.
var ErrDirInUse = errors.New("sim: output directory is in use by another process")

// Result is one strategy's outcome inside a comparison run.
type Result struct {
	Strategy StrategyKind
	Stats    Stats
	Err      error
}

// Comparator drives the same record sequence through all three
// strategies into three independent files. One strategy failing does
// not stop the others; its failure is carried in its Result.
type Comparator struct {
	cfg Config
	log *slog.Logger
}

func NewComparator(cfg Config, logger *slog.Logger) (*Comparator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Comparator{cfg: cfg, log: logger}, nil
}

// Run executes all three strategies over students. The output directory
// is created if needed and held under an advisory lock for the whole
// run; a concurrent run fails fast with ErrDirInUse instead of
// interleaving writes. The returned error joins the per-strategy
// failures, if any.
func (c *Comparator) Run(students []*record.Student) ([]Result, error) {
	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	fl := flock.New(filepath.Join(c.cfg.OutputDir, lockFileName))
	held, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock output directory: %w", err)
	}
	if !held {
		return nil, ErrDirInUse
	}
	defer fl.Unlock()

	simulator, err := New(c.cfg, c.log)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(AllStrategies))
	var errs []error
	for _, kind := range AllStrategies {
		stats, err := simulator.Run(kind, students)
		if err != nil {
			c.log.Error("strategy run failed", "strategy", kind.String(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
		}
		results = append(results, Result{Strategy: kind, Stats: stats, Err: err})
	}
	return results, errors.Join(errs...)
}
