package patrol

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"patrol/internal/grid"
)

// ErrNoExit is returned when the unmodified patrol never leaves the grid.
var ErrNoExit = errors.New("patrol never leaves the grid")

// Result summarizes an obstruction search.
type Result struct {
	Candidates int
	Loops      int
	// Positions holds the loop-causing cells in the order the guard reached them.
	Positions []grid.Point
	Duration  time.Duration
}

// Searcher counts the single obstructions that trap the guard in a loop.
type Searcher struct {
	// Workers bounds concurrent candidate runs; 0 means one per CPU.
	Workers int
	Logger  *slog.Logger
}

func NewSearcher(workers int, logger *slog.Logger) *Searcher {
	return &Searcher{Workers: workers, Logger: logger}
}

type hit struct {
	index int
	pos   grid.Point
}

// Search walks the unmodified patrol. Before each tick whose cell ahead is
// still empty, it branches: the branch gets an inserted obstruction on that
// cell and runs to a verdict from the guard's current state. Cells the walk
// already crossed are no longer empty, so the start cell and repeated
// crossings are never proposed.
func (s *Searcher) Search(ctx context.Context, g *grid.Grid) (Result, error) {
	start := time.Now()
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Info("obstruction search started",
		slog.Int("width", g.Width),
		slog.Int("height", g.Height),
		slog.Int("workers", workers),
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var (
		mu   sync.Mutex
		hits []hit
	)
	candidates := 0
	walk := New(g)
	var walkErr error
	for gctx.Err() == nil {
		if next, ok := walk.Ahead(); ok && walk.grid.At(next) == grid.Empty {
			branch := walk.branch()
			branch.grid.Set(next, grid.InsertedObstruction)
			index := candidates
			candidates++
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				verdict := branch.Run()
				candidateRuns.WithLabelValues(verdict.String()).Inc()
				if verdict == Looped {
					logger.Debug("obstruction traps guard", slog.String("at", next.String()))
					mu.Lock()
					hits = append(hits, hit{index, next})
					mu.Unlock()
				}
				return nil
			})
		}

		_, repeat, ok := walk.Step()
		if !ok {
			break
		}
		if repeat || walk.Boxed() {
			walkErr = ErrNoExit
			break
		}
	}

	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if walkErr != nil {
		return Result{}, walkErr
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].index < hits[j].index })
	res := Result{
		Candidates: candidates,
		Loops:      len(hits),
		Positions:  make([]grid.Point, len(hits)),
		Duration:   time.Since(start),
	}
	for i, h := range hits {
		res.Positions[i] = h.pos
	}
	searchDuration.Observe(res.Duration.Seconds())
	logger.Info("obstruction search finished",
		slog.Int("candidates", res.Candidates),
		slog.Int("loops", res.Loops),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
