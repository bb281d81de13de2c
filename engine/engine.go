// Package engine drives a board through successive generations and hands
// completed generations to renderers.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Observer is called after every completed generation.
// The board must only be read, and only until the observer returns.
type Observer func(ctx context.Context, generation int, board *model.Board) error

// Engine exclusively owns a board and advances it one generation at a time
type Engine struct {
	board      *model.Board
	logger     *log.Logger
	stats      *utils.Stats
	observer   Observer
	generation int
}

// New returns an engine driving board
func New(board *model.Board, logger *log.Logger) *Engine {
	return &Engine{
		board:  board,
		logger: logger,
		stats:  utils.NewStats(),
	}
}

// Observe registers fn to be called after every generation of Run
func (e *Engine) Observe(fn Observer) {
	e.observer = fn
}

// Generation returns the number of generations computed so far
func (e *Engine) Generation() int {
	return e.generation
}

// Stats returns a copy of the collected update statistics
func (e *Engine) Stats() utils.Stats {
	return *e.stats
}

// Snapshot copies the current generation into dst
func (e *Engine) Snapshot(dst *model.Snapshot) {
	e.board.SnapshotInto(dst)
}

// Hash returns the hash of the current generation
func (e *Engine) Hash() string {
	return e.board.Hash()
}

// Advance computes one generation and returns how long the update took
func (e *Engine) Advance() time.Duration {
	start := time.Now()
	e.board.Update()
	elapsed := time.Since(start)

	e.generation++
	population := e.board.CountLivingCells()
	e.stats.Update(e.generation, population, elapsed)
	e.logger.Debug("generation computed", "generation", e.generation, "population", population, "elapsed", elapsed)

	return elapsed
}

// Run advances the board up to iterationLimit+1 times and returns the average
// update time in seconds. Cancellation of ctx is honored between generations.
func (e *Engine) Run(ctx context.Context, iterationLimit int) (float64, error) {
	if err := model.ValidateIterationLimit(iterationLimit); err != nil {
		return 0, err
	}
	return e.run(ctx, iterationLimit, e.observer)
}

func (e *Engine) run(ctx context.Context, iterationLimit int, observer Observer) (float64, error) {
	e.logger.Info("simulation started",
		"width", e.board.Width(), "height", e.board.Height(),
		"iteration_limit", iterationLimit, "population", e.board.CountLivingCells(),
	)

	var (
		counter int
		timing  time.Duration
	)
	for counter <= iterationLimit {
		if ctx.Err() != nil {
			e.logger.Info("simulation canceled", "generation", e.generation)
			break
		}

		timing += e.Advance()
		counter++

		if observer == nil {
			continue
		}
		if err := observer(ctx, e.generation, e.board); err != nil {
			return averageSeconds(timing, counter), errors.Wrapf(err, "[Engine.Run] observer failed at generation %d", e.generation)
		}
	}

	avg := averageSeconds(timing, counter)
	e.logger.Info("simulation finished",
		"generations", counter, "average_update", time.Duration(avg*float64(time.Second)),
	)
	return avg, nil
}

func averageSeconds(total time.Duration, iterations int) float64 {
	return total.Seconds() / float64(max(iterations, 1))
}
