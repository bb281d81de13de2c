package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

// Renderer draws completed generations
type Renderer interface {
	Draw(s *model.Snapshot) error
}

// Play runs the simulation while a second goroutine draws every generation
// at most once per frameInterval. The renderer only ever receives copies of
// completed generations. A non-positive frameInterval disables pacing.
func (e *Engine) Play(
	ctx context.Context,
	iterationLimit int,
	renderer Renderer,
	frameInterval time.Duration,
) (float64, error) {
	if err := model.ValidateIterationLimit(iterationLimit); err != nil {
		return 0, err
	}

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		pool      = model.NewSnapshotPool()
		frames    = make(chan *model.Snapshot)
		avg       float64
	)

	eg.Go(func() error {
		defer close(frames)

		var err error
		avg, err = e.run(egCtx, iterationLimit, func(ctx context.Context, _ int, board *model.Board) error {
			s := pool.Get(board)
			select {
			case frames <- s:
			case <-ctx.Done():
				model.SnapshotToPool(s, pool)
			}
			return nil
		})
		return err
	})

	eg.Go(func() error {
		var tick <-chan time.Time
		if frameInterval > 0 {
			ticker := time.NewTicker(frameInterval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for s := range frames {
			err := renderer.Draw(s)
			model.SnapshotToPool(s, pool)
			if err != nil {
				return errors.Wrap(err, "[Engine.Play] failed to draw frame")
			}

			if tick == nil {
				continue
			}
			select {
			case <-tick:
			case <-egCtx.Done():
			}
		}
		return nil
	})

	err := eg.Wait()
	return avg, err
}
