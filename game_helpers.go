package main

import (
	"bytes"
	"context"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// parseDimensions reads the X and Y cell counts from the command line
func parseDimensions(args []string) (width, height int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("[parseDimensions] expected 2 arguments, got %d", len(args))
	}
	if width, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "[parseDimensions] bad X_CELLS: %+v", args[0])
	}
	if height, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "[parseDimensions] bad Y_CELLS: %+v", args[1])
	}
	return width, height, model.ValidateDimensions(width, height)
}

// initializeGame validates the configuration and seeds a random board
func initializeGame(config utils.Config, logger *log.Logger) (*engine.Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.SeedOrNow()
	board, err := model.NewRandomBoard(config.Width, config.Height, config.Occupancy, model.NewRand(seed))
	if err != nil {
		return nil, err
	}

	logger.Info("board created",
		"width", config.Width, "height", config.Height,
		"occupancy", config.Occupancy, "seed", seed,
		"living", board.CountLivingCells(),
	)
	return engine.New(board, logger), nil
}

// runProfile runs the fixed headless simulation under the CPU profiler
func runProfile(ctx context.Context, config utils.Config, logger *log.Logger) error {
	eng, err := initializeGame(config, logger)
	if err != nil {
		return err
	}

	f, err := os.Create(config.ProfileOutput)
	if err != nil {
		return errors.Wrapf(err, "[runProfile] failed to create profile: %+v", config.ProfileOutput)
	}
	defer f.Close()

	if err = pprof.StartCPUProfile(f); err != nil {
		return errors.Wrap(err, "[runProfile] failed to start CPU profile")
	}
	avg, err := eng.Run(ctx, config.IterationLimit)
	pprof.StopCPUProfile()
	if err != nil {
		return err
	}

	displayFinalStats(logger, eng, avg)
	logger.Info("profile written", "path", config.ProfileOutput)
	return nil
}

// runInteractive draws the simulation on the terminal until it ends or the user quits
func runInteractive(ctx context.Context, config utils.Config, logger *log.Logger) error {
	eng, err := initializeGame(config, logger)
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		logger.Warn("terminal screen unavailable, using plain output", "err", err)
		avg, err := eng.Play(ctx, config.IterationLimit, model.NewTerminalRenderer(os.Stdout), config.FrameInterval())
		if err != nil {
			return err
		}
		displayFinalStats(logger, eng, avg)
		return nil
	}

	// Hold log output back while the screen is active
	var buffered bytes.Buffer
	logger.SetOutput(&buffered)

	var (
		renderer    = model.NewScreenRenderer(screen)
		eg, egCtx   = errgroup.WithContext(ctx)
		simCtx, end = context.WithCancel(egCtx)
		avg         float64
	)
	defer end()

	eg.Go(func() error {
		defer end()
		var playErr error
		avg, playErr = eng.Play(simCtx, config.IterationLimit, renderer, config.FrameInterval())
		return playErr
	})
	eg.Go(func() error {
		renderer.WatchQuit(simCtx, end)
		return nil
	})
	err = eg.Wait()

	screen.Fini()
	logger.SetOutput(os.Stderr)
	_, _ = os.Stderr.Write(buffered.Bytes())
	if err != nil {
		return err
	}

	displayFinalStats(logger, eng, avg)
	return nil
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to initialize screen")
	}
	return screen, nil
}

// displayFinalStats logs the run summary
func displayFinalStats(logger *log.Logger, eng *engine.Engine, avg float64) {
	stats := eng.Stats()
	logger.Info("final stats",
		"generations", stats.TotalGenerations,
		"average_update_seconds", avg,
		"last_gen_per_sec", stats.GenerationsPerSecond,
		"average_population", stats.AveragePopulation,
		"board_hash", eng.Hash(),
	)
}
