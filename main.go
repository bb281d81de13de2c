package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	configFile = "config.json"
	usage      = "USAGE: life X_CELLS Y_CELLS"

	exitOK    = 0
	exitError = 1
	exitUsage = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 0 && len(args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		return exitUsage
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, loadErr := utils.LoadConfig(configFile)
	if loadErr != nil {
		config = utils.DefaultConfig()
	}

	logger, err := utils.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	if loadErr != nil {
		logger.Info("using default configuration", "reason", loadErr)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(args) == 0 {
		config.Width, config.Height = utils.ProfileWidth, utils.ProfileHeight
		config.IterationLimit = utils.ProfileIterations
		if err = runProfile(ctx, config, logger); err != nil {
			logger.Error("profiling run failed", "err", err)
			return exitError
		}
		return exitOK
	}

	config.Width, config.Height, err = parseDimensions(args)
	if err != nil {
		logger.Error("bad dimensions", "err", err)
		fmt.Fprintln(os.Stderr, usage)
		return exitUsage
	}
	if err = runInteractive(ctx, config, logger); err != nil {
		logger.Error("simulation failed", "err", err)
		return exitError
	}
	return exitOK
}
