package utils

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// NewLogger builds the structured logger used across the simulation
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewLogger] unknown log level: %+v", level)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "life",
		ReportTimestamp: true,
	}), nil
}
