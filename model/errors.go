package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned for a non-positive grid width or height
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidProbability is returned for an occupancy outside [0, 1]
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrInvalidIterationLimit is returned for a negative iteration limit
	ErrInvalidIterationLimit = errors.New("invalid iteration limit")
)

// ValidateDimensions checks that both grid dimensions are positive
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "[ValidateDimensions] grid must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidateOccupancy checks that occupancy is a probability
func ValidateOccupancy(occupancy float64) error {
	// NaN fails both comparisons
	if !(occupancy >= 0 && occupancy <= 1) {
		return errors.Wrapf(ErrInvalidProbability, "[ValidateOccupancy] occupancy must be within [0, 1], got %v", occupancy)
	}
	return nil
}

// ValidateIterationLimit checks that the iteration limit is not negative
func ValidateIterationLimit(limit int) error {
	if limit < 0 {
		return errors.Wrapf(ErrInvalidIterationLimit, "[ValidateIterationLimit] limit must not be negative, got %d", limit)
	}
	return nil
}
