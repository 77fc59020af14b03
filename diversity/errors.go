package diversity

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is matched by every InsufficientDataError.
	ErrInsufficientData = errors.New("insufficient data")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrInvalidConfig    = errors.New("invalid config")
)

// Undefined is the value reported for a metric that is not computable for the sample.
const Undefined = -1.0

// InsufficientDataError reports a sequence shorter than an algorithm's minimum length.
type InsufficientDataError struct {
	Metric string
	Need   int
	Got    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need at least %d tokens, got %d", e.Metric, e.Need, e.Got)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
