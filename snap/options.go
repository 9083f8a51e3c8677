package snap

import (
	"errors"
	"log"
	"time"
)

const (
	// DefaultPredictionThreshold is the minimum drag length in pixels before
	// the drag vector overrides the quadrant rule.
	DefaultPredictionThreshold = 10

	// DefaultVerifyDelay is how long SetCorner waits before checking the
	// rendered position.
	DefaultVerifyDelay = 50 * time.Millisecond

	// ratioEpsilon stands in for |dy| when it is too small to divide by.
	ratioEpsilon = 0.001

	diagonalMinRatio = 0.5
	diagonalMaxRatio = 2.0
)

var (
	ErrInvalidCorner      = errors.New("snap: invalid corner")
	ErrNotReady           = errors.New("snap: metrics not available")
	ErrAlreadyInitialized = errors.New("snap: metrics already captured")
	ErrInvalidMetrics     = errors.New("snap: invalid metrics")
	ErrClosed             = errors.New("snap: machine closed")
)

// Options configures corner prediction and the snap machine.
type Options struct {
	// PredictionEnabled turns on vector based prediction.
	PredictionEnabled bool
	// PredictionThreshold is the minimum drag distance, in pixels, for
	// prediction to apply.
	PredictionThreshold float64
	// VerifyDelay is the wait before SetCorner re-checks the rendered point.
	// Zero selects DefaultVerifyDelay.
	VerifyDelay time.Duration
	// Warnf receives warnings. Nil logs them with the standard logger.
	Warnf func(format string, v ...any)
}

// DefaultOptions returns prediction disabled with the default threshold.
func DefaultOptions() Options {
	return Options{
		PredictionThreshold: DefaultPredictionThreshold,
		VerifyDelay:         DefaultVerifyDelay,
	}
}

func (o Options) verifyDelay() time.Duration {
	if o.VerifyDelay <= 0 {
		return DefaultVerifyDelay
	}
	return o.VerifyDelay
}

func (o Options) warnf() func(string, ...any) {
	if o.Warnf == nil {
		return func(format string, v ...any) {
			log.Printf("warning: "+format, v...)
		}
	}
	return o.Warnf
}
