package diversity

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Config holds the per-call parameters of the diversity metrics.
type Config struct {
	// MATTRWindow is the moving window size for MATTR.
	MATTRWindow int
	// MSTTRSegment is the segment size for MSTTR.
	MSTTRSegment int

	// MTLDThreshold closes a factor once its running TTR drops to or below it.
	MTLDThreshold float64
	// MTLDMinLength is the shortest sequence MTLD and MAMTLD accept.
	MTLDMinLength int
	// MTLDFactorMinLength is the shortest factor that may be closed.
	MTLDFactorMinLength int

	// MAMTLDTrials > 0 switches MAMTLD from the moving average over every start
	// position to the mean MTLD of that many random windows.
	MAMTLDTrials int
	MAMTLDWindow int
	MAMTLDSeed   uint64
	// RandSource overrides the seeded source used by resampling. A shared source
	// makes results depend on call order and must not be used concurrently.
	RandSource rand.Source

	// HDDSampleSize is the hypergeometric sample size for HD-D.
	HDDSampleSize int

	// LogBase is the logarithm base of HTTR, STTR, MTTR, DTTR and the hapax index.
	// The published ruTS figures use base 10.
	LogBase float64
}

func DefaultConfig() Config {
	return Config{
		MATTRWindow:         50,
		MSTTRSegment:        50,
		MTLDThreshold:       0.72,
		MTLDMinLength:       9,
		MTLDFactorMinLength: 10,
		MAMTLDTrials:        0,
		MAMTLDWindow:        100,
		MAMTLDSeed:          42,
		HDDSampleSize:       42,
		LogBase:             math.E,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MATTRWindow <= 0:
		return fmt.Errorf("%w: mattr window must be positive, got %d", ErrInvalidConfig, c.MATTRWindow)
	case c.MSTTRSegment <= 0:
		return fmt.Errorf("%w: msttr segment must be positive, got %d", ErrInvalidConfig, c.MSTTRSegment)
	case !(c.MTLDThreshold > 0 && c.MTLDThreshold < 1):
		return fmt.Errorf("%w: mtld threshold must be in (0, 1), got %g", ErrInvalidConfig, c.MTLDThreshold)
	case c.MTLDMinLength < 1:
		return fmt.Errorf("%w: mtld min length must be positive, got %d", ErrInvalidConfig, c.MTLDMinLength)
	case c.MTLDFactorMinLength < 1:
		return fmt.Errorf("%w: mtld factor min length must be positive, got %d", ErrInvalidConfig, c.MTLDFactorMinLength)
	case c.MAMTLDTrials < 0:
		return fmt.Errorf("%w: mamtld trials must not be negative, got %d", ErrInvalidConfig, c.MAMTLDTrials)
	case c.MAMTLDTrials > 0 && c.MAMTLDWindow < c.MTLDMinLength:
		return fmt.Errorf("%w: mamtld window %d is shorter than mtld min length %d", ErrInvalidConfig, c.MAMTLDWindow, c.MTLDMinLength)
	case c.HDDSampleSize < 0:
		return fmt.Errorf("%w: hdd sample size must not be negative, got %d", ErrInvalidConfig, c.HDDSampleSize)
	case !(c.LogBase > 1) || math.IsInf(c.LogBase, 0):
		return fmt.Errorf("%w: log base must be finite and greater than 1, got %g", ErrInvalidConfig, c.LogBase)
	}
	return nil
}

func (c Config) log(x float64) float64 {
	if c.LogBase == math.E {
		return math.Log(x)
	}
	return math.Log(x) / math.Log(c.LogBase)
}

func (c Config) newRand() *rand.Rand {
	if c.RandSource != nil {
		return rand.New(c.RandSource)
	}
	return rand.New(rand.NewPCG(c.MAMTLDSeed, c.MAMTLDSeed))
}
