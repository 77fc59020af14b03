package diversity

import (
	"gonum.org/v1/gonum/stat"

	"rutstats/internal/chunk"
)

// mattr averages the TTR of every window of cfg.MATTRWindow tokens, sliding one token
// at a time. Sequences that fit in a single window report their plain TTR.
func mattr(tokens []string, p *Profile, cfg Config) float64 {
	if p.N <= cfg.MATTRWindow {
		return ttr(p)
	}
	return meanWindowTTR(tokens, chunk.SlidingWindow(len(tokens), cfg.MATTRWindow, 1))
}

// msttr averages the TTR of consecutive segments of cfg.MSTTRSegment tokens. The
// trailing partial segment is discarded.
func msttr(tokens []string, p *Profile, cfg Config) float64 {
	if p.N <= cfg.MSTTRSegment {
		return ttr(p)
	}
	return meanWindowTTR(tokens, chunk.Consecutive(len(tokens), cfg.MSTTRSegment))
}

func meanWindowTTR(tokens []string, segments []chunk.Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	counter := newWindowCounter(tokens)
	values := make([]float64, len(segments))
	for i, seg := range segments {
		counter.moveTo(seg.StartToken, seg.EndToken)
		values[i] = counter.ttr()
	}
	return stat.Mean(values, nil)
}
