package diversity

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// hdd is McCarthy and Jarvis' HD-D: for every token type, the probability that a random
// sample of cfg.HDDSampleSize tokens drawn without replacement contains it at least
// once, divided by the sample size and summed over types. Types are grouped by their
// count through the frequency spectrum.
func hdd(p *Profile, cfg Config) float64 {
	size := cfg.HDDSampleSize
	if p.N < size {
		return Undefined
	}
	if size == 0 {
		return 0
	}

	logAll := combin.LogGeneralizedBinomial(float64(p.N), float64(size))
	sum := 0.0
	for _, bin := range p.Spectrum {
		// P(no occurrence) = C(N-c, s) / C(N, s), zero once the rest cannot fill a sample.
		miss := 0.0
		if p.N-bin.Count >= size {
			miss = math.Exp(combin.LogGeneralizedBinomial(float64(p.N-bin.Count), float64(size)) - logAll)
		}
		sum += float64(bin.Types) * (1 - miss) / float64(size)
	}
	return sum
}
